// Package prediction orchestrates one Pico y Placa evaluation: validate the
// raw inputs, consult the holiday oracle, then apply the restriction rules.
// Each call is independent and stateless; evaluating the same inputs twice
// yields identical verdicts.
package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"picoplaca/internal/holiday"
	"picoplaca/internal/prediction/metrics"
	"picoplaca/internal/restriction"
	"picoplaca/pkg/domain"
	dErrors "picoplaca/pkg/domain-errors"
)

type Service struct {
	offline holiday.Oracle
	online  holiday.Oracle
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

// WithOnline installs the external lookup oracle, used when a request asks
// for online mode. Without it, online requests fail as a configuration error.
func WithOnline(oracle holiday.Oracle) Option {
	return func(s *Service) {
		s.online = oracle
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(offline holiday.Oracle, opts ...Option) (*Service, error) {
	if offline == nil {
		return nil, fmt.Errorf("offline holiday oracle is required")
	}

	svc := &Service{
		offline: offline,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Evaluate validates the request and produces a verdict. The check order is
// fixed: plate, then date, then time; the first validation failure is the one
// reported. A holiday lookup failure aborts the evaluation rather than being
// treated as "not a holiday", since that could produce a wrong legal verdict.
func (s *Service) Evaluate(ctx context.Context, req Request) (*Verdict, error) {
	start := time.Now()

	plate, err := domain.ParsePlate(req.Plate)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}
	clock, err := domain.ParseClockTime(req.Time)
	if err != nil {
		return nil, err
	}

	oracle, source := s.offline, "offline"
	if req.Online {
		if s.online == nil {
			return nil, dErrors.New(dErrors.CodeUnauthorized,
				"online holiday lookup is not configured: set HOLIDAYS_API_KEY")
		}
		oracle, source = s.online, "online"
	}

	isHoliday, err := oracle.IsHoliday(ctx, date)
	if err != nil {
		s.metrics.IncrementLookupFailure(source)
		s.logger.ErrorContext(ctx, "holiday lookup failed",
			"source", source,
			"date", date.String(),
			"error", err,
		)
		return nil, err
	}

	verdict := s.decide(plate, date, clock, isHoliday)
	verdict.Source = source

	outcome := "restricted"
	if verdict.CanCirculate {
		outcome = "can_circulate"
	}
	s.metrics.IncrementVerdict(outcome, string(verdict.Reason))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	s.logger.InfoContext(ctx, "verdict evaluated",
		"plate", plate.String(),
		"date", date.String(),
		"time", clock.String(),
		"source", source,
		"can_circulate", verdict.CanCirculate,
		"reason", verdict.Reason,
	)

	return verdict, nil
}

// decide applies the ordinance to already-validated inputs. Pure.
func (s *Service) decide(plate domain.Plate, date domain.CalendarDate, clock domain.ClockTime, isHoliday bool) *Verdict {
	v := &Verdict{
		Plate: plate,
		Date:  date,
		Time:  clock,
	}

	weekday := date.Weekday()
	restrictedDay, _ := restriction.RestrictedWeekday(plate.LastDigit())

	switch {
	case isHoliday:
		v.CanCirculate, v.Reason = true, ReasonHoliday
	case plate.Exempt():
		v.CanCirculate, v.Reason = true, ReasonExemptPlate
	case weekday == time.Saturday || weekday == time.Sunday:
		v.CanCirculate, v.Reason = true, ReasonWeekend
	case weekday != restrictedDay:
		v.CanCirculate, v.Reason = true, ReasonDigitNotRestricted
	case !restriction.InPeakWindow(clock):
		v.CanCirculate, v.Reason = true, ReasonOffPeak
	default:
		v.CanCirculate, v.Reason = false, ReasonRestricted
	}

	return v
}
