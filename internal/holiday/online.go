package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"picoplaca/pkg/domain"
	dErrors "picoplaca/pkg/domain-errors"
)

// DefaultBaseURL is the abstractapi Holidays endpoint. The free tier allows
// one request per second, which is plenty for a single-shot evaluation.
const DefaultBaseURL = "https://holidays.abstractapi.com/v1/"

// maundyThursday is wrongly reported as a public holiday by the upstream
// source; the real ordinance does not exempt it, so the client filters it out.
const maundyThursday = "Maundy Thursday"

// apiHoliday is the upstream response entry. Only the fields the client reads
// are declared.
type apiHoliday struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Date    string `json:"date"`
	Type    string `json:"type"`
}

// Online answers holiday queries via the external lookup service. Unlike
// Offline it does not apply the statutory observance shifts, because the
// upstream source does not account for them. One bounded-retry request per
// query; no state is held between calls.
type Online struct {
	apiKey  string
	baseURL string
	client  *http.Client
	retries int
	backoff time.Duration
	logger  *slog.Logger
}

type OnlineOption func(*Online)

// WithBaseURL overrides the lookup endpoint, mainly for tests.
func WithBaseURL(u string) OnlineOption {
	return func(o *Online) { o.baseURL = u }
}

// WithHTTPClient swaps the HTTP client, e.g. to change the timeout.
func WithHTTPClient(c *http.Client) OnlineOption {
	return func(o *Online) { o.client = c }
}

// WithRetries sets how many additional attempts follow a retryable failure.
func WithRetries(n int) OnlineOption {
	return func(o *Online) { o.retries = n }
}

// WithBackoff sets the pause between attempts.
func WithBackoff(d time.Duration) OnlineOption {
	return func(o *Online) { o.backoff = d }
}

func WithLogger(logger *slog.Logger) OnlineOption {
	return func(o *Online) { o.logger = logger }
}

// NewOnline builds the online oracle. The credential is checked here so a
// missing key is reported as a configuration error before any network I/O.
//
// Errors: CodeUnauthorized when apiKey is empty.
func NewOnline(apiKey string, opts ...OnlineOption) (*Online, error) {
	if apiKey == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized,
			"missing API key: store your key in the environment variable HOLIDAYS_API_KEY")
	}

	o := &Online{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		retries: 1,
		backoff: 200 * time.Millisecond,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// IsHoliday queries the lookup service for the given date in Ecuador.
//
// Errors: CodeUnauthorized when the service rejects the key;
// CodeUnavailable when all attempts fail. A lookup failure is never silently
// treated as "not a holiday" - that would produce a wrong verdict.
func (o *Online) IsHoliday(ctx context.Context, date domain.CalendarDate) (bool, error) {
	q := url.Values{}
	q.Set("api_key", o.apiKey)
	q.Set("country", "EC")
	q.Set("year", fmt.Sprintf("%d", date.Time().Year()))
	q.Set("month", fmt.Sprintf("%d", int(date.Time().Month())))
	q.Set("day", fmt.Sprintf("%d", date.Time().Day()))
	reqURL := o.baseURL + "?" + q.Encode()

	var lastErr error
	for attempt := 0; attempt <= o.retries; attempt++ {
		if attempt > 0 {
			o.logger.WarnContext(ctx, "retrying holiday lookup",
				"attempt", attempt+1,
				"date", date.String(),
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return false, dErrors.Wrap(ctx.Err(), dErrors.CodeUnavailable, "holiday lookup canceled")
			case <-time.After(o.backoff):
			}
		}

		isHol, retryable, err := o.lookup(ctx, reqURL)
		if err == nil {
			return isHol, nil
		}
		if !retryable {
			return false, err
		}
		lastErr = err
	}
	return false, dErrors.Wrap(lastErr, dErrors.CodeUnavailable, "holiday lookup failed")
}

// lookup performs a single request. retryable distinguishes transient
// failures (network errors, 5xx) from terminal ones (bad credential).
func (o *Online) lookup(ctx context.Context, reqURL string) (isHoliday, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, false, dErrors.Wrap(err, dErrors.CodeInternal, "build holiday lookup request")
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return false, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return false, false, dErrors.New(dErrors.CodeUnauthorized,
			"holiday lookup rejected the API key: check HOLIDAYS_API_KEY")
	case resp.StatusCode != http.StatusOK:
		return false, true, fmt.Errorf("holiday lookup returned status %d", resp.StatusCode)
	}

	var holidays []apiHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return false, true, fmt.Errorf("decode holiday lookup response: %w", err)
	}

	for _, h := range holidays {
		if h.Name != maundyThursday {
			return true, false, nil
		}
	}
	return false, false, nil
}
