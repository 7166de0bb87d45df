package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picoplaca/internal/holiday"
	"picoplaca/internal/prediction"
	"picoplaca/pkg/domain"
	dErrors "picoplaca/pkg/domain-errors"
)

type stubOracle struct {
	holidays map[string]bool
	err      error
}

func (s *stubOracle) IsHoliday(_ context.Context, date domain.CalendarDate) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.holidays[date.String()], nil
}

var _ holiday.Oracle = (*stubOracle)(nil)

func newRouter(t *testing.T, oracle *stubOracle) http.Handler {
	t.Helper()
	svc, err := prediction.New(oracle)
	require.NoError(t, err)

	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func postPredict(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlePredict(t *testing.T) {
	t.Run("returns verdict for a valid request", func(t *testing.T) {
		router := newRouter(t, &stubOracle{holidays: map[string]bool{}})

		rec := postPredict(t, router, PredictRequest{
			Plate: "EBA-0234", Date: "2021-04-23", Time: "15:15",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PredictResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.CanCirculate)
		assert.Equal(t, "digit_not_restricted", resp.Reason)
		assert.Equal(t, "offline", resp.Source)
		assert.Equal(t, "The vehicle with plate EBA-0234 CAN be on the road on 2021-04-23 at 15:15.", resp.Message)
	})

	t.Run("returns restricted verdict", func(t *testing.T) {
		router := newRouter(t, &stubOracle{holidays: map[string]bool{}})

		// 2021-04-21 is a Wednesday; digit 5 restricted, 08:00 inside the window
		rec := postPredict(t, router, PredictRequest{
			Plate: "ABC-1235", Date: "2021-04-21", Time: "08:00",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PredictResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.CanCirculate)
		assert.Equal(t, "restricted", resp.Reason)
	})

	t.Run("holiday override", func(t *testing.T) {
		router := newRouter(t, &stubOracle{holidays: map[string]bool{"2021-04-21": true}})

		rec := postPredict(t, router, PredictRequest{
			Plate: "ABC-1235", Date: "2021-04-21", Time: "08:00",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PredictResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.CanCirculate)
		assert.Equal(t, "holiday", resp.Reason)
	})

	t.Run("invalid plate yields 400 with description", func(t *testing.T) {
		router := newRouter(t, &stubOracle{holidays: map[string]bool{}})

		rec := postPredict(t, router, PredictRequest{
			Plate: "EBA-023", Date: "2021-04-23", Time: "15:15",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "invalid_input", body["error"])
		assert.Contains(t, body["error_description"], "plate")
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		router := newRouter(t, &stubOracle{holidays: map[string]bool{}})

		req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lookup failure yields 502", func(t *testing.T) {
		router := newRouter(t, &stubOracle{
			err: dErrors.New(dErrors.CodeUnavailable, "holiday lookup failed"),
		})

		rec := postPredict(t, router, PredictRequest{
			Plate: "ABC-1235", Date: "2021-04-21", Time: "08:00",
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
