package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-simulator/domain"
	"business-simulator/repository"
	"business-simulator/service"
)

const defaultBody = `{
	"inputs": {
		"initialInvestment": 50000,
		"monthlyFixedCost": 5000,
		"variableCostPerUnit": 15,
		"sellingPricePerUnit": 50,
		"monthlySalesVolume": 200,
		"taxRate": 15
	},
	"scenario": "realistic"
}`

func newTestHandler() *SimulationHandler {
	svc := service.NewSimulatorService(repository.NewMemoryCache(), nil)
	return NewSimulationHandler(svc, nil)
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Calculate(w, postJSON("/simulation/calculate", defaultBody))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Scenario string `json:"scenario"`
		Results  struct {
			NetProfit     float64 `json:"netProfit"`
			IsViable      bool    `json:"isViable"`
			PaybackMonths struct {
				Attainable bool    `json:"attainable"`
				Value      float64 `json:"value"`
			} `json:"paybackMonths"`
		} `json:"results"`
		Risks []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
		} `json:"risks"`
		Display DisplayResults `json:"display"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "realistic", resp.Scenario)
	assert.InDelta(t, 1700, resp.Results.NetProfit, 1e-9)
	assert.True(t, resp.Results.IsViable)
	assert.True(t, resp.Results.PaybackMonths.Attainable)
	assert.InDelta(t, 29.41, resp.Results.PaybackMonths.Value, 0.01)
	require.Len(t, resp.Risks, 3)
	assert.Equal(t, "moderate_margin", resp.Risks[0].Code)
	assert.Equal(t, "medium", resp.Risks[0].Severity)
	assert.Equal(t, "$1,700", resp.Display.NetProfit)
	assert.Equal(t, "17%", resp.Display.MarginPercent)
	assert.Equal(t, "29.4 months", resp.Display.PaybackMonths)
	assert.Equal(t, "Viable", resp.Display.Status)
	assert.Equal(t, domain.BandMarginLow, resp.Display.Health.Margin)
	assert.Equal(t, domain.BandPaybackLong, resp.Display.Health.Payback)
	assert.Equal(t, domain.BandAboveBreakEven, resp.Display.Health.BreakEven)
}

func TestCalculateHandler_NeverRecovered(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	body := bytes.Replace([]byte(defaultBody), []byte(`"realistic"`), []byte(`"pessimistic"`), 1)
	handler.Calculate(w, postJSON("/simulation/calculate", string(body)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results struct {
			PaybackMonths map[string]any `json:"paybackMonths"`
		} `json:"results"`
		Display DisplayResults `json:"display"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"attainable": false}, resp.Results.PaybackMonths)
	assert.Equal(t, "Not recoverable", resp.Display.PaybackMonths)
	assert.Equal(t, "Not viable", resp.Display.Status)
	assert.Equal(t, domain.BandMarginNegative, resp.Display.Health.Margin)
	assert.Equal(t, domain.BandPaybackNotRecoverable, resp.Display.Health.Payback)
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/simulation/calculate", nil)
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/simulation/calculate", bytes.NewBufferString(defaultBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.Calculate(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Calculate(w, postJSON("/simulation/calculate", `{invalid-json}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_UnknownField(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Calculate(w, postJSON("/simulation/calculate", `{"inputs":{"monthlyProfit":1}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_ValidationErrors(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Calculate(w, postJSON("/simulation/calculate", `{"inputs":{"initialInvestment":-1,"monthlyFixedCost":5000,"variableCostPerUnit":15,"sellingPricePerUnit":50,"monthlySalesVolume":200,"taxRate":15}}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error  string               `json:"error"`
		Fields []service.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid input", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "initialInvestment", resp.Fields[0].Field)
}

func TestCalculateHandler_UnknownScenario(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	body := bytes.Replace([]byte(defaultBody), []byte(`"realistic"`), []byte(`"apocalyptic"`), 1)
	handler.Calculate(w, postJSON("/simulation/calculate", string(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"scenario"`)
}

func TestScenariosHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Scenarios(w, postJSON("/simulation/scenarios", defaultBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Outcomes []struct {
			Scenario string `json:"scenario"`
		} `json:"outcomes"`
		Best     string   `json:"best"`
		Worst    string   `json:"worst"`
		ViableIn []string `json:"viableIn"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Outcomes, 3)
	assert.Equal(t, "optimistic", resp.Best)
	assert.Equal(t, "pessimistic", resp.Worst)
	assert.Equal(t, []string{"realistic", "optimistic"}, resp.ViableIn)
}

func TestScenariosHandler_IgnoresRequestedScenario(t *testing.T) {
	handler := newTestHandler()

	realistic := httptest.NewRecorder()
	handler.Scenarios(realistic, postJSON("/simulation/scenarios", defaultBody))

	body := bytes.Replace([]byte(defaultBody), []byte(`"realistic"`), []byte(`"pessimistic"`), 1)
	pessimistic := httptest.NewRecorder()
	handler.Scenarios(pessimistic, postJSON("/simulation/scenarios", string(body)))

	require.Equal(t, http.StatusOK, realistic.Code)
	require.Equal(t, http.StatusOK, pessimistic.Code)
	assert.JSONEq(t, realistic.Body.String(), pessimistic.Body.String())

	body = bytes.Replace([]byte(defaultBody), []byte(`"realistic"`), []byte(`"sideways"`), 1)
	unknown := httptest.NewRecorder()
	handler.Scenarios(unknown, postJSON("/simulation/scenarios", string(body)))
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
}

func TestProjectionHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Projection(w, postJSON("/simulation/projection", defaultBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Months int `json:"months"`
		Points []struct {
			Month      int     `json:"month"`
			Cumulative float64 `json:"cumulative"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 24, resp.Months)
	require.Len(t, resp.Points, 24)
	assert.InDelta(t, -48300, resp.Points[0].Cumulative, 1e-6)
}

func TestAnalysisHandler_OK(t *testing.T) {
	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.Analysis(w, postJSON("/simulation/analysis", defaultBody))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Verdict struct {
			Viable   bool   `json:"viable"`
			Headline string `json:"headline"`
		} `json:"verdict"`
		Risks []json.RawMessage `json:"risks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Verdict.Viable)
	assert.NotEmpty(t, resp.Verdict.Headline)
	assert.Len(t, resp.Risks, 3)
}

func TestRouter(t *testing.T) {
	limiter := newRateLimiter(2, time.Minute, time.Now)
	router := NewRouter(newTestHandler(), limiter, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, postJSON("/simulation/calculate", defaultBody))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, postJSON("/simulation/calculate", defaultBody))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "simulator_simulations_computed_total")
}

func TestRequestIDMiddleware_KeepsValidID(t *testing.T) {
	const id = "3f8e0b5c-6a7d-4e1f-9b2a-0c4d5e6f7a8b"
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, id, seen)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", seen)
	assert.Len(t, seen, 36)
}
