package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"business-simulator/domain"
	"business-simulator/service"
)

// maxBodyBytes bounds request bodies; inputs are a handful of numbers.
const maxBodyBytes = 64 << 10

type SimulationHandler struct {
	service *service.SimulatorService
	logger  *zap.Logger
}

func NewSimulationHandler(service *service.SimulatorService, logger *zap.Logger) *SimulationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulationHandler{service: service, logger: logger}
}

// CalculateResponse is the result of /simulation/calculate.
type CalculateResponse struct {
	domain.Simulation
	Display DisplayResults `json:"display"`
}

// Calculate computes results and risks for one scenario.
func (h *SimulationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	sim, err := h.service.Simulate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, CalculateResponse{
		Simulation: sim,
		Display:    NewDisplayResults(sim.Results, sim.Inputs),
	})
}

// Scenarios compares the pessimistic, realistic and optimistic scenarios.
// It shares the request body of the other routes; a scenario in the body
// is still validated but does not change the comparison.
func (h *SimulationHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	comparison, err := h.service.Compare(r.Context(), req.Inputs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, comparison)
}

// Projection returns the cumulative cash flow of one scenario.
func (h *SimulationHandler) Projection(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	projection, err := h.service.Project(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, projection)
}

// Analysis returns the executive analysis of one scenario.
func (h *SimulationHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, analysis)
}

func (h *SimulationHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (domain.SimulationRequest, bool) {
	var req domain.SimulationRequest

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return req, false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug("invalid request body",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		if errors.Is(err, domain.ErrUnknownScenario) {
			h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
				{Field: "scenario", Message: "unknown scenario"},
			}})
			return req, false
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}

	return req, true
}

func (h *SimulationHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.writeJSONStatus(w, r, http.StatusBadRequest, struct {
			Error  string               `json:"error"`
			Fields []service.FieldError `json:"fields"`
		}{Error: service.ErrInvalidInput.Error(), Fields: verr.Fields})
		return
	}

	h.logger.Error("simulation failed",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Error(err),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (h *SimulationHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	h.writeJSONStatus(w, r, http.StatusOK, v)
}

func (h *SimulationHandler) writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, v any) {
	// Encode to a buffer first so a failure can still produce a 500.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
