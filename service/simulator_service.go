package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"business-simulator/domain"
	"business-simulator/metrics"
	"business-simulator/repository"
)

const cacheKeyVersion = "v1"

// SimulatorService is the caller of the engine: it validates requests,
// memoizes results and assembles the views served to clients.
type SimulatorService struct {
	cache            repository.CacheRepository
	cacheTTL         time.Duration
	validator        *InputValidator
	narrative        *NarrativeService
	projectionMonths int
	logger           *zap.Logger
}

type SimulatorOption func(*SimulatorService)

func WithCacheTTL(ttl time.Duration) SimulatorOption {
	return func(s *SimulatorService) { s.cacheTTL = ttl }
}

func WithProjectionMonths(months int) SimulatorOption {
	return func(s *SimulatorService) {
		if months > 0 && months <= MaxProjectionMonths {
			s.projectionMonths = months
		}
	}
}

func WithLogger(logger *zap.Logger) SimulatorOption {
	return func(s *SimulatorService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulatorService creates a new SimulatorService with the given cache.
func NewSimulatorService(
	cache repository.CacheRepository,
	narrative *NarrativeService,
	opts ...SimulatorOption,
) *SimulatorService {
	s := &SimulatorService{
		cache:            cache,
		validator:        NewInputValidator(),
		narrative:        narrative,
		projectionMonths: DefaultProjectionMonths,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.narrative == nil {
		s.narrative = NewNarrativeServiceWithClient(nil, "", s.logger)
	}
	return s
}

// Simulate validates the request, then computes results and risks.
func (s *SimulatorService) Simulate(
	ctx context.Context,
	req domain.SimulationRequest,
) (domain.Simulation, error) {

	if err := s.validator.ValidateRequest(req); err != nil {
		return domain.Simulation{}, err
	}

	key := cacheKey(req)
	if sim, ok := s.lookup(ctx, key); ok {
		return sim, nil
	}

	results := Compute(req.Inputs, req.Scenario)
	sim := domain.Simulation{
		Scenario: req.Scenario,
		Inputs:   req.Inputs,
		Results:  results,
		Risks:    IdentifyRisks(results, req.Inputs),
	}

	metrics.SimulationsComputed.
		WithLabelValues(req.Scenario.String(), strconv.FormatBool(results.IsViable)).
		Inc()
	for _, risk := range sim.Risks {
		metrics.RiskFindings.WithLabelValues(risk.Severity.String()).Inc()
	}

	s.store(ctx, key, sim)
	return sim, nil
}

// Compare computes all scenarios for the inputs.
func (s *SimulatorService) Compare(
	ctx context.Context,
	inputs domain.BusinessInputs,
) (domain.ScenarioComparison, error) {

	if err := s.validator.Validate(inputs); err != nil {
		return domain.ScenarioComparison{}, err
	}

	comparison := CompareScenarios(inputs, s.projectionMonths)
	s.logger.Debug("scenarios compared",
		zap.String("best", comparison.Best.String()),
		zap.String("worst", comparison.Worst.String()),
		zap.Int("viable_in", len(comparison.ViableIn)),
	)
	return comparison, nil
}

// Project returns the cumulative cash-flow projection of a simulation.
func (s *SimulatorService) Project(
	ctx context.Context,
	req domain.SimulationRequest,
) (domain.CashFlowProjection, error) {

	sim, err := s.Simulate(ctx, req)
	if err != nil {
		return domain.CashFlowProjection{}, err
	}
	return ProjectCashFlow(sim.Inputs, sim.Scenario, sim.Results, s.projectionMonths), nil
}

// Analyze returns the executive analysis of a simulation.
func (s *SimulatorService) Analyze(
	ctx context.Context,
	req domain.SimulationRequest,
) (domain.Analysis, error) {

	sim, err := s.Simulate(ctx, req)
	if err != nil {
		return domain.Analysis{}, err
	}

	return domain.Analysis{
		Simulation:      sim,
		Verdict:         s.narrative.Verdict(ctx, sim),
		Health:          ClassifyHealth(sim.Results, sim.Inputs),
		Projection:      ProjectCashFlow(sim.Inputs, sim.Scenario, sim.Results, s.projectionMonths),
		Recommendations: RecommendationsFor(sim.Results),
	}, nil
}

func (s *SimulatorService) lookup(ctx context.Context, key string) (domain.Simulation, bool) {
	if s.cache == nil {
		return domain.Simulation{}, false
	}

	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		metrics.CacheMisses.Inc()
		return domain.Simulation{}, false
	}

	var sim domain.Simulation
	if err := json.Unmarshal([]byte(raw), &sim); err != nil {
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		metrics.CacheMisses.Inc()
		return domain.Simulation{}, false
	}

	metrics.CacheHits.Inc()
	return sim, true
}

// store is best effort; a failing cache never fails the request.
func (s *SimulatorService) store(ctx context.Context, key string, sim domain.Simulation) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(sim)
	if err != nil {
		s.logger.Warn("failed to encode simulation for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache simulation", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey identifies a request by the exact bits of its inputs.
func cacheKey(req domain.SimulationRequest) string {
	in := req.Inputs
	parts := []string{
		cacheKeyVersion,
		req.Scenario.String(),
		strconv.FormatFloat(in.InitialInvestment, 'g', -1, 64),
		strconv.FormatFloat(in.MonthlyFixedCost, 'g', -1, 64),
		strconv.FormatFloat(in.VariableCostPerUnit, 'g', -1, 64),
		strconv.FormatFloat(in.SellingPricePerUnit, 'g', -1, 64),
		strconv.FormatFloat(in.MonthlySalesVolume, 'g', -1, 64),
		strconv.FormatFloat(in.TaxRate, 'g', -1, 64),
	}
	return strings.Join(parts, ":")
}
