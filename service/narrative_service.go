package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"business-simulator/domain"
)

const (
	defaultNarrativeModel = "gpt-4o-mini"
	narrativeMaxTokens    = 300
	narrativeTimeout      = 30 * time.Second

	narrativeSystemPrompt = "You are a small-business financial advisor. " +
		"You explain viability analyses in plain English, citing the exact figures you are given. " +
		"You are encouraging but realistic and never invent numbers."
)

// ChatCompleter is the subset of the OpenAI client used for narratives.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NarrativeService writes the executive verdict of a simulation. Without a
// client, or when the client fails, it falls back to a deterministic text.
type NarrativeService struct {
	client ChatCompleter
	model  string
	logger *zap.Logger
}

// NewNarrativeService builds a service backed by OpenAI when apiKey is set.
func NewNarrativeService(apiKey, model string, logger *zap.Logger) *NarrativeService {
	var client ChatCompleter
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return NewNarrativeServiceWithClient(client, model, logger)
}

func NewNarrativeServiceWithClient(client ChatCompleter, model string, logger *zap.Logger) *NarrativeService {
	if model == "" {
		model = defaultNarrativeModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NarrativeService{client: client, model: model, logger: logger}
}

func (s *NarrativeService) Enabled() bool {
	return s.client != nil
}

// Verdict returns the headline and summary for a simulation.
func (s *NarrativeService) Verdict(ctx context.Context, sim domain.Simulation) domain.Verdict {
	verdict := FallbackVerdict(sim)
	if !s.Enabled() {
		return verdict
	}

	summary, err := s.complete(ctx, verdictPrompt(sim))
	if err != nil {
		s.logger.Warn("narrative generation failed, using fallback",
			zap.String("scenario", sim.Scenario.String()),
			zap.Error(err),
		)
		return verdict
	}

	verdict.Summary = summary
	return verdict
}

func (s *NarrativeService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: narrativeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: narrativeMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from model")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("empty response from model")
	}
	return content, nil
}

func verdictPrompt(sim domain.Simulation) string {
	in, r := sim.Inputs, sim.Results

	var risks strings.Builder
	for _, risk := range sim.Risks {
		fmt.Fprintf(&risks, "- [%s] %s: %s\n", risk.Severity, risk.Title, risk.Description)
	}

	return fmt.Sprintf(`Write a 3-4 sentence executive summary of this business viability analysis.

SCENARIO: %s

INPUTS:
- Initial investment: %s
- Monthly fixed cost: %s
- Variable cost per unit: %s
- Selling price per unit: %s
- Monthly sales volume: %s units
- Tax rate: %s%%

RESULTS:
- Monthly revenue: %s
- Total monthly cost: %s
- Net profit per month: %s
- Net margin: %s%%
- Payback: %s
- Break-even: %s
- Viable: %t

RISKS:
%s
State clearly whether the business is viable and what the owner should watch or change.`,
		sim.Scenario,
		FormatCurrency(in.InitialInvestment), FormatCurrency(in.MonthlyFixedCost),
		FormatCurrency(in.VariableCostPerUnit), FormatCurrency(in.SellingPricePerUnit),
		FormatNumber(in.MonthlySalesVolume), FormatNumber(in.TaxRate),
		FormatCurrency(r.MonthlyRevenue), FormatCurrency(r.TotalMonthlyCost),
		FormatCurrency(r.NetProfit), FormatNumber(r.MarginPercent),
		FormatAttainable(r.PaybackMonths, "months", "never recovered"),
		FormatAttainable(r.BreakEvenUnits, "units per month", "not possible at this price"),
		r.IsViable, risks.String())
}

// FallbackVerdict is the deterministic executive summary.
func FallbackVerdict(sim domain.Simulation) domain.Verdict {
	in, r := sim.Inputs, sim.Results

	if r.IsViable {
		return domain.Verdict{
			Viable:   true,
			Headline: "This business is financially viable",
			Summary: fmt.Sprintf("Based on your figures, the investment of %s will be recovered in about %s. "+
				"Your monthly net profit of %s (after %s%% tax) is a margin of %s%%.",
				FormatCurrency(in.InitialInvestment),
				FormatAttainable(r.PaybackMonths, "months", "an unknown number of months"),
				FormatCurrency(r.NetProfit), FormatNumber(in.TaxRate), FormatNumber(r.MarginPercent)),
		}
	}

	loss := r.NetProfit
	if loss < 0 {
		loss = -loss
	}
	return domain.Verdict{
		Viable:   false,
		Headline: "This business is not viable under current conditions",
		Summary: fmt.Sprintf("Your costs exceed your revenue, for a monthly net loss of %s. "+
			"The investment of %s will not be recovered while net profit stays at or below zero. "+
			"You need to raise prices, cut costs or increase sales volume to become profitable.",
			FormatCurrency(loss), FormatCurrency(in.InitialInvestment)),
	}
}
