package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"business-simulator/domain"
	"business-simulator/service"
)

var (
	inputs       domain.BusinessInputs
	scenarioName string
	months       int
	asJSON       bool

	rootCmd = &cobra.Command{
		Use:   "simulator",
		Short: "Business viability calculator",
		Long: `simulator computes profitability, payback and break-even for a
business from its cost and revenue assumptions.`,
		SilenceUsage: true,
	}

	calcCmd = &cobra.Command{
		Use:   "calc",
		Short: "Compute results and risks for one scenario",
		RunE:  runCalc,
	}

	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Compare the pessimistic, realistic and optimistic scenarios",
		RunE:  runCompare,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&inputs.InitialInvestment, "investment", 50000, "initial investment")
	flags.Float64Var(&inputs.MonthlyFixedCost, "fixed-cost", 5000, "monthly fixed cost")
	flags.Float64Var(&inputs.VariableCostPerUnit, "variable-cost", 15, "variable cost per unit")
	flags.Float64Var(&inputs.SellingPricePerUnit, "price", 50, "selling price per unit")
	flags.Float64Var(&inputs.MonthlySalesVolume, "volume", 200, "monthly sales volume in units")
	flags.Float64Var(&inputs.TaxRate, "tax", 15, "tax rate in percent")
	flags.BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	calcCmd.Flags().StringVar(&scenarioName, "scenario", "realistic", "pessimistic, realistic or optimistic")
	compareCmd.Flags().IntVar(&months, "months", service.DefaultProjectionMonths, "cash-flow projection horizon")

	rootCmd.AddCommand(calcCmd, compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalc(cmd *cobra.Command, _ []string) error {
	scenario, err := domain.ParseScenario(scenarioName)
	if err != nil {
		return err
	}
	if err := service.NewInputValidator().Validate(inputs); err != nil {
		return err
	}

	results := service.Compute(inputs, scenario)
	sim := domain.Simulation{
		Scenario: scenario,
		Inputs:   inputs,
		Results:  results,
		Risks:    service.IdentifyRisks(results, inputs),
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, sim)
	}
	return printSimulation(out, sim)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	if err := service.NewInputValidator().Validate(inputs); err != nil {
		return err
	}
	if months <= 0 || months > service.MaxProjectionMonths {
		return fmt.Errorf("months must be between 1 and %d", service.MaxProjectionMonths)
	}

	comparison := service.CompareScenarios(inputs, months)

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, comparison)
	}
	return printComparison(out, comparison)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSimulation(w io.Writer, sim domain.Simulation) error {
	r := sim.Results
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Scenario\t%s\n", sim.Scenario)
	fmt.Fprintf(tw, "Monthly revenue\t%s\n", service.FormatCurrency(r.MonthlyRevenue))
	fmt.Fprintf(tw, "Total monthly cost\t%s\n", service.FormatCurrency(r.TotalMonthlyCost))
	fmt.Fprintf(tw, "Operating profit\t%s\n", service.FormatCurrency(r.OperatingProfit))
	fmt.Fprintf(tw, "Net profit\t%s\n", service.FormatCurrency(r.NetProfit))
	fmt.Fprintf(tw, "Margin\t%s%%\n", service.FormatNumber(r.MarginPercent))
	fmt.Fprintf(tw, "Payback\t%s\n", service.FormatAttainable(r.PaybackMonths, "months", "not recoverable"))
	fmt.Fprintf(tw, "Break-even\t%s\n", service.FormatAttainable(r.BreakEvenUnits, "units", "N/A"))
	fmt.Fprintf(tw, "Viable\t%t\n", r.IsViable)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risks:")
	for _, risk := range sim.Risks {
		fmt.Fprintf(w, "  [%s] %s\n      %s\n", risk.Severity, risk.Title, risk.Description)
	}

	if recs := service.RecommendationsFor(r); len(recs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recommendations:")
		for i, rec := range recs {
			fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}
	return nil
}

func printComparison(w io.Writer, c domain.ScenarioComparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "Metric\t")
	for _, o := range c.Outcomes {
		fmt.Fprintf(tw, "%s\t", o.Scenario)
	}
	fmt.Fprintln(tw)

	rows := []struct {
		label string
		cell  func(domain.ScenarioOutcome) string
	}{
		{"Net profit", func(o domain.ScenarioOutcome) string { return service.FormatCurrency(o.Results.NetProfit) }},
		{"Margin", func(o domain.ScenarioOutcome) string { return service.FormatNumber(o.Results.MarginPercent) + "%" }},
		{"Payback", func(o domain.ScenarioOutcome) string {
			return service.FormatAttainable(o.Results.PaybackMonths, "months", "not recoverable")
		}},
		{"Break-even", func(o domain.ScenarioOutcome) string {
			return service.FormatAttainable(o.Results.BreakEvenUnits, "units", "N/A")
		}},
		{fmt.Sprintf("Cash at M%d", months), func(o domain.ScenarioOutcome) string {
			points := o.Projection.Points
			if len(points) == 0 {
				return "N/A"
			}
			return service.FormatCurrency(points[len(points)-1].Cumulative)
		}},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t", row.label)
		for _, o := range c.Outcomes {
			fmt.Fprintf(tw, "%s\t", row.cell(o))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBest: %s  Worst: %s\n", c.Best, c.Worst)
	return nil
}
