package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trevoralpert/FutureFund-sub002/internal/consequence"
	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// ConsoleFormatter renders a human-readable text report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *consequence.AnalysisResult) ([]byte, error) {
	var b strings.Builder

	if !result.Success {
		fmt.Fprintf(&b, "ANALYSIS FAILED\n===============\n%s\n", result.Error)
		return []byte(b.String()), nil
	}

	report := result.Result

	b.WriteString("FINANCIAL CONSEQUENCE ANALYSIS\n")
	b.WriteString("==============================\n\n")

	verdict := "FEASIBLE"
	if !report.ExecutionFeasible {
		verdict = "NOT FEASIBLE"
	}
	fmt.Fprintf(&b, "Verdict:          %s\n", verdict)
	fmt.Fprintf(&b, "Risk level:       %s\n", report.RiskLevel)
	fmt.Fprintf(&b, "Scenario cost:    %s\n", FormatCurrency(report.ScenarioCost))
	fmt.Fprintf(&b, "Additional costs: %s\n", FormatCurrency(report.AdditionalCosts))
	fmt.Fprintf(&b, "Total cost:       %s\n\n", FormatCurrency(report.TotalCost))

	fmt.Fprintf(&b, "Recommendation: %s\n\n", report.RecommendedApproach)

	writePaymentPlan(&b, &report.DetailedAnalysis.PaymentAnalysis)
	writeConsequences(&b, &report.DetailedAnalysis.Consequences)
	writeSolutions(&b, &report.DetailedAnalysis.Solutions)

	if len(report.Warnings) > 0 {
		b.WriteString("WARNINGS\n--------\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "  ! %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("NEXT STEPS\n----------\n")
	for i, step := range report.NextSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	return []byte(b.String()), nil
}

func writePaymentPlan(b *strings.Builder, payment *domain.PaymentAnalysis) {
	b.WriteString("PAYMENT PLAN\n------------\n")
	fmt.Fprintf(b, "Primary account: %s\n", payment.PrimaryAccountName)
	for _, step := range payment.Sequence.Steps {
		line := fmt.Sprintf("  %d. %s from %s (%s)",
			step.StepIndex+1, FormatCurrency(step.Amount), step.Account.Name, step.Method)
		if step.OverdraftAmount.IsPositive() {
			line += fmt.Sprintf(", overdraws by %s", FormatCurrency(step.OverdraftAmount))
		}
		b.WriteString(line + "\n")
	}
	if payment.Shortfall.IsPositive() {
		fmt.Fprintf(b, "Unfunded shortfall: %s\n", FormatCurrency(payment.Shortfall))
	}
	b.WriteString("\n")
}

func writeConsequences(b *strings.Builder, model *domain.ConsequenceModel) {
	b.WriteString("CONSEQUENCES\n------------\n")

	for _, fee := range model.OverdraftFees {
		fmt.Fprintf(b, "  Overdraft on %s: %s fee + %s NSF (about %d days negative)\n",
			fee.AccountName, FormatCurrency(fee.OverdraftFee), FormatCurrency(fee.NSFCharges), fee.ProjectedDuration)
	}
	cardIDs := make([]string, 0, len(model.CreditUtilization))
	for id := range model.CreditUtilization {
		cardIDs = append(cardIDs, id)
	}
	sort.Strings(cardIDs)
	for _, id := range cardIDs {
		util := model.CreditUtilization[id]
		fmt.Fprintf(b, "  Card %s: utilization %s (%s impact)\n",
			id, FormatPercentage(util.UtilizationRate), util.UtilizationImpact)
		if cost, ok := model.InterestCosts[id]; ok {
			payoff := fmt.Sprintf("%d months", cost.PayoffMonths)
			if cost.PayoffMonths == domain.PayoffNever {
				payoff = "never (minimum payment does not cover interest)"
			}
			fmt.Fprintf(b, "    interest %s/yr, minimum payment %s, payoff %s\n",
				FormatCurrency(cost.YearlyInterest), FormatCurrency(cost.MinimumPayment), payoff)
		}
	}
	for _, effect := range model.CascadeEffects {
		fmt.Fprintf(b, "  Cascade [%s] %s: %s\n", effect.Severity, effect.Type, effect.Description)
	}
	if len(model.OverdraftFees) == 0 && len(model.CreditUtilization) == 0 && len(model.CascadeEffects) == 0 {
		b.WriteString("  none: the plan executes on available funds\n")
	}
	b.WriteString("\n")
}

func writeSolutions(b *strings.Builder, solutions *domain.SolutionSet) {
	b.WriteString("SOLUTIONS\n---------\n")
	if solutions.OptimalPayment != nil {
		opt := solutions.OptimalPayment
		fmt.Fprintf(b, "  Optimal: %s via %s (cost %s, %s risk)\n",
			opt.AccountName, opt.Method, FormatCurrency(opt.Cost), opt.RiskLevel)
	}
	for _, alt := range solutions.Alternatives {
		fmt.Fprintf(b, "  Alternative [%s]: %s (saves about %s)\n",
			alt.Type, alt.Description, FormatCurrency(alt.CostReduction))
	}
	for _, m := range solutions.RiskMitigation {
		fmt.Fprintf(b, "  Mitigation [%s, %s priority]: %s\n", m.Type, m.Priority, m.Implementation)
	}
	b.WriteString("\n")
}
