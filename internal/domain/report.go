package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentOption is one candidate way to fund (part of) the scenario, ranked
// by risk then marginal cost.
type PaymentOption struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Method      PaymentMethod   `json:"payment_method"`
	Amount      decimal.Decimal `json:"amount"`
	Cost        decimal.Decimal `json:"cost"`
	RiskLevel   RiskLevel       `json:"risk_level"`
}

// AlternativeApproach is a strategy that trades scope or timing for lower
// cost and risk.
type AlternativeApproach struct {
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	CostReduction decimal.Decimal `json:"cost_reduction"`
	RiskReduction RiskLevel       `json:"risk_reduction"`
}

// MitigationStrategy addresses one triggered risk condition.
type MitigationStrategy struct {
	Type           string    `json:"type"`
	Priority       RiskLevel `json:"priority"`
	Description    string    `json:"description"`
	Implementation string    `json:"implementation"`
}

// CostOptimization is a concrete saving opportunity within the chosen plan.
type CostOptimization struct {
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
}

// SolutionSet is the output of the solution-generation stage.
type SolutionSet struct {
	OptimalPayment    *PaymentOption        `json:"optimal_payment_method"`
	PaymentOptions    []PaymentOption       `json:"payment_options"`
	Alternatives      []AlternativeApproach `json:"alternative_approaches"`
	RiskMitigation    []MitigationStrategy  `json:"risk_mitigation"`
	CostOptimizations []CostOptimization    `json:"cost_optimizations"`
}

// DetailedAnalysis bundles the full per-stage outputs behind the report
// headline.
type DetailedAnalysis struct {
	PaymentAnalysis PaymentAnalysis  `json:"payment_analysis"`
	Consequences    ConsequenceModel `json:"consequences"`
	Solutions       SolutionSet      `json:"solutions"`
}

// ConsequenceReport is the final feasibility verdict for a scenario.
type ConsequenceReport struct {
	ExecutionFeasible   bool             `json:"execution_feasible"`
	TotalCost           decimal.Decimal  `json:"total_cost"`
	ScenarioCost        decimal.Decimal  `json:"scenario_cost"`
	AdditionalCosts     decimal.Decimal  `json:"additional_costs"`
	RiskLevel           RiskLevel        `json:"risk_level"`
	RecommendedApproach string           `json:"recommended_approach"`
	Warnings            []string         `json:"warnings"`
	NextSteps           []string         `json:"next_steps"`
	DetailedAnalysis    DetailedAnalysis `json:"detailed_analysis"`
}
