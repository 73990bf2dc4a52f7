package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/trevoralpert/FutureFund-sub002/internal/domain"
)

// AnalysisRequest is one complete analysis input: the scenario under
// consideration, the household context, and the account snapshot.
type AnalysisRequest struct {
	Scenario         domain.Scenario         `yaml:"scenario" json:"scenario"`
	FinancialContext domain.FinancialContext `yaml:"financial_context" json:"financial_context"`
	Accounts         []domain.Account        `yaml:"accounts" json:"accounts"`
}

// RequestParser loads and validates analysis request files.
type RequestParser struct{}

// NewRequestParser creates a new request parser.
func NewRequestParser() *RequestParser {
	return &RequestParser{}
}

// LoadFromFile loads an analysis request from a YAML file.
func (rp *RequestParser) LoadFromFile(filename string) (*AnalysisRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read request file %s", filename)
	}
	return rp.Parse(data)
}

// Parse decodes and validates a YAML request document.
func (rp *RequestParser) Parse(data []byte) (*AnalysisRequest, error) {
	var req AnalysisRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(err, "failed to parse request YAML")
	}
	if err := rp.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest rejects structurally invalid requests. Missing numeric
// fields are not errors; the engine degrades them to documented defaults.
func (rp *RequestParser) ValidateRequest(req *AnalysisRequest) error {
	if req.Scenario.Type == "" {
		return fmt.Errorf("scenario type is required")
	}
	if req.Scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if len(req.Accounts) == 0 {
		return fmt.Errorf("at least one account is required")
	}
	seen := make(map[string]bool, len(req.Accounts))
	for i, acct := range req.Accounts {
		if acct.ID == "" {
			return fmt.Errorf("account %d: id is required", i)
		}
		if seen[acct.ID] {
			return fmt.Errorf("account %d: duplicate id %q", i, acct.ID)
		}
		seen[acct.ID] = true
		if acct.Type == "" {
			return fmt.Errorf("account %s: type is required", acct.ID)
		}
		if acct.CreditLimit.IsNegative() {
			return fmt.Errorf("account %s: credit limit cannot be negative", acct.ID)
		}
		if acct.IsCreditCard() && acct.CurrentBalance.IsNegative() {
			return fmt.Errorf("account %s: credit card balance cannot be negative", acct.ID)
		}
		if acct.OverdraftFees != nil && acct.OverdraftFees.PerOccurrence.IsNegative() {
			return fmt.Errorf("account %s: overdraft fee cannot be negative", acct.ID)
		}
	}

	if req.FinancialContext.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if req.FinancialContext.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if req.FinancialContext.EmergencyFund.IsNegative() {
		return fmt.Errorf("emergency fund cannot be negative")
	}

	return nil
}

// CreateExampleRequest builds a populated starter request for the `example`
// command.
func (rp *RequestParser) CreateExampleRequest() *AnalysisRequest {
	return &AnalysisRequest{
		Scenario: domain.Scenario{
			ID:   "scenario-001",
			Name: "New Appliances",
			Type: domain.ScenarioMajorPurchase,
			Params: &domain.MajorPurchaseParams{
				PurchaseAmount: decimal.NewFromInt(5000),
			},
		},
		FinancialContext: domain.FinancialContext{
			MonthlyIncome:   decimal.NewFromInt(6500),
			MonthlyExpenses: decimal.NewFromInt(4200),
			EmergencyFund:   decimal.NewFromInt(8000),
		},
		Accounts: []domain.Account{
			{
				ID:             "chk-1",
				Name:           "Everyday Checking",
				Type:           domain.AccountChecking,
				CurrentBalance: decimal.NewFromInt(2500),
				OverdraftFees: &domain.OverdraftFeeSchedule{
					PerOccurrence: decimal.NewFromInt(35),
					MaxPerDay:     6,
				},
				NSFFee:            decimal.NewFromInt(30),
				DailyOverdraftFee: decimal.NewFromInt(5),
				Active:            true,
			},
			{
				ID:             "sav-1",
				Name:           "Rainy Day Savings",
				Type:           domain.AccountSavings,
				CurrentBalance: decimal.NewFromInt(8000),
				Active:         true,
			},
			{
				ID:             "cc-1",
				Name:           "Rewards Card",
				Type:           domain.AccountCreditCard,
				CurrentBalance: decimal.NewFromInt(1500),
				CreditLimit:    decimal.NewFromInt(8000),
				InterestRate:   decimal.NewFromFloat(0.1899),
				Active:         true,
			},
		},
	}
}

// SaveRequest writes a request back out as YAML.
func SaveRequest(req *AnalysisRequest, filename string) error {
	data, err := yaml.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}
	return os.WriteFile(filename, data, 0644)
}
