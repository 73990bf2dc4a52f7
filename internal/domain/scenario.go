package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioType identifies the kind of discretionary financial scenario
// being analyzed.
type ScenarioType string

const (
	ScenarioHomePurchase     ScenarioType = "home_purchase"
	ScenarioCarPurchase      ScenarioType = "car_purchase"
	ScenarioInvestment       ScenarioType = "investment"
	ScenarioDebtPayoff       ScenarioType = "debt_payoff"
	ScenarioMajorPurchase    ScenarioType = "major_purchase"
	ScenarioEmergencyExpense ScenarioType = "emergency_expense"
)

// ScenarioParams is the typed parameter record for one scenario kind.
// Each kind carries only the numeric fields that are meaningful for it;
// a zero field means the caller did not supply it.
type ScenarioParams interface {
	Kind() ScenarioType
}

// Scalable is implemented by parameter records whose headline amount can be
// reduced to produce a scaled-down variant of the scenario.
type Scalable interface {
	ScalableAmount() decimal.Decimal
}

// HomePurchaseParams holds the cash-due-at-closing figures for a home purchase.
type HomePurchaseParams struct {
	DownPayment  decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	ClosingCosts decimal.Decimal `yaml:"closing_costs" json:"closing_costs"`
}

func (HomePurchaseParams) Kind() ScenarioType { return ScenarioHomePurchase }

// CarPurchaseParams holds the purchase figures for a vehicle.
type CarPurchaseParams struct {
	DownPayment decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	TotalPrice  decimal.Decimal `yaml:"total_price" json:"total_price"`
}

func (CarPurchaseParams) Kind() ScenarioType { return ScenarioCarPurchase }

func (p CarPurchaseParams) ScalableAmount() decimal.Decimal {
	if p.DownPayment.IsPositive() {
		return p.DownPayment
	}
	return p.TotalPrice
}

// InvestmentParams holds the initial outlay for an investment.
type InvestmentParams struct {
	InitialInvestment decimal.Decimal `yaml:"initial_investment" json:"initial_investment"`
	InvestmentAmount  decimal.Decimal `yaml:"investment_amount" json:"investment_amount"`
}

func (InvestmentParams) Kind() ScenarioType { return ScenarioInvestment }

func (p InvestmentParams) ScalableAmount() decimal.Decimal {
	if p.InitialInvestment.IsPositive() {
		return p.InitialInvestment
	}
	return p.InvestmentAmount
}

// DebtPayoffParams holds the balance being retired.
type DebtPayoffParams struct {
	PayoffAmount   decimal.Decimal `yaml:"payoff_amount" json:"payoff_amount"`
	CurrentBalance decimal.Decimal `yaml:"current_balance" json:"current_balance"`
}

func (DebtPayoffParams) Kind() ScenarioType { return ScenarioDebtPayoff }

// MajorPurchaseParams holds the price of a large discretionary purchase.
type MajorPurchaseParams struct {
	PurchaseAmount decimal.Decimal `yaml:"purchase_amount" json:"purchase_amount"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
}

func (MajorPurchaseParams) Kind() ScenarioType { return ScenarioMajorPurchase }

func (p MajorPurchaseParams) ScalableAmount() decimal.Decimal {
	if p.PurchaseAmount.IsPositive() {
		return p.PurchaseAmount
	}
	return p.Amount
}

// EmergencyExpenseParams holds the cost of an unplanned expense.
type EmergencyExpenseParams struct {
	ExpenseAmount decimal.Decimal `yaml:"expense_amount" json:"expense_amount"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
}

func (EmergencyExpenseParams) Kind() ScenarioType { return ScenarioEmergencyExpense }

func (p EmergencyExpenseParams) ScalableAmount() decimal.Decimal {
	if p.ExpenseAmount.IsPositive() {
		return p.ExpenseAmount
	}
	return p.Amount
}

// GenericParams carries the amount fields accepted for scenario kinds without
// a dedicated parameter record. Unknown kinds degrade to this shape.
type GenericParams struct {
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	TotalAmount decimal.Decimal `yaml:"total_amount" json:"total_amount"`
}

func (GenericParams) Kind() ScenarioType { return "" }

func (p GenericParams) ScalableAmount() decimal.Decimal {
	if p.Amount.IsPositive() {
		return p.Amount
	}
	return p.TotalAmount
}

// Scenario is an immutable description of a discretionary financial decision.
type Scenario struct {
	ID     string         `yaml:"id" json:"id"`
	Name   string         `yaml:"name" json:"name"`
	Type   ScenarioType   `yaml:"type" json:"type"`
	Params ScenarioParams `yaml:"parameters" json:"parameters"`
}

// newParamsFor returns an empty parameter record for the given scenario type.
// Unknown types get the generic record.
func newParamsFor(t ScenarioType) ScenarioParams {
	switch t {
	case ScenarioHomePurchase:
		return &HomePurchaseParams{}
	case ScenarioCarPurchase:
		return &CarPurchaseParams{}
	case ScenarioInvestment:
		return &InvestmentParams{}
	case ScenarioDebtPayoff:
		return &DebtPayoffParams{}
	case ScenarioMajorPurchase:
		return &MajorPurchaseParams{}
	case ScenarioEmergencyExpense:
		return &EmergencyExpenseParams{}
	default:
		return &GenericParams{}
	}
}

// UnmarshalYAML decodes a scenario, dispatching the parameters block to the
// typed record for the scenario's kind.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		ID     string       `yaml:"id"`
		Name   string       `yaml:"name"`
		Type   ScenarioType `yaml:"type"`
		Params yaml.Node    `yaml:"parameters"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}

	s.ID = head.ID
	s.Name = head.Name
	s.Type = head.Type
	s.Params = newParamsFor(head.Type)

	if head.Params.Kind != 0 {
		if err := head.Params.Decode(s.Params); err != nil {
			return fmt.Errorf("failed to parse %s parameters: %w", head.Type, err)
		}
	}
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for the HTTP boundary.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	var head struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Type   ScenarioType    `json:"type"`
		Params json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	s.ID = head.ID
	s.Name = head.Name
	s.Type = head.Type
	s.Params = newParamsFor(head.Type)

	if len(head.Params) > 0 {
		if err := json.Unmarshal(head.Params, s.Params); err != nil {
			return fmt.Errorf("failed to parse %s parameters: %w", head.Type, err)
		}
	}
	return nil
}

// MarshalYAML emits the scenario with its typed parameter block inline.
func (s Scenario) MarshalYAML() (interface{}, error) {
	return struct {
		ID     string         `yaml:"id"`
		Name   string         `yaml:"name"`
		Type   ScenarioType   `yaml:"type"`
		Params ScenarioParams `yaml:"parameters"`
	}{s.ID, s.Name, s.Type, s.Params}, nil
}

// MarshalJSON mirrors MarshalYAML.
func (s Scenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     string         `json:"id"`
		Name   string         `json:"name"`
		Type   ScenarioType   `json:"type"`
		Params ScenarioParams `json:"parameters"`
	}{s.ID, s.Name, s.Type, s.Params})
}
