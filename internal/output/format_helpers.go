package output

import (
	"github.com/shopspring/decimal"

	"github.com/trevoralpert/FutureFund-sub002/pkg/moneyutil"
)

// FormatCurrency renders a decimal as USD, e.g. "$1234.56".
func FormatCurrency(amount decimal.Decimal) string {
	return moneyutil.FromDecimal(amount).Round().Format()
}

// FormatPercentage renders a decimal percentage with one decimal place.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
