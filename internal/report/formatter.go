package report

import (
	"fmt"
	"strings"

	"HedgeLens/internal/model"
)

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

// FormatSummary formats the statistics and verdict printed after the plots.
func FormatSummary(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Correlation between %s and %s: %.2f\n", a.Request.Symbol1, a.Request.Symbol2, a.Correlation))
	b.WriteString(fmt.Sprintf("Hedge ratio (slope): %.2f\n", a.Regression.Slope))
	b.WriteString(fmt.Sprintf("P-value: %.2e\n", a.Regression.PValue))

	b.WriteString(fmt.Sprintf("Strong correlation: %s\n", yesNo(a.Verdict.StrongCorrelation)))
	b.WriteString(fmt.Sprintf("Statistically significant: %s\n", yesNo(a.Verdict.Significant)))
	b.WriteString(fmt.Sprintf("Hedge relationship: %s\n", yesNo(a.Verdict.HedgeRelationship)))

	return b.String()
}

// FormatNoData formats the message shown when a symbol has no prices.
func FormatNoData(symbol string) string {
	return fmt.Sprintf("No data found for ticker %s. Please check the symbol and date range.\n", symbol)
}

// FormatError formats any other failure.
func FormatError(err error) string {
	return fmt.Sprintf("An error occurred: %v\n", err)
}
