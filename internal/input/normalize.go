package input

import (
	"strings"

	"HedgeLens/internal/model"
)

// FullToken asks for all available history when given as a date.
const FullToken = "full"

// Sentinel bounds substituted for FullToken.
const (
	FullHistoryStart = "1900-01-01"
	FullHistoryEnd   = "2100-12-31"
)

// Normalize trims and upper-cases the tickers and expands FullToken in either
// date field. Dates are otherwise passed through untouched; the acquisition
// step rejects anything it cannot parse.
func Normalize(symbol1, symbol2, start, end string) model.AnalysisRequest {
	return model.AnalysisRequest{
		Symbol1:   normalizeSymbol(symbol1),
		Symbol2:   normalizeSymbol(symbol2),
		StartDate: normalizeDate(start, FullHistoryStart),
		EndDate:   normalizeDate(end, FullHistoryEnd),
	}
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func normalizeDate(s, sentinel string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, FullToken) {
		return sentinel
	}
	return s
}
