package repository

// InstrumentReplacement is a wash-sale-avoiding substitute: different
// enough from the sold instrument that the realized loss stands, while
// keeping comparable market exposure.
type InstrumentReplacement struct {
	Symbol string
	Name   string
}

type ReplacementRepository interface {
	// GetReplacement returns nil without error when no substantially
	// different instrument is defined for the symbol.
	GetReplacement(symbol string) (*InstrumentReplacement, error)
}

type staticReplacementHandler struct {
	Replacements map[string]InstrumentReplacement
}

func NewReplacementRepository(replacements map[string]InstrumentReplacement) ReplacementRepository {
	if replacements == nil {
		replacements = DefaultReplacements()
	}
	return staticReplacementHandler{
		Replacements: replacements,
	}
}

// DefaultReplacements is the substitution table. Additions are data,
// not code changes - pass a custom map to NewReplacementRepository.
func DefaultReplacements() map[string]InstrumentReplacement {
	return map[string]InstrumentReplacement{
		"TSLA": {Symbol: "TSLF", Name: "Transport & Clean Energy Fund"},
		"NVDA": {Symbol: "SOXX", Name: "iShares Semiconductor ETF"},
	}
}

func (h staticReplacementHandler) GetReplacement(symbol string) (*InstrumentReplacement, error) {
	r, ok := h.Replacements[symbol]
	if !ok {
		return nil, nil
	}
	return &r, nil
}
