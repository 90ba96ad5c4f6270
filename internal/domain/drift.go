package domain

import "github.com/shopspring/decimal"

type DriftAction string

const (
	DriftActionBuy  DriftAction = "buy"
	DriftActionSell DriftAction = "sell"
)

type DriftDetail struct {
	Symbol            string          `json:"symbol"`
	CurrentAllocation float64         `json:"currentAllocation"`
	TargetAllocation  float64         `json:"targetAllocation"`
	Drift             float64         `json:"drift"`
	Action            DriftAction     `json:"action"`
	AmountToTrade     decimal.Decimal `json:"amountToTrade"`
}

type DriftSummary struct {
	MeanAbsDrift float64 `json:"meanAbsDrift"`
	MaxAbsDrift  float64 `json:"maxAbsDrift"`
}

type RebalanceCheck struct {
	NeedsRebalance bool
	Details        map[string]DriftDetail
	Summary        *DriftSummary
}
