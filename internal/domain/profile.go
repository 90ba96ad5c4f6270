package domain

type InvestorProfile struct {
	InvestorID         string             `json:"investorId"`
	RiskTolerance      string             `json:"riskTolerance"`
	Goals              []string           `json:"goals"`
	TargetAllocation   map[string]float64 `json:"targetAllocation"`
	RebalanceThreshold float64            `json:"rebalancingThreshold"`
	RebalanceFrequency string             `json:"rebalancingFrequency"`
	TlhEnabled         bool               `json:"taxLossHarvestingEnabled"`
}
