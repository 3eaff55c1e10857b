package compliance

// RiskScorer rates a transaction payload in [0, 1].
type RiskScorer interface {
	Score(payload map[string]interface{}) float64
}

// DefaultRiskScorer is the rule-based scorer: large amounts are high risk,
// everything else is low risk.
type DefaultRiskScorer struct{}

func (DefaultRiskScorer) Score(payload map[string]interface{}) float64 {
	amount, _ := payload["amount"].(float64)
	if amount > 1000 {
		return 0.8
	}
	return 0.1
}
