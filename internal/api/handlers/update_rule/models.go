package update_rule

// UpdateRuleRequest HTTP request model
type UpdateRuleRequest struct {
	IsActive bool `json:"isActive"`
}
