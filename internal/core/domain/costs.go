package domain

import "github.com/shopspring/decimal"

// ProductionCosts holds the declared costs of a plan, denominated in
// labour hours.
type ProductionCosts struct {
	Means     decimal.Decimal `json:"means"`
	Resources decimal.Decimal `json:"resources"`
	Labour    decimal.Decimal `json:"labour"`
}

// Total returns the sum of all three cost components.
func (c ProductionCosts) Total() decimal.Decimal {
	return c.Means.Add(c.Resources).Add(c.Labour)
}

// Add returns the component-wise sum of two cost records.
func (c ProductionCosts) Add(other ProductionCosts) ProductionCosts {
	return ProductionCosts{
		Means:     c.Means.Add(other.Means),
		Resources: c.Resources.Add(other.Resources),
		Labour:    c.Labour.Add(other.Labour),
	}
}

// ZeroCosts returns a cost record with all components zero.
func ZeroCosts() ProductionCosts {
	return ProductionCosts{
		Means:     decimal.Zero,
		Resources: decimal.Zero,
		Labour:    decimal.Zero,
	}
}
