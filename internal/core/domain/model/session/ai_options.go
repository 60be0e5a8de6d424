package session

// AIOptimizationOptions are the four independent toggles forwarded to the
// route optimizer when the source sub-option is AI-driven.
type AIOptimizationOptions struct {
	// MinimizeDistance favors the shortest total route over visit order.
	MinimizeDistance bool

	// ConsiderTraffic lets the optimizer weigh live traffic conditions.
	ConsiderTraffic bool

	// PrioritizeColdChain visits cold-chain facilities earlier in the route.
	PrioritizeColdChain bool

	// BalanceLoad spreads heavy stops across the route.
	BalanceLoad bool
}

// AIOptimizationOptionsPatch is a partial update of the optimization
// toggles. Nil fields leave the current value untouched.
type AIOptimizationOptionsPatch struct {
	MinimizeDistance    *bool
	ConsiderTraffic     *bool
	PrioritizeColdChain *bool
	BalanceLoad         *bool
}

// Merge applies the patch over the current options and returns the result.
func (o AIOptimizationOptions) Merge(patch AIOptimizationOptionsPatch) AIOptimizationOptions {
	merged := o
	if patch.MinimizeDistance != nil {
		merged.MinimizeDistance = *patch.MinimizeDistance
	}
	if patch.ConsiderTraffic != nil {
		merged.ConsiderTraffic = *patch.ConsiderTraffic
	}
	if patch.PrioritizeColdChain != nil {
		merged.PrioritizeColdChain = *patch.PrioritizeColdChain
	}
	if patch.BalanceLoad != nil {
		merged.BalanceLoad = *patch.BalanceLoad
	}
	return merged
}
