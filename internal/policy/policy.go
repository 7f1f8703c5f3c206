// Package policy is the single source of truth for membership gating:
// which features a plan unlocks, the store discount it earns, and what a
// paid plan costs. Everything here is a pure lookup; the current binding is
// always read fresh from the membership store by the caller.
package policy

import "strings"

type Plan string

const (
	PlanFree  Plan = "free"
	PlanPro   Plan = "pro"
	PlanElite Plan = "elite"
)

// ParsePlan maps a stored plan string to a Plan. Unrecognized values fall
// back to the free plan rather than erroring.
func ParsePlan(s string) Plan {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pro":
		return PlanPro
	case "elite":
		return PlanElite
	default:
		return PlanFree
	}
}

func (p Plan) String() string {
	return string(p)
}

type Feature string

const (
	FeatureBMICalculator      Feature = "bmiCalculator"
	FeatureRemedies           Feature = "remedies"
	FeatureShopBrowsing       Feature = "shopBrowsing"
	FeatureExercisePlans      Feature = "exercisePlans"
	FeatureDietPlans          Feature = "dietPlans"
	FeatureChatbot            Feature = "chatbot"
	FeatureStoreDiscount      Feature = "storeDiscount"
	FeatureVideoCoaching      Feature = "videoCoaching"
	FeatureSupplementGuidance Feature = "supplementGuidance"
	FeatureHydrationTracking  Feature = "hydrationTracking"
)

var planRank = map[Plan]int{
	PlanFree:  0,
	PlanPro:   1,
	PlanElite: 2,
}

// minimumTier maps each feature to the lowest plan that unlocks it.
var minimumTier = map[Feature]Plan{
	FeatureBMICalculator:      PlanFree,
	FeatureRemedies:           PlanFree,
	FeatureShopBrowsing:       PlanFree,
	FeatureExercisePlans:      PlanPro,
	FeatureDietPlans:          PlanPro,
	FeatureChatbot:            PlanPro,
	FeatureStoreDiscount:      PlanPro,
	FeatureVideoCoaching:      PlanElite,
	FeatureSupplementGuidance: PlanElite,
	FeatureHydrationTracking:  PlanElite,
}

var discounts = map[Plan]int{
	PlanFree:  0,
	PlanPro:   4,
	PlanElite: 10,
}

// DiscountFor returns the store discount percentage for a plan.
func DiscountFor(plan Plan) int {
	return discounts[ParsePlan(string(plan))]
}

// IsFeatureEnabled reports whether a plan unlocks a feature. Unknown
// features are disabled for every plan.
func IsFeatureEnabled(plan Plan, feature Feature) bool {
	tier, ok := minimumTier[feature]
	if !ok {
		return false
	}
	return planRank[ParsePlan(string(plan))] >= planRank[tier]
}

// Plan pricing, in paise per 30-day period. The free plan is not
// purchasable.
var amountPaise = map[Plan]int64{
	PlanPro:   69900,
	PlanElite: 99900,
}

func AmountPaise(plan Plan) (int64, bool) {
	amount, ok := amountPaise[plan]
	return amount, ok
}
