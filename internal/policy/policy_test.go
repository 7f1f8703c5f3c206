package policy

import "testing"

func TestDiscountFor(t *testing.T) {
	cases := []struct {
		plan string
		want int
	}{
		{"free", 0},
		{"pro", 4},
		{"elite", 10},
		{"unknown", 0},
		{"", 0},
		{"ELITE", 10},
	}

	for _, tc := range cases {
		if got := DiscountFor(Plan(tc.plan)); got != tc.want {
			t.Errorf("DiscountFor(%q) = %d, want %d", tc.plan, got, tc.want)
		}
	}
}

func TestParsePlanDefaultsToFree(t *testing.T) {
	if got := ParsePlan("platinum"); got != PlanFree {
		t.Errorf("ParsePlan(platinum) = %q, want free", got)
	}
	if got := ParsePlan(" Pro "); got != PlanPro {
		t.Errorf("ParsePlan( Pro ) = %q, want pro", got)
	}
}

func TestIsFeatureEnabled(t *testing.T) {
	cases := []struct {
		plan    Plan
		feature Feature
		want    bool
	}{
		{PlanFree, FeatureVideoCoaching, false},
		{PlanPro, FeatureVideoCoaching, false},
		{PlanElite, FeatureVideoCoaching, true},
		{PlanPro, FeatureExercisePlans, true},
		{PlanFree, FeatureExercisePlans, false},
		{PlanElite, FeatureExercisePlans, true},
		{PlanFree, FeatureBMICalculator, true},
		{PlanFree, FeatureRemedies, true},
		{PlanFree, FeatureShopBrowsing, true},
		{PlanPro, FeatureChatbot, true},
		{PlanFree, FeatureChatbot, false},
		{PlanElite, FeatureHydrationTracking, true},
		{PlanPro, FeatureHydrationTracking, false},
		{PlanElite, FeatureSupplementGuidance, true},
		{Plan("unknown"), FeatureVideoCoaching, false},
		{Plan("unknown"), FeatureBMICalculator, true},
		{PlanElite, Feature("teleportation"), false},
	}

	for _, tc := range cases {
		if got := IsFeatureEnabled(tc.plan, tc.feature); got != tc.want {
			t.Errorf("IsFeatureEnabled(%q, %q) = %v, want %v", tc.plan, tc.feature, got, tc.want)
		}
	}
}

func TestAmountPaise(t *testing.T) {
	if _, ok := AmountPaise(PlanFree); ok {
		t.Error("free plan must not be purchasable")
	}
	pro, ok := AmountPaise(PlanPro)
	if !ok || pro <= 0 {
		t.Errorf("expected positive pro amount, got %d (ok=%v)", pro, ok)
	}
	elite, ok := AmountPaise(PlanElite)
	if !ok || elite <= pro {
		t.Errorf("expected elite amount above pro, got %d (ok=%v)", elite, ok)
	}
}
