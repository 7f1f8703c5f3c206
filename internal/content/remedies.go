package content

type Remedy struct {
	Ailment     string   `json:"ailment"`
	Suggestions []string `json:"suggestions"`
}

var remedies = []Remedy{
	{Ailment: "Muscle soreness", Suggestions: []string{"Light stretching and a warm shower", "Stay hydrated through the day", "Epsom salt soak before bed"}},
	{Ailment: "Knee pain after squats", Suggestions: []string{"Reduce load and check squat depth", "Ice for 15 minutes after training", "Strengthen glutes and hamstrings"}},
	{Ailment: "Post-workout headache", Suggestions: []string{"Drink water with a pinch of salt", "Cool down gradually instead of stopping abruptly", "Avoid training in direct sun"}},
	{Ailment: "Low energy", Suggestions: []string{"Eat a carb and protein snack 90 minutes before training", "Sleep at least 7 hours", "Cut back caffeine after 4pm"}},
	{Ailment: "Shin splints", Suggestions: []string{"Switch to softer running surfaces", "Calf raises and toe walks daily", "Replace worn running shoes"}},
}

func Remedies() []Remedy {
	return remedies
}

type SupplementAdvice struct {
	Supplement string `json:"supplement"`
	Timing     string `json:"timing"`
	Notes      string `json:"notes"`
}

// supplementGuidance is the elite-tier expert table shown alongside the
// store.
var supplementGuidance = []SupplementAdvice{
	{Supplement: "Whey protein", Timing: "Within 30 minutes after training", Notes: "1 scoop with water or milk; count it toward daily protein, not in addition."},
	{Supplement: "Creatine monohydrate", Timing: "Any time, daily", Notes: "3-5g every day including rest days; no loading phase needed."},
	{Supplement: "Fish oil", Timing: "With a main meal", Notes: "Look for combined EPA+DHA of at least 1g."},
	{Supplement: "Vitamin D3", Timing: "Morning, with food", Notes: "Get levels tested before going above 2000 IU daily."},
	{Supplement: "Electrolytes", Timing: "During sessions over 60 minutes", Notes: "Mostly useful in hot weather or heavy sweat sessions."},
}

func SupplementGuidance() []SupplementAdvice {
	return supplementGuidance
}
