// Package content serves the static plan and remedy tables. The tables are
// compiled in; recency is not a concern for curated content and it keeps the
// read path trivial.
package content

type ExerciseDay struct {
	Day       string   `json:"day"`
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
}

type ExercisePlan struct {
	Goal string        `json:"goal"`
	Days []ExerciseDay `json:"days"`
}

type Meal struct {
	Name     string   `json:"name"`
	Items    []string `json:"items"`
	Calories int      `json:"calories"`
}

type DietPlan struct {
	Goal  string `json:"goal"`
	Meals []Meal `json:"meals"`
}

var exercisePlans = []ExercisePlan{
	{
		Goal: "weight_loss",
		Days: []ExerciseDay{
			{Day: "Monday", Focus: "Full body circuit", Exercises: []string{"Jumping jacks 3x40", "Bodyweight squats 3x15", "Push-ups 3x12", "Mountain climbers 3x30s"}},
			{Day: "Tuesday", Focus: "Steady cardio", Exercises: []string{"Brisk walk or jog 35 min", "Plank 3x45s"}},
			{Day: "Wednesday", Focus: "Lower body", Exercises: []string{"Lunges 3x12 each leg", "Glute bridges 3x15", "Calf raises 3x20"}},
			{Day: "Thursday", Focus: "Active recovery", Exercises: []string{"Stretching 20 min", "Light cycling 20 min"}},
			{Day: "Friday", Focus: "HIIT", Exercises: []string{"Burpees 5x10", "High knees 5x30s", "Rest 60s between rounds"}},
			{Day: "Saturday", Focus: "Core", Exercises: []string{"Crunches 3x20", "Russian twists 3x20", "Leg raises 3x12"}},
			{Day: "Sunday", Focus: "Rest", Exercises: []string{"Full rest day"}},
		},
	},
	{
		Goal: "muscle_gain",
		Days: []ExerciseDay{
			{Day: "Monday", Focus: "Chest and triceps", Exercises: []string{"Bench press 4x8", "Incline dumbbell press 3x10", "Tricep dips 3x12"}},
			{Day: "Tuesday", Focus: "Back and biceps", Exercises: []string{"Deadlift 4x6", "Lat pulldown 3x10", "Barbell curls 3x12"}},
			{Day: "Wednesday", Focus: "Rest", Exercises: []string{"Full rest day"}},
			{Day: "Thursday", Focus: "Legs", Exercises: []string{"Squats 4x8", "Leg press 3x10", "Hamstring curls 3x12"}},
			{Day: "Friday", Focus: "Shoulders", Exercises: []string{"Overhead press 4x8", "Lateral raises 3x15", "Shrugs 3x12"}},
			{Day: "Saturday", Focus: "Arms and core", Exercises: []string{"Close-grip bench 3x10", "Hammer curls 3x12", "Hanging leg raises 3x10"}},
			{Day: "Sunday", Focus: "Rest", Exercises: []string{"Full rest day"}},
		},
	},
	{
		Goal: "general_fitness",
		Days: []ExerciseDay{
			{Day: "Monday", Focus: "Full body strength", Exercises: []string{"Goblet squats 3x12", "Push-ups 3x12", "Bent-over rows 3x12"}},
			{Day: "Tuesday", Focus: "Cardio", Exercises: []string{"Run or cycle 30 min"}},
			{Day: "Wednesday", Focus: "Mobility", Exercises: []string{"Yoga flow 30 min", "Foam rolling 10 min"}},
			{Day: "Thursday", Focus: "Strength", Exercises: []string{"Lunges 3x12", "Shoulder press 3x10", "Plank 3x60s"}},
			{Day: "Friday", Focus: "Cardio intervals", Exercises: []string{"Sprint intervals 8x30s", "Cooldown walk 10 min"}},
			{Day: "Saturday", Focus: "Recreation", Exercises: []string{"Sport, swim or hike of choice"}},
			{Day: "Sunday", Focus: "Rest", Exercises: []string{"Full rest day"}},
		},
	},
}

var dietPlans = []DietPlan{
	{
		Goal: "weight_loss",
		Meals: []Meal{
			{Name: "Breakfast", Items: []string{"Vegetable poha", "Green tea"}, Calories: 280},
			{Name: "Mid-morning", Items: []string{"Apple", "10 almonds"}, Calories: 150},
			{Name: "Lunch", Items: []string{"2 rotis", "Dal", "Cucumber salad", "Curd"}, Calories: 450},
			{Name: "Evening", Items: []string{"Sprout chaat"}, Calories: 180},
			{Name: "Dinner", Items: []string{"Grilled paneer or chicken", "Sautéed vegetables"}, Calories: 400},
		},
	},
	{
		Goal: "muscle_gain",
		Meals: []Meal{
			{Name: "Breakfast", Items: []string{"4 egg omelette", "Oats with milk", "Banana"}, Calories: 620},
			{Name: "Mid-morning", Items: []string{"Peanut butter sandwich", "Whey shake"}, Calories: 450},
			{Name: "Lunch", Items: []string{"Rice", "Chicken curry or rajma", "Salad"}, Calories: 700},
			{Name: "Evening", Items: []string{"Boiled eggs", "Dry fruits"}, Calories: 300},
			{Name: "Dinner", Items: []string{"3 rotis", "Paneer bhurji", "Milk"}, Calories: 650},
		},
	},
	{
		Goal: "general_fitness",
		Meals: []Meal{
			{Name: "Breakfast", Items: []string{"Idli with sambar", "Fruit bowl"}, Calories: 380},
			{Name: "Lunch", Items: []string{"2 rotis", "Seasonal vegetable", "Dal", "Salad"}, Calories: 520},
			{Name: "Evening", Items: []string{"Roasted chana", "Buttermilk"}, Calories: 200},
			{Name: "Dinner", Items: []string{"Khichdi", "Curd"}, Calories: 450},
		},
	},
}

func ExercisePlans() []ExercisePlan {
	return exercisePlans
}

func ExercisePlanForGoal(goal string) (ExercisePlan, bool) {
	for _, plan := range exercisePlans {
		if plan.Goal == goal {
			return plan, true
		}
	}
	return ExercisePlan{}, false
}

func DietPlans() []DietPlan {
	return dietPlans
}

func DietPlanForGoal(goal string) (DietPlan, bool) {
	for _, plan := range dietPlans {
		if plan.Goal == goal {
			return plan, true
		}
	}
	return DietPlan{}, false
}
