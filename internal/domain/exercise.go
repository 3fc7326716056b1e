// internal/domain/exercise.go
package domain

// Exercise is a single activity in a daily plan.
type Exercise struct {
	Name      string `json:"name" bson:"name"`
	Reps      string `json:"reps,omitempty" bson:"reps,omitempty"`         // e.g., "3-4 sets of 8-12"
	Duration  string `json:"duration,omitempty" bson:"duration,omitempty"` // e.g., "45 min"
	Completed bool   `json:"completed" bson:"completed"`
}

// Meal is a single dish in a daily plan.
type Meal struct {
	Name        string `json:"name" bson:"name"`
	Calories    int    `json:"calories" bson:"calories"`
	Completed   bool   `json:"completed" bson:"completed"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}
