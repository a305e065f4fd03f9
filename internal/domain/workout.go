package domain

// DailyWorkout is one training session within a plan.
type DailyWorkout struct {
	Label     string     `bson:"day" json:"day" validate:"required"`             // e.g. "Dia 1"
	FocusArea string     `bson:"focus" json:"focus" validate:"required"`         // e.g. "Peito e Tríceps"
	Summary   string     `bson:"daySummary" json:"daySummary" validate:"required"` // tip for the day
	Exercises []Exercise `bson:"exercises" json:"exercises" validate:"required,min=1,dive"`
}
