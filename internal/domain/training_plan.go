// internal/domain/training_plan.go
package domain

import (
	"fmt"
	"strings"
)

// Goal selects the training emphasis requested from the model.
// The values are the strings sent on the wire and written into the prompt.
type Goal string

const (
	GoalMuscleGain Goal = "Massa Muscular"
	GoalDefinition Goal = "Definição"
	GoalWeightLoss Goal = "Perda de Peso"
)

// Goals lists every accepted goal in display order.
var Goals = []Goal{GoalMuscleGain, GoalDefinition, GoalWeightLoss}

// Valid reports whether g is one of the fixed goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalMuscleGain, GoalDefinition, GoalWeightLoss:
		return true
	}
	return false
}

// ParseGoal accepts either the wire value or a short slug
// ("muscle-gain", "definition", "weight-loss").
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "muscle-gain", "musclegain", strings.ToLower(string(GoalMuscleGain)):
		return GoalMuscleGain, nil
	case "definition", strings.ToLower(string(GoalDefinition)):
		return GoalDefinition, nil
	case "weight-loss", "weightloss", strings.ToLower(string(GoalWeightLoss)):
		return GoalWeightLoss, nil
	}
	return "", NewError(KindInvalidInput, MsgInvalidRequest, fmt.Errorf("unknown goal %q", s))
}

// PlanRequest is the ephemeral payload of one generation call.
type PlanRequest struct {
	WeightKg float64 `json:"weightKg" validate:"gt=0,finite"`
	HeightCm float64 `json:"heightCm" validate:"gt=0,finite"`
	Goal     Goal    `json:"goal"`
}

// Validate fails with an InvalidInput error unless weight and height are
// positive and the goal is one of the fixed values.
func (r PlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return NewError(KindInvalidInput, MsgInvalidRequest, err)
	}
	if !r.Goal.Valid() {
		return NewError(KindInvalidInput, MsgInvalidRequest, fmt.Errorf("unknown goal %q", r.Goal))
	}
	return nil
}

// WorkoutPlan is the full multi-day plan. At most one is retained per
// session and it is replaced wholesale on every successful generation.
type WorkoutPlan struct {
	Days []DailyWorkout `bson:"workoutPlan" json:"workoutPlan" validate:"required,min=1,dive"`
}

// Validate checks the structural contract of a plan received from the model:
// at least one day, every day with at least one exercise and every required
// field non-empty.
func (p WorkoutPlan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("workout plan failed structural validation: %w", err)
	}
	return nil
}
