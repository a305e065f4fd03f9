package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches a leading ``` or ```json fence or a trailing ```
// fence, each with the whitespace next to it.
var fencePattern = regexp.MustCompile("^```(?:json)?\\s*|```\\s*$")

// StripCodeFences removes markdown code-block delimiters the model may wrap
// its JSON in even when asked for raw JSON.
func StripCodeFences(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(text), ""))
}

// DecodePlan strips code fences, parses the JSON and checks the structural
// contract. Unknown fields are ignored; missing required ones are rejected.
func DecodePlan(raw string) (WorkoutPlan, error) {
	var plan WorkoutPlan
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &plan); err != nil {
		return WorkoutPlan{}, fmt.Errorf("decode workout plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return WorkoutPlan{}, err
	}
	return plan, nil
}
