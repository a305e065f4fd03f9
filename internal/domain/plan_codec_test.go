package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlanJSON = `{"workoutPlan":[{"day":"Dia 1","focus":"Peito e Tríceps","daySummary":"Controle a descida.","exercises":[{"name":"Supino Reto","description":"Deite no banco e empurre a barra.","reps":"4x10-12","rest":"60 segundos","equipment":"Barra","musclesWorked":"Peitoral maior","youtubeVideoId":"abc123xyz"}]}]}`

func TestStripCodeFencesMatchesUnfenced(t *testing.T) {
	fenced := "```json\n" + samplePlanJSON + "\n```"

	assert.Equal(t, samplePlanJSON, StripCodeFences(fenced))
	assert.Equal(t, samplePlanJSON, StripCodeFences("  \n"+fenced+"\n\n"))
	assert.Equal(t, samplePlanJSON, StripCodeFences(samplePlanJSON))

	fromFenced, err := DecodePlan(fenced)
	require.NoError(t, err)
	fromRaw, err := DecodePlan(samplePlanJSON)
	require.NoError(t, err)
	assert.Equal(t, fromRaw, fromFenced)
}

func TestDecodePlanFields(t *testing.T) {
	plan, err := DecodePlan(samplePlanJSON)
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)

	day := plan.Days[0]
	assert.Equal(t, "Dia 1", day.Label)
	assert.Equal(t, "Peito e Tríceps", day.FocusArea)
	assert.Equal(t, "Controle a descida.", day.Summary)

	ex := day.Exercises[0]
	assert.Equal(t, "4x10-12", ex.SetsReps)
	assert.Equal(t, "60 segundos", ex.RestInterval)
	assert.Equal(t, "Barra", ex.EquipmentNeeded)
	assert.Equal(t, "Peitoral maior", ex.MusclesWorked)
	assert.Equal(t, "abc123xyz", ex.VideoReferenceID)
}

func TestDecodePlanRejects(t *testing.T) {
	var generic map[string]any
	require.NoError(t, json.Unmarshal([]byte(samplePlanJSON), &generic))
	day := generic["workoutPlan"].([]any)[0].(map[string]any)
	delete(day["exercises"].([]any)[0].(map[string]any), "rest")
	missingRest, err := json.Marshal(generic)
	require.NoError(t, err)

	cases := map[string]string{
		"malformed":     `{"workoutPlan":[`,
		"prose":         "Claro! Aqui está o seu plano.",
		"empty object":  `{}`,
		"no days":       `{"workoutPlan":[]}`,
		"missing field": string(missingRest),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePlan(raw)
			assert.Error(t, err)
		})
	}
}
