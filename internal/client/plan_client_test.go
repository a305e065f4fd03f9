package client

import (
	"alcyxob/workout-planner/internal/domain"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planJSON = `{"workoutPlan":[{"day":"Dia 1","focus":"Ombros","daySummary":"Suba com controle.","exercises":[{"name":"Desenvolvimento","description":"Empurre os halteres acima da cabeça.","reps":"3x10","rest":"45 segundos","equipment":"Halteres","musclesWorked":"Deltoides","youtubeVideoId":"q1w2e3"}]}]}`

func TestGeneratePlanSendsRequestAndParsesPlan(t *testing.T) {
	var received domain.PlanRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"weightKg":80,"heightCm":180,"goal":"Perda de Peso"}`, string(raw))
		require.NoError(t, json.Unmarshal(raw, &received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(planJSON))
	}))
	defer srv.Close()

	plan, err := NewPlanClient(srv.URL, time.Second).GeneratePlan(context.Background(),
		domain.PlanRequest{WeightKg: 80, HeightCm: 180, Goal: domain.GoalWeightLoss})
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Desenvolvimento", plan.Days[0].Exercises[0].Name)
	assert.Equal(t, domain.GoalWeightLoss, received.Goal)
}

func TestGeneratePlanInvalidInputMakesNoCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewPlanClient(srv.URL, time.Second)
	for _, req := range []domain.PlanRequest{
		{WeightKg: 0, HeightCm: 75, Goal: domain.GoalMuscleGain},
		{WeightKg: math.Inf(1), HeightCm: 175, Goal: domain.GoalMuscleGain},
		{WeightKg: 70, HeightCm: math.Inf(-1), Goal: domain.GoalDefinition},
	} {
		_, err := c.GeneratePlan(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, domain.MsgInvalidRequest, domain.UserMessage(err, ""))
	}
	assert.Zero(t, hits.Load())
}

func TestGeneratePlanServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"A chave de API do Google não está configurada no ambiente do servidor."}`))
	}))
	defer srv.Close()

	_, err := NewPlanClient(srv.URL, time.Second).GeneratePlan(context.Background(),
		domain.PlanRequest{WeightKg: 70, HeightCm: 170, Goal: domain.GoalDefinition})
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
	assert.Equal(t, domain.MsgMissingAPIKey, domain.UserMessage(err, ""))
}

func TestGeneratePlanGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewPlanClient(srv.URL, time.Second).GeneratePlan(context.Background(),
		domain.PlanRequest{WeightKg: 70, HeightCm: 170, Goal: domain.GoalDefinition})
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
	assert.Equal(t, domain.MsgCommunication, domain.UserMessage(err, ""))
}

func TestGeneratePlanTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewPlanClient(url, time.Second).GeneratePlan(context.Background(),
		domain.PlanRequest{WeightKg: 70, HeightCm: 170, Goal: domain.GoalDefinition})
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
	assert.Equal(t, domain.MsgCommunication, domain.UserMessage(err, ""))
}

func TestGeneratePlanRejectsIncompletePlan(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("```json\n{\"workoutPlan\":[{\"day\":\"Dia 1\",\"focus\":\"Ombros\",\"daySummary\":\"x\",\"exercises\":[{\"name\":\"Elevação\"}]}]}\n```"))
	}))
	defer srv.Close()

	_, err := NewPlanClient(srv.URL, time.Second).GeneratePlan(context.Background(),
		domain.PlanRequest{WeightKg: 70, HeightCm: 170, Goal: domain.GoalDefinition})
	require.ErrorIs(t, err, domain.ErrGenerationFailure)
	assert.Equal(t, domain.MsgGenerationRejected, domain.UserMessage(err, ""))
	assert.Equal(t, int32(1), hits.Load(), "no automatic retry")
}
