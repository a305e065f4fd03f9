package service

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/observability"
	"context"
	"errors"
	"log"
	"time"
)

// --- Error Definitions ---
var (
	ErrGeneratorNotConfigured = errors.New("text-generation model is not configured")
)

// Generator is the text-generation backend. Implementations send the prompt
// together with the fixed response schema and return the raw text.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// --- Service Interface ---
type PlanService interface {
	// GeneratePlan validates req, asks the model for a plan and returns it
	// only when it passes structural validation. Errors are *domain.Error
	// tagged InvalidInput, ConfigurationError or GenerationFailure.
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WorkoutPlan, error)
}

// --- Service Implementation ---

// planService implements the PlanService interface.
type planService struct {
	generator Generator
}

// NewPlanService creates a new instance of planService. A nil generator is
// allowed: every call then fails with a configuration error, so the server
// can start without a credential and report the problem per request.
func NewPlanService(generator Generator) PlanService {
	return &planService{generator: generator}
}

// GeneratePlan performs exactly one model call.
func (s *planService) GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WorkoutPlan, error) {
	if err := req.Validate(); err != nil {
		observability.RecordGeneration(observability.OutcomeInvalidInput)
		return domain.WorkoutPlan{}, err
	}

	if s.generator == nil {
		log.Println("ERROR: generation requested but no model API key is configured")
		observability.RecordGeneration(observability.OutcomeConfiguration)
		return domain.WorkoutPlan{}, domain.NewError(domain.KindConfiguration, domain.MsgMissingAPIKey, ErrGeneratorNotConfigured)
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, SystemInstruction, BuildPrompt(req))
	observability.ObserveModelCall(time.Since(start))
	if err != nil {
		log.Printf("ERROR: model call failed: %v", err)
		observability.RecordGeneration(observability.OutcomeFailure)
		return domain.WorkoutPlan{}, domain.NewError(domain.KindGenerationFailure, domain.MsgModelFailure, err)
	}

	plan, err := domain.DecodePlan(text)
	if err != nil {
		log.Printf("ERROR: model response rejected: %v", err)
		observability.RecordGeneration(observability.OutcomeFailure)
		return domain.WorkoutPlan{}, domain.NewError(domain.KindGenerationFailure, domain.MsgModelFailure, err)
	}

	observability.RecordGeneration(observability.OutcomeSuccess)
	return plan, nil
}
