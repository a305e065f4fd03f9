// Package session owns the profile and current plan of one user and
// persists them at explicit lifecycle points.
package session

import (
	"alcyxob/workout-planner/internal/document"
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	ErrNotLoggedIn   = errors.New("no profile: log in first")
	ErrNoPlan        = errors.New("no workout plan: generate one first")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Store persists the session state. *repository.ProfileStore implements it.
type Store interface {
	LoadProfile(ctx context.Context) (*domain.UserProfile, error)
	LoadPlan(ctx context.Context) (*domain.WorkoutPlan, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	SavePlan(ctx context.Context, plan domain.WorkoutPlan) error
	DeletePlan(ctx context.Context) error
	DeleteAll(ctx context.Context) error
	Reset(ctx context.Context) error
}

// PlanGenerator produces a plan for a request. *client.PlanClient
// implements it.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (domain.WorkoutPlan, error)
}

// Format selects an export document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// State is what the presentation layer renders. A nil Profile means the
// user has to go through onboarding.
type State struct {
	Profile *domain.UserProfile
	Plan    *domain.WorkoutPlan
}

// NeedsOnboarding reports whether no profile is present.
func (s State) NeedsOnboarding() bool { return s.Profile == nil }

// Session is the single owner of State. It is not safe for concurrent use;
// callers run one operation at a time, including Generate.
type Session struct {
	store     Store
	generator PlanGenerator
	now       func() time.Time
	state     State
}

// New creates a session with empty state. Call Load to restore what was
// persisted.
func New(store Store, generator PlanGenerator) *Session {
	return &Session{store: store, generator: generator, now: time.Now}
}

// State returns the current in-memory state.
func (s *Session) State() State { return s.state }

// Load restores the persisted profile and plan. A plan is only restored
// together with a profile. Corrupt stored data wipes the storage scope and
// yields an empty state instead of an error.
func (s *Session) Load(ctx context.Context) (State, error) {
	state, err := s.load(ctx)
	if errors.Is(err, domain.ErrStorageCorruption) {
		log.Printf("WARN: Stored session data is corrupt, resetting: %v", err)
		if resetErr := s.store.Reset(ctx); resetErr != nil {
			return State{}, fmt.Errorf("reset corrupt session: %w", resetErr)
		}
		s.state = State{}
		return s.state, nil
	}
	if err != nil {
		return State{}, err
	}
	s.state = state
	return s.state, nil
}

func (s *Session) load(ctx context.Context) (State, error) {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil || profile == nil {
		return State{}, err
	}
	plan, err := s.store.LoadPlan(ctx)
	if err != nil {
		return State{}, err
	}
	return State{Profile: profile, Plan: plan}, nil
}

// Login validates and persists the profile, replacing any previous one.
func (s *Session) Login(ctx context.Context, profile domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.state.Profile = &profile
	return nil
}

// Generate requests a plan for goal using the stored weight and height and
// persists it. On any error the previous state is kept as it was.
func (s *Session) Generate(ctx context.Context, goal domain.Goal) (domain.WorkoutPlan, error) {
	if s.state.Profile == nil {
		return domain.WorkoutPlan{}, ErrNotLoggedIn
	}
	plan, err := s.generator.GeneratePlan(ctx, s.state.Profile.PlanRequest(goal))
	if err != nil {
		return domain.WorkoutPlan{}, err
	}
	if err := s.store.SavePlan(ctx, plan); err != nil {
		return domain.WorkoutPlan{}, fmt.Errorf("save plan: %w", err)
	}
	s.state.Plan = &plan
	return plan, nil
}

// ClearPlan drops the current plan and keeps the profile.
func (s *Session) ClearPlan(ctx context.Context) error {
	if err := s.store.DeletePlan(ctx); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	s.state.Plan = nil
	return nil
}

// Logout deletes the persisted profile and plan.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.state = State{}
	return nil
}

// Export renders the current plan in the given format and hands it to sink.
// It returns the location reported by the sink.
func (s *Session) Export(ctx context.Context, format Format, sink storage.DocumentSink) (string, error) {
	if s.state.Profile == nil {
		return "", ErrNotLoggedIn
	}
	if s.state.Plan == nil {
		return "", ErrNoPlan
	}

	var (
		data        []byte
		name        string
		contentType string
		err         error
	)
	switch format {
	case FormatPDF:
		data, err = document.RenderPDF(*s.state.Plan, *s.state.Profile, s.now())
		name, contentType = document.PDFFileName, storage.ContentTypePDF
	case FormatXLSX:
		data, err = document.Workbook(*s.state.Plan, *s.state.Profile, s.now())
		name, contentType = document.WorkbookFileName, storage.ContentTypeXLSX
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", format, err)
	}
	return sink.Save(ctx, name, contentType, data)
}
