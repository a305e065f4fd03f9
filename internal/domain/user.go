package domain

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and on-wire format of UserProfile.DateOfBirth.
const DateLayout = "2006-01-02"

// UserProfile holds the physical profile collected at onboarding.
// It is replaced wholesale, never partially updated.
type UserProfile struct {
	Name        string  `bson:"name" json:"name" validate:"required"`
	WeightKg    float64 `bson:"weightKg" json:"weightKg" validate:"gt=0,finite"`
	HeightCm    float64 `bson:"heightCm" json:"heightCm" validate:"gt=0,finite"`
	DateOfBirth string  `bson:"dateOfBirth" json:"dateOfBirth" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
}

// Validate checks the profile fields collected at onboarding.
func (p UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return NewError(KindInvalidInput, MsgInvalidProfile, err)
	}
	return nil
}

// BirthDate parses DateOfBirth as a local calendar date.
func (p UserProfile) BirthDate() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, p.DateOfBirth, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date of birth %q: %w", p.DateOfBirth, err)
	}
	return t, nil
}

// AgeOn returns the calendar age of the profile on the given reference date.
func (p UserProfile) AgeOn(ref time.Time) (int, error) {
	birth, err := p.BirthDate()
	if err != nil {
		return 0, err
	}
	return CalendarAge(birth, ref), nil
}

// CalendarAge is the whole-year difference between birth and ref, minus one
// when ref's month/day falls before the birth month/day. Only the date
// components are compared; the birthday itself counts as the new age.
func CalendarAge(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// PlanRequest derives the generation request from the profile and a goal.
func (p UserProfile) PlanRequest(goal Goal) PlanRequest {
	return PlanRequest{
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
		Goal:     goal,
	}
}
