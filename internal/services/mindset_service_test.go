package services

import (
	"errors"
	"testing"
	"time"

	"github.com/quellskin/quell/internal/models"
)

func TestFinishQuiz_CreatesRecordAndAssignsModule(t *testing.T) {
	t.Parallel()

	profiles := &stubProfileRecordRepo{}
	service := NewMindsetService(profiles)
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	profile, err := service.FinishQuiz(7, map[string]string{"feeling": "Angry"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Persona != models.PersonaFighter || profile.AssignedModuleID != "rewire-itch" {
		t.Fatalf("unexpected assignment: %+v", profile)
	}
	if profiles.createCalls != 1 {
		t.Fatalf("expected record creation, got %d creates", profiles.createCalls)
	}
	if profiles.record.UserID != 7 || profiles.record.Mindset == nil {
		t.Fatalf("expected stored mindset profile, got %+v", profiles.record)
	}
	if profiles.record.BlendStatus != models.BlendActive {
		t.Fatalf("fresh record must default blend status, got %q", profiles.record.BlendStatus)
	}
}

func TestFinishQuiz_RetakeReplacesProgress(t *testing.T) {
	t.Parallel()

	profiles := &stubProfileRecordRepo{
		found: true,
		record: models.ProfileRecord{
			UserID: 7,
			Mindset: &models.MindsetProfile{
				Persona:          models.PersonaFighter,
				AssignedModuleID: "rewire-itch",
				CurrentDay:       5,
				CompletedDays:    []string{"2026-03-29", "2026-03-30"},
				Streak:           2,
			},
		},
	}
	service := NewMindsetService(profiles)

	profile, err := service.FinishQuiz(7, map[string]string{"belief": "No"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Persona != models.PersonaHopeless {
		t.Fatalf("expected reclassified persona, got %q", profile.Persona)
	}
	if profile.CurrentDay != 1 || profile.Streak != 0 || len(profile.CompletedDays) != 0 {
		t.Fatalf("retake must reset progress, got %+v", profile)
	}
	if profiles.saveCalls != 1 {
		t.Fatalf("expected existing record to be saved, got %d saves", profiles.saveCalls)
	}
}

func TestGetMindset_NotStarted(t *testing.T) {
	t.Parallel()

	service := NewMindsetService(&stubProfileRecordRepo{})
	if _, err := service.GetMindset(7); !errors.Is(err, ErrMindsetNotStarted) {
		t.Fatalf("expected ErrMindsetNotStarted, got %v", err)
	}

	// A profile record without a quiz result is still not started.
	service = NewMindsetService(&stubProfileRecordRepo{
		found:  true,
		record: models.ProfileRecord{UserID: 7},
	})
	if _, err := service.GetMindset(7); !errors.Is(err, ErrMindsetNotStarted) {
		t.Fatalf("expected ErrMindsetNotStarted for quiz-less record, got %v", err)
	}
}

func TestCompleteDay(t *testing.T) {
	t.Parallel()

	profiles := &stubProfileRecordRepo{
		found: true,
		record: models.ProfileRecord{
			UserID: 7,
			Mindset: &models.MindsetProfile{
				AssignedModuleID: "stress-safety",
				CurrentDay:       2,
				CompletedDays:    []string{"2026-04-01"},
				Streak:           1,
			},
		},
	}
	service := NewMindsetService(profiles)
	now := time.Date(2026, 4, 2, 20, 0, 0, 0, time.UTC)

	profile, counted, err := service.CompleteDay(7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !counted {
		t.Fatalf("expected the completion to count")
	}
	if profile.Streak != 2 || profile.CurrentDay != 3 {
		t.Fatalf("expected streak 2 day 3, got %+v", profile)
	}
	if profiles.saveCalls != 1 {
		t.Fatalf("expected one save, got %d", profiles.saveCalls)
	}

	// Same day again: reported as not counted, nothing written.
	_, counted, err = service.CompleteDay(7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counted {
		t.Fatalf("repeat completion must not count")
	}
	if profiles.saveCalls != 1 {
		t.Fatalf("repeat completion must not save, got %d saves", profiles.saveCalls)
	}
}

func TestCompleteDay_RequiresQuiz(t *testing.T) {
	t.Parallel()

	service := NewMindsetService(&stubProfileRecordRepo{})
	if _, _, err := service.CompleteDay(7, time.Now()); !errors.Is(err, ErrMindsetNotStarted) {
		t.Fatalf("expected ErrMindsetNotStarted, got %v", err)
	}
}

func TestSelectModule(t *testing.T) {
	t.Parallel()

	profiles := &stubProfileRecordRepo{
		found: true,
		record: models.ProfileRecord{
			UserID: 7,
			Mindset: &models.MindsetProfile{
				AssignedModuleID: "rewire-itch",
				Streak:           3,
			},
		},
	}
	service := NewMindsetService(profiles)

	profile, err := service.SelectModule(7, "release-battle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AssignedModuleID != "release-battle" {
		t.Fatalf("expected reassigned module, got %q", profile.AssignedModuleID)
	}
	if profile.Streak != 3 {
		t.Fatalf("switching must keep the streak, got %d", profile.Streak)
	}

	if _, err := service.SelectModule(7, "no-such-module"); !errors.Is(err, ErrMindsetModuleUnknown) {
		t.Fatalf("expected ErrMindsetModuleUnknown, got %v", err)
	}
}
