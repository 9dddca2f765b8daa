package services

import (
	"testing"

	"github.com/quellskin/quell/internal/models"
)

func TestAnalyzeMindsetQuiz_CascadePriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		answers     map[string]string
		wantPersona string
		wantModule  string
	}{
		{
			name:        "anger outranks hopelessness",
			answers:     map[string]string{"feeling": "Angry", "thought": "I will Never fix this"},
			wantPersona: models.PersonaFighter,
			wantModule:  "rewire-itch",
		},
		{
			name:        "aggressive soothing",
			answers:     map[string]string{"soothing": "Scratching until it bleeds"},
			wantPersona: models.PersonaFighter,
			wantModule:  "rewire-itch",
		},
		{
			name:        "hot water soothing",
			answers:     map[string]string{"soothing": "Hot water on the itch"},
			wantPersona: models.PersonaFighter,
			wantModule:  "rewire-itch",
		},
		{
			name:        "shame outranks hopelessness",
			answers:     map[string]string{"feeling": "Ashamed", "belief": "No"},
			wantPersona: models.PersonaHider,
			wantModule:  "rebuild-identity",
		},
		{
			name:        "mirror avoidance",
			answers:     map[string]string{"mirror": "I avoid mirrors entirely"},
			wantPersona: models.PersonaHider,
			wantModule:  "rebuild-identity",
		},
		{
			name:        "hopeless thought",
			answers:     map[string]string{"thought": "This will Never get better"},
			wantPersona: models.PersonaHopeless,
			wantModule:  "attract-healed",
		},
		{
			name:        "no belief in healing",
			answers:     map[string]string{"belief": "No"},
			wantPersona: models.PersonaHopeless,
			wantModule:  "attract-healed",
		},
		{
			name:        "skin controls me",
			answers:     map[string]string{"control": "My skin controls me"},
			wantPersona: models.PersonaHopeless,
			wantModule:  "attract-healed",
		},
		{
			name:        "disconnected feeling",
			answers:     map[string]string{"feeling": "Disconnected"},
			wantPersona: models.PersonaWoundedChild,
			wantModule:  "release-battle",
		},
		{
			name:        "withdrawn intimacy",
			answers:     map[string]string{"intimacy": "I pull away from touch"},
			wantPersona: models.PersonaWoundedChild,
			wantModule:  "release-battle",
		},
		{
			name:        "no markers falls through",
			answers:     map[string]string{"feeling": "Anxious", "thought": "What if it spreads"},
			wantPersona: models.PersonaOverthinker,
			wantModule:  "stress-safety",
		},
		{
			name:        "empty answers fall through",
			answers:     map[string]string{},
			wantPersona: models.PersonaOverthinker,
			wantModule:  "stress-safety",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := AnalyzeMindsetQuiz(testCase.answers)
			if got.Persona != testCase.wantPersona {
				t.Fatalf("expected persona %q, got %q", testCase.wantPersona, got.Persona)
			}
			if got.ModuleID != testCase.wantModule {
				t.Fatalf("expected module %q, got %q", testCase.wantModule, got.ModuleID)
			}
		})
	}
}

func TestAnalyzeMindsetQuiz_ContainmentIsCaseSensitive(t *testing.T) {
	t.Parallel()

	// "I hate how I look" carries lowercase "hate" and does not match the
	// shame branch; the answer falls through the cascade instead.
	got := AnalyzeMindsetQuiz(map[string]string{"thought": "I hate how I look"})
	if got.Persona == models.PersonaHider {
		t.Fatalf("lowercase hate must not match the shame branch")
	}
	if got.Persona != models.PersonaOverthinker {
		t.Fatalf("expected fallthrough persona, got %q", got.Persona)
	}
}
