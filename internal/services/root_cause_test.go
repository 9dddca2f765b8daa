package services

import (
	"strings"
	"testing"

	"github.com/quellskin/quell/internal/models"
)

func TestSummarizeRootCause_BarrierDefectiveFallback(t *testing.T) {
	t.Parallel()

	data := models.QuestionnaireData{
		Smoking:   "Never",
		GutHealth: models.GutHealthGood,
	}

	got := SummarizeRootCause(data)
	if !strings.Contains(got, `"Barrier-Defective,"`) {
		t.Fatalf("expected barrier-defective fallback, got %q", got)
	}
}

func TestSummarizeRootCause_TriggersJoinInFixedOrder(t *testing.T) {
	t.Parallel()

	data := models.QuestionnaireData{
		EczemaOnset:     "Childhood",
		PerceivedStress: models.StressHigh,
		GutHealth:       "Poor",
		Hydration:       "<1L",
		Smoking:         "Never",
		ShowerTemp:      "Hot (Steaming)",
	}

	got := SummarizeRootCause(data)
	want := "Your profile suggests a complex flare loop driven by " +
		"genetic filaggrin deficiency, chronic cortisol spikes, gut microbiome dysbiosis, " +
		"cellular dehydration, thermal barrier stripping. " +
		"Addressing these internal triggers is your priority."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSummarizeRootCause_SmokingRequiresExplicitAnswer(t *testing.T) {
	t.Parallel()

	unanswered := models.QuestionnaireData{GutHealth: models.GutHealthGood}
	if got := SummarizeRootCause(unanswered); strings.Contains(got, "oxidative stress") {
		t.Fatalf("blank smoking answer should not count as a trigger: %q", got)
	}

	smoker := models.QuestionnaireData{GutHealth: models.GutHealthGood, Smoking: "Regular"}
	if got := SummarizeRootCause(smoker); !strings.Contains(got, "oxidative stress from smoking") {
		t.Fatalf("expected smoking trigger, got %q", got)
	}
}

func TestSummarizeRootCause_SweatAlkalizationNeedsLimbInvolvement(t *testing.T) {
	t.Parallel()

	torsoOnly := models.QuestionnaireData{
		GutHealth:       models.GutHealthGood,
		Smoking:         "Never",
		ExerciseLevel:   "Athlete",
		EczemaLocations: []string{"Torso"},
	}
	if got := SummarizeRootCause(torsoOnly); strings.Contains(got, "sweat-induced") {
		t.Fatalf("torso-only athlete should not trigger sweat alkalization: %q", got)
	}

	armsAffected := models.QuestionnaireData{
		GutHealth:       models.GutHealthGood,
		Smoking:         "Never",
		ExerciseLevel:   "Active",
		EczemaLocations: []string{"Arms"},
	}
	if got := SummarizeRootCause(armsAffected); !strings.Contains(got, "sweat-induced alkalization") {
		t.Fatalf("expected sweat alkalization trigger, got %q", got)
	}
}

func TestSummarizeRootCause_TSWVariants(t *testing.T) {
	t.Parallel()

	for _, usage := range []string{"TSW (Withdrawal)", "Withdrawal"} {
		data := models.QuestionnaireData{
			GutHealth:       models.GutHealthGood,
			Smoking:         "Never",
			MedicationUsage: usage,
		}
		if got := SummarizeRootCause(data); !strings.Contains(got, "vascular dilation (TSW)") {
			t.Fatalf("usage %q: expected TSW trigger, got %q", usage, got)
		}
	}
}
