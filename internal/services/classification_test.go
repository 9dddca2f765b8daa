package services

import (
	"testing"

	"github.com/quellskin/quell/internal/models"
)

func TestClassifySeverity_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		poScorad float64
		want     string
	}{
		{name: "zero", poScorad: 0, want: models.SeverityMild},
		{name: "mild upper edge", poScorad: 15, want: models.SeverityMild},
		{name: "just above mild", poScorad: 15.1, want: models.SeverityModerate},
		{name: "moderate upper edge", poScorad: 28, want: models.SeverityModerate},
		{name: "just above moderate", poScorad: 28.1, want: models.SeveritySevere},
		{name: "severe upper edge", poScorad: 50, want: models.SeveritySevere},
		{name: "just above severe", poScorad: 50.1, want: models.SeverityHighRisk},
		{name: "extreme", poScorad: 103, want: models.SeverityHighRisk},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := ClassifySeverity(testCase.poScorad); got != testCase.want {
				t.Fatalf("score %v: expected %q, got %q", testCase.poScorad, testCase.want, got)
			}
		})
	}
}

func TestClassifyPsychoderm_PriorityOrder(t *testing.T) {
	t.Parallel()

	shameAndAnxiety := models.QuestionnaireData{
		MentalImpact:    []string{"Social Anxiety", "Shame"},
		PerceivedStress: models.StressOverwhelmed,
	}
	if got := ClassifyPsychoderm(shameAndAnxiety); got != models.PsychoShameProne {
		t.Fatalf("shame should outrank every other marker, got %q", got)
	}

	anxietyAndStress := models.QuestionnaireData{
		MentalImpact:    []string{"Social Anxiety"},
		PerceivedStress: models.StressHigh,
	}
	if got := ClassifyPsychoderm(anxietyAndStress); got != models.PsychoAvoidant {
		t.Fatalf("social anxiety should outrank stress, got %q", got)
	}

	stressOnly := models.QuestionnaireData{PerceivedStress: "high"}
	if got := ClassifyPsychoderm(stressOnly); got != models.PsychoStressReactive {
		t.Fatalf("lowercase high stress should classify as stress-reactive, got %q", got)
	}

	calm := models.QuestionnaireData{PerceivedStress: models.StressLow}
	if got := ClassifyPsychoderm(calm); got != models.PsychoResilient {
		t.Fatalf("expected resilient fallback, got %q", got)
	}
}

func TestClassifyInflammation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data models.QuestionnaireData
		po   float64
		want string
	}{
		{
			name: "two active signs",
			data: models.QuestionnaireData{VisualAppearance: []string{"Red", "Weeping"}},
			want: models.InflammationHigh,
		},
		{
			name: "high itch alone",
			data: models.QuestionnaireData{ItchScore: 7},
			want: models.InflammationHigh,
		},
		{
			name: "high score alone",
			data: models.QuestionnaireData{},
			po:   40.5,
			want: models.InflammationHigh,
		},
		{
			name: "single active sign",
			data: models.QuestionnaireData{VisualAppearance: []string{"Crusting"}},
			want: models.InflammationModerate,
		},
		{
			name: "moderate itch",
			data: models.QuestionnaireData{ItchScore: 5},
			want: models.InflammationModerate,
		},
		{
			name: "dry only",
			data: models.QuestionnaireData{VisualAppearance: []string{"Dry"}},
			want: models.InflammationModerate,
		},
		{
			name: "dry does not count as active",
			data: models.QuestionnaireData{VisualAppearance: []string{"Dry", "Lichenified"}},
			want: models.InflammationModerate,
		},
		{
			name: "quiet skin",
			data: models.QuestionnaireData{ItchScore: 2},
			want: models.InflammationLow,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if got := ClassifyInflammation(testCase.data, testCase.po); got != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, got)
			}
		})
	}
}
