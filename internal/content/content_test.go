package content

import "testing"

func TestModulesCatalog(t *testing.T) {
	t.Parallel()

	modules := Modules()
	if len(modules) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(modules))
	}

	seen := map[string]bool{}
	for _, module := range modules {
		if module.ID == "" || module.Title == "" {
			t.Fatalf("module missing id or title: %+v", module)
		}
		if seen[module.ID] {
			t.Fatalf("duplicate module id %q", module.ID)
		}
		seen[module.ID] = true

		if len(module.Days) != 7 {
			t.Fatalf("module %q: expected 7 days, got %d", module.ID, len(module.Days))
		}
		for index, day := range module.Days {
			if day.Title == "" {
				t.Fatalf("module %q day %d: missing title", module.ID, index+1)
			}
			if day.Morning.Task == "" || day.Evening.Task == "" {
				t.Fatalf("module %q day %d: missing morning or evening task", module.ID, index+1)
			}
		}
	}
}

func TestModuleByID(t *testing.T) {
	t.Parallel()

	module, ok := ModuleByID("rewire-itch")
	if !ok {
		t.Fatalf("expected rewire-itch to exist")
	}
	if module.ID != "rewire-itch" {
		t.Fatalf("expected module rewire-itch, got %q", module.ID)
	}

	if _, ok := ModuleByID("no-such-module"); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestModuleDayCount(t *testing.T) {
	t.Parallel()

	if got := ModuleDayCount("stress-safety"); got != 7 {
		t.Fatalf("expected 7 days, got %d", got)
	}
	if got := ModuleDayCount("no-such-module"); got != 7 {
		t.Fatalf("expected fallback of 7 days, got %d", got)
	}
}

func TestQuizQuestions(t *testing.T) {
	t.Parallel()

	questions := QuizQuestions()
	if len(questions) == 0 {
		t.Fatalf("expected quiz questions")
	}

	seen := map[string]bool{}
	for _, question := range questions {
		if question.ID == "" || question.Text == "" {
			t.Fatalf("question missing id or text: %+v", question)
		}
		if seen[question.ID] {
			t.Fatalf("duplicate question id %q", question.ID)
		}
		seen[question.ID] = true
		if len(question.Options) < 2 {
			t.Fatalf("question %q: expected at least two options, got %v", question.ID, question.Options)
		}
	}
}

func TestIngredientDose(t *testing.T) {
	t.Parallel()

	if dose := IngredientDose("Zinc A.A.C."); dose == "" {
		t.Fatalf("expected a catalog dose for zinc")
	}
	if dose := IngredientDose("Unknown Powder"); dose != "" {
		t.Fatalf("expected empty dose for unknown ingredient, got %q", dose)
	}
}
