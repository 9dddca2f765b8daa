package models

// The five mindset personas the quiz can assign.
const (
	PersonaFighter      = "The Fighter"
	PersonaHider        = "The Hider"
	PersonaHopeless     = "The Hopeless Healer"
	PersonaWoundedChild = "The Wounded Inner Child"
	PersonaOverthinker  = "The Burnt-Out Overthinker"
)

// MindsetProfile tracks a user's progress through their assigned mindset
// module. It is created when the persona quiz completes and replaced
// wholesale when the quiz is retaken.
type MindsetProfile struct {
	Persona          string            `json:"persona"`
	AssignedModuleID string            `json:"assigned_module_id"`
	StartDate        string            `json:"start_date"`
	CurrentDay       int               `json:"current_day"`
	CompletedDays    []string          `json:"completed_days"`
	QuizAnswers      map[string]string `json:"quiz_answers"`
	Streak           int               `json:"streak"`
}
