package models

import "time"

// ProfileRecord is the stored per-user profile: at most one row per user,
// holding the questionnaire snapshot and everything derived from it as JSON
// documents. Derived documents are replaced whole, never patched.
type ProfileRecord struct {
	ID            uint               `gorm:"primaryKey"`
	UserID        uint               `gorm:"not null;uniqueIndex"`
	Questionnaire *QuestionnaireData `gorm:"serializer:json"`
	Computed      *ComputedProfile   `gorm:"serializer:json"`
	Mindset       *MindsetProfile    `gorm:"serializer:json"`
	BlendStatus   string             `gorm:"not null;default:Active"`
	BlendFormula  *BlendFormula      `gorm:"serializer:json"`
	BlendName     string             `gorm:"not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
