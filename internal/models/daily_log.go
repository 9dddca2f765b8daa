package models

import "time"

// DailyLog is one check-in entry. Entries are append-only: once saved they
// are never edited, and trend analysis consumes them ordered by date then
// timestamp.
type DailyLog struct {
	ID             uint       `gorm:"primaryKey" json:"-"`
	ClientID       string     `gorm:"not null;uniqueIndex" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"-"`
	Date           time.Time  `gorm:"type:date;not null;index" json:"date"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	ItchScore      int        `gorm:"not null" json:"itch_score"`
	StressScore    int        `gorm:"not null" json:"stress_score"`
	SleepHours     float64    `gorm:"not null;default:0" json:"sleep_hours"`
	Mood           string     `json:"mood,omitempty"`
	Images         []string   `gorm:"serializer:json" json:"images,omitempty"`
	AIRednessScore float64    `gorm:"not null;default:0" json:"ai_redness_score,omitempty"`
	AILocations    []string   `gorm:"serializer:json" json:"ai_locations,omitempty"`
	AISymptoms     []string   `gorm:"serializer:json" json:"ai_symptoms,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"-"`
}
