package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quellskin/quell/internal/models"
)

const MaxCheckinNotesLength = 2000

var ErrCheckinDateRequired = errors.New("checkin date required")

// CheckinInput is one submitted daily check-in. AI fields are only set when
// the vision service analyzed attached photos.
type CheckinInput struct {
	Date           time.Time
	Timestamp      *time.Time
	ItchScore      int
	StressScore    int
	SleepHours     float64
	Mood           string
	Images         []string
	AIRednessScore float64
	AILocations    []string
	AISymptoms     []string
	Notes          string
}

type CheckinLogRepository interface {
	ListByUser(userID uint) ([]models.DailyLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error)
	Create(entry *models.DailyLog) error
}

type CheckinService struct {
	logs CheckinLogRepository
}

func NewCheckinService(logs CheckinLogRepository) *CheckinService {
	return &CheckinService{logs: logs}
}

// SaveCheckin appends one check-in entry. Entries are never edited after the
// fact; a second check-in on the same day is a new entry.
func (service *CheckinService) SaveCheckin(userID uint, input CheckinInput) (models.DailyLog, error) {
	if input.Date.IsZero() {
		return models.DailyLog{}, ErrCheckinDateRequired
	}

	entry := models.DailyLog{
		ClientID:       uuid.NewString(),
		UserID:         userID,
		Date:           dateOnly(input.Date),
		Timestamp:      input.Timestamp,
		ItchScore:      ClampScore(input.ItchScore),
		StressScore:    ClampScore(input.StressScore),
		SleepHours:     input.SleepHours,
		Mood:           input.Mood,
		Images:         input.Images,
		AIRednessScore: clampRedness(input.AIRednessScore),
		AILocations:    input.AILocations,
		AISymptoms:     input.AISymptoms,
		Notes:          trimNotes(input.Notes),
	}
	if entry.SleepHours < 0 {
		entry.SleepHours = 0
	}

	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (service *CheckinService) FetchAllLogsForUser(userID uint) ([]models.DailyLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *CheckinService) FetchLogsForRange(userID uint, from *time.Time, to *time.Time) ([]models.DailyLog, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start := dateOnly(*from)
		fromStart = &start
	}
	if to != nil {
		end := dateOnly(*to).AddDate(0, 0, 1)
		toEnd = &end
	}
	return service.logs.ListByUserRange(userID, fromStart, toEnd)
}

// BuildTrend runs the trend analyzer over the user's full chronological log
// history.
func (service *CheckinService) BuildTrend(userID uint) (TrendResult, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return TrendResult{}, err
	}
	return AnalyzeSymptomTrend(logs), nil
}

func clampRedness(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func trimNotes(value string) string {
	if len(value) <= MaxCheckinNotesLength {
		return value
	}
	return value[:MaxCheckinNotesLength]
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
