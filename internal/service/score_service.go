package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"focusday/internal/engine"
	"focusday/internal/model"
	"focusday/internal/repository"
)

// Point values are fixed per event type.
const (
	// PointsMITCompleted is awarded when a MIT is completed on the current day.
	PointsMITCompleted = 30
	// PointsMETOccurred is deducted when a MET is checked as having occurred.
	PointsMETOccurred = -10
	// ObjectiveMaxProgressPoints caps the points a single objective-progress
	// event can award; the actual award is proportional to the fraction of
	// the target advanced.
	ObjectiveMaxProgressPoints = 50
	// ObjectiveCompletionBonus is the flat award for reaching 100% of an
	// objective's target.
	ObjectiveCompletionBonus = 100
)

// categoryPoints maps generic task categories to their completion award.
// Anything unlisted falls back to the minimum of the band.
var categoryPoints = map[string]int{
	"health":   35,
	"work":     30,
	"learning": 25,
}

const defaultCategoryPoints = 20

// PointsForCategory returns the completion award for a generic task category.
func PointsForCategory(category string) int {
	if pts, ok := categoryPoints[category]; ok {
		return pts
	}
	return defaultCategoryPoints
}

// ScoreService maintains the per-(owner, date) running score. Rows are
// created lazily on first touch and the score never drops below zero.
type ScoreService struct {
	scores *repository.ScoreRepository
}

func NewScoreService(scores *repository.ScoreRepository) *ScoreService {
	return &ScoreService{scores: scores}
}

// AddPoints applies a signed delta to the owner's score for the date,
// clamping the result to >= 0.
func (s *ScoreService) AddPoints(ctx context.Context, ownerID string, date time.Time, delta int, source string) (*model.DailyScoreEntry, error) {
	return s.mutate(ctx, ownerID, date, "add points ("+source+")", func(entry *model.DailyScoreEntry) {
		entry.Score = clampScore(entry.Score + delta)
	})
}

// RecordTaskCompletion awards category-dependent points for a generic task
// completed on the date and bumps the day's completed counter.
func (s *ScoreService) RecordTaskCompletion(ctx context.Context, ownerID string, date time.Time, category string) (*model.DailyScoreEntry, error) {
	return s.mutate(ctx, ownerID, date, "record task completion", func(entry *model.DailyScoreEntry) {
		entry.Score = clampScore(entry.Score + PointsForCategory(category))
		entry.TasksCompleted++
		if entry.TasksCompleted > entry.TotalTasks {
			entry.TotalTasks = entry.TasksCompleted
		}
	})
}

// RegisterScheduledTask bumps the day's total-task counter, so completion
// ratios for generic tasks have a denominator.
func (s *ScoreService) RegisterScheduledTask(ctx context.Context, ownerID string, date time.Time) (*model.DailyScoreEntry, error) {
	return s.mutate(ctx, ownerID, date, "register scheduled task", func(entry *model.DailyScoreEntry) {
		entry.TotalTasks++
	})
}

// mutate runs a read-modify-write against the owner's row for the date,
// creating it lazily when absent. A failed pass is retried once in full
// before a StorageError is surfaced; a lost creation race falls back to
// re-reading the row the concurrent writer inserted.
func (s *ScoreService) mutate(ctx context.Context, ownerID string, date time.Time, op string, change func(*model.DailyScoreEntry)) (*model.DailyScoreEntry, error) {
	apply := func() (*model.DailyScoreEntry, error) {
		entry, err := s.ensureRow(ctx, ownerID, date)
		if err != nil {
			return nil, err
		}
		change(entry)
		if err := s.scores.Save(ctx, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}

	entry, err := apply()
	if err == nil {
		return entry, nil
	}
	// Initialize-then-retry: one more pass through the full read-modify-write
	// before giving up.
	entry, err = apply()
	if err != nil {
		return nil, engine.NewStorageError(op, err)
	}
	return entry, nil
}

// RecordObjectiveProgress awards points proportional to the fraction of an
// objective's target advanced by this event, capped at
// ObjectiveMaxProgressPoints, plus a flat bonus when the target is reached.
func (s *ScoreService) RecordObjectiveProgress(ctx context.Context, ownerID string, date time.Time, advanced, target int, reachedTarget bool) (*model.DailyScoreEntry, error) {
	if target <= 0 {
		return nil, &engine.ValidationError{Field: "target", Reason: "must be positive"}
	}
	if advanced < 0 {
		return nil, &engine.ValidationError{Field: "advanced", Reason: "must not be negative"}
	}

	delta := ObjectiveMaxProgressPoints * advanced / target
	if delta > ObjectiveMaxProgressPoints {
		delta = ObjectiveMaxProgressPoints
	}
	if reachedTarget {
		delta += ObjectiveCompletionBonus
	}
	return s.AddPoints(ctx, ownerID, date, delta, "objective progress")
}

// Current returns the score row for the date, or a zero-valued snapshot when
// none exists yet. Pure reads are not retried.
func (s *ScoreService) Current(ctx context.Context, ownerID string, date time.Time) (*model.DailyScoreEntry, error) {
	entry, err := s.scores.Find(ctx, ownerID, date)
	if err != nil {
		return nil, engine.NewStorageError("read score", err)
	}
	if entry == nil {
		return &model.DailyScoreEntry{OwnerID: ownerID, Date: model.DateOf(date)}, nil
	}
	return entry, nil
}

// ensureRow loads the row for the key, creating a zero row when absent. If a
// concurrent creator wins the insert race, the now-existing row is re-read
// instead of failing the caller.
func (s *ScoreService) ensureRow(ctx context.Context, ownerID string, date time.Time) (*model.DailyScoreEntry, error) {
	entry, err := s.scores.Find(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	entry = &model.DailyScoreEntry{OwnerID: ownerID, Date: model.DateOf(date)}
	err = s.scores.Create(ctx, entry)
	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Lost the race; the row exists now.
		entry, err = s.scores.Find(ctx, ownerID, date)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, engine.ErrConflict
		}
		return entry, nil
	default:
		return nil, err
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
