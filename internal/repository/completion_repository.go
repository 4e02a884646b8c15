package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"focusday/internal/model"
)

// CompletionRepository stores per-(owner, task, date) completion facts.
type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create inserts a completion record. Returns gorm.ErrDuplicatedKey untouched
// when the (owner, task, date) key already exists so callers can treat the
// write as an idempotent no-op.
func (r *CompletionRepository) Create(ctx context.Context, rec *model.CompletionRecord) error {
	rec.Date = model.DateOf(rec.Date)
	return r.db.WithContext(ctx).Create(rec).Error
}

// Delete removes the record for the key if present. Returns the number of
// rows removed; zero means the key was already unset.
func (r *CompletionRepository) Delete(ctx context.Context, ownerID, taskID string, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND task_id = ? AND date = ?", ownerID, taskID, model.DateOf(date)).
		Delete(&model.CompletionRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete completion: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CompletedIDs returns the task ids with a record for the exact date.
func (r *CompletionRepository) CompletedIDs(ctx context.Context, ownerID string, date time.Time) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&model.CompletionRecord{}).
		Where("owner_id = ? AND date = ?", ownerID, model.DateOf(date)).
		Pluck("task_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return ids, nil
}

// ListRange returns all of an owner's completion records with dates inside
// [from, to], for calendar aggregation.
func (r *CompletionRepository) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]model.CompletionRecord, error) {
	var recs []model.CompletionRecord
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, model.DateOf(from), model.DateOf(to)).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list completions in range: %w", err)
	}
	return recs, nil
}
