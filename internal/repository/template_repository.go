package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"focusday/internal/model"
)

// TemplateRepository handles CRUD for task templates.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a template, assigning a fresh id.
func (r *TemplateRepository) Create(ctx context.Context, tpl *model.TaskTemplate) error {
	tpl.ID = uuid.Must(uuid.NewV7()).String()
	if err := r.db.WithContext(ctx).Create(tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

// ListByOwner returns all non-deleted templates for an owner, oldest first.
func (r *TemplateRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.TaskTemplate, error) {
	var tpls []model.TaskTemplate
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Order("created_at ASC").
		Find(&tpls).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return tpls, nil
}

// FindByID returns an owner's template regardless of its active flag, so
// historical completion records stay resolvable after soft deletion.
func (r *TemplateRepository) FindByID(ctx context.Context, ownerID, id string) (*model.TaskTemplate, error) {
	var tpl model.TaskTemplate
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListByOwnerWithDeleted returns all of an owner's templates, soft-deleted
// ones included, for historical aggregation.
func (r *TemplateRepository) ListByOwnerWithDeleted(ctx context.Context, ownerID string) ([]model.TaskTemplate, error) {
	var tpls []model.TaskTemplate
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&tpls).Error; err != nil {
		return nil, fmt.Errorf("list templates with deleted: %w", err)
	}
	return tpls, nil
}

// Deactivate soft-deletes a template, stamping when, so dates before the
// deletion keep counting it. Rows are never hard-deleted.
func (r *TemplateRepository) Deactivate(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Model(&model.TaskTemplate{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Updates(map[string]interface{}{"active": false, "deactivated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("deactivate template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListActiveRecurring returns every active recurring template across owners,
// for the nightly instance generator.
func (r *TemplateRepository) ListActiveRecurring(ctx context.Context) ([]model.TaskTemplate, error) {
	var tpls []model.TaskTemplate
	if err := r.db.WithContext(ctx).
		Where("is_recurring = ? AND active = ?", true, true).
		Find(&tpls).Error; err != nil {
		return nil, fmt.Errorf("list recurring templates: %w", err)
	}
	return tpls, nil
}

// HasGeneratedFor reports whether a single-day instance was already
// materialized from the given parent for the given date.
func (r *TemplateRepository) HasGeneratedFor(ctx context.Context, parentID string, date time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.TaskTemplate{}).
		Where("generated_from = ? AND start_date = ?", parentID, model.DateOf(date)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count generated instances: %w", err)
	}
	return count > 0, nil
}
