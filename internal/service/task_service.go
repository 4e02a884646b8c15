package service

import (
	"context"
	"time"

	"focusday/internal/engine"
	"focusday/internal/model"
	"focusday/internal/repository"
)

// TaskInput carries the fields needed to create a task template.
type TaskInput struct {
	Kind           model.TaskKind
	Text           string
	Priority       model.Priority
	EstimatedTime  model.TimeEstimate
	IsRecurring    bool
	RecurrenceDays model.RecurrenceDays
	StartDate      time.Time
	EndDate        *time.Time
}

// TaskService wraps template lifecycle and per-date visibility.
type TaskService struct {
	templates *repository.TemplateRepository
}

func NewTaskService(templates *repository.TemplateRepository) *TaskService {
	return &TaskService{templates: templates}
}

// CreateTemplate validates and persists a new template for the owner.
func (s *TaskService) CreateTemplate(ctx context.Context, ownerID string, input TaskInput) (*model.TaskTemplate, error) {
	tpl := model.TaskTemplate{
		OwnerID:        ownerID,
		Kind:           input.Kind,
		Text:           input.Text,
		Priority:       input.Priority,
		EstimatedTime:  input.EstimatedTime,
		IsRecurring:    input.IsRecurring,
		RecurrenceDays: input.RecurrenceDays,
		StartDate:      model.DateOf(input.StartDate),
		Active:         true,
	}
	if input.EndDate != nil {
		end := model.DateOf(*input.EndDate)
		tpl.EndDate = &end
	}

	if err := engine.ValidateTemplate(&tpl); err != nil {
		return nil, err
	}
	if err := s.templates.Create(ctx, &tpl); err != nil {
		return nil, engine.NewStorageError("create template", err)
	}
	return &tpl, nil
}

// ListActiveTasksForDate returns the owner's templates visible on the date,
// optionally filtered by kind (empty kind means both lists). A recurring
// template whose materialized per-day instance exists for the date yields to
// that instance, so the task never shows up twice.
func (s *TaskService) ListActiveTasksForDate(ctx context.Context, ownerID string, date time.Time, kind model.TaskKind) ([]model.TaskTemplate, error) {
	tpls, err := s.templates.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, engine.NewStorageError("list templates", err)
	}

	replaced := replacedParents(tpls, date)

	var out []model.TaskTemplate
	for _, tpl := range tpls {
		if kind != "" && tpl.Kind != kind {
			continue
		}
		if !engine.IsActiveOn(&tpl, date) {
			continue
		}
		if _, ok := replaced[tpl.ID]; ok {
			continue
		}
		out = append(out, tpl)
	}
	return out, nil
}

// DeleteTemplate soft-deletes a template; completion history stays intact.
func (s *TaskService) DeleteTemplate(ctx context.Context, ownerID, templateID string) error {
	if err := s.templates.Deactivate(ctx, ownerID, templateID); err != nil {
		return engine.NewStorageError("delete template", err)
	}
	return nil
}

// replacedParents collects ids of recurring templates that have a
// materialized instance active on the date.
func replacedParents(tpls []model.TaskTemplate, date time.Time) map[string]struct{} {
	replaced := make(map[string]struct{})
	for _, tpl := range tpls {
		if tpl.IsGenerated() && engine.IsActiveOn(&tpl, date) {
			replaced[*tpl.GeneratedFrom] = struct{}{}
		}
	}
	return replaced
}

// activePartition splits templates into the MIT and MET instance id sets
// visible on the date, applying the same parent-replacement rule as
// ListActiveTasksForDate.
func activePartition(tpls []model.TaskTemplate, date time.Time) (mits, mets []string) {
	replaced := replacedParents(tpls, date)
	for _, tpl := range tpls {
		if !engine.IsActiveOn(&tpl, date) {
			continue
		}
		if _, ok := replaced[tpl.ID]; ok {
			continue
		}
		switch tpl.Kind {
		case model.KindMIT:
			mits = append(mits, tpl.ID)
		case model.KindMET:
			mets = append(mets, tpl.ID)
		}
	}
	return mits, mets
}
