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

// SetResult reports the outcome of an idempotent set operation.
type SetResult struct {
	// AlreadyCompleted is true when the record existed before the call.
	AlreadyCompleted bool
}

// UnsetResult reports the outcome of an idempotent unset operation.
type UnsetResult struct {
	// WasCompleted is true when a record was actually removed.
	WasCompleted bool
}

// ToggleResult is what the UI shell needs to decide what to render; the
// engine emits no feedback of its own.
type ToggleResult struct {
	Completed     bool
	JustCompleted bool
}

// CompletionService is the per-(owner, task, date) completion ledger.
// Mutations for "today" also adjust the running score; historical
// corrections never do.
type CompletionService struct {
	completions *repository.CompletionRepository
	templates   *repository.TemplateRepository
	scores      *ScoreService

	now func() time.Time
}

func NewCompletionService(completions *repository.CompletionRepository, templates *repository.TemplateRepository, scores *ScoreService) *CompletionService {
	return &CompletionService{
		completions: completions,
		templates:   templates,
		scores:      scores,
		now:         time.Now,
	}
}

// SetCompleted records the task as done (MIT) or occurred (MET) on the date.
// Idempotent: setting an already-set key reports AlreadyCompleted instead of
// erroring or duplicating. Future dates and unknown task ids are rejected
// before any storage write.
func (s *CompletionService) SetCompleted(ctx context.Context, ownerID, taskID string, date time.Time) (SetResult, error) {
	if err := s.rejectFuture(date); err != nil {
		return SetResult{}, err
	}
	tpl, err := s.resolveTask(ctx, ownerID, taskID)
	if err != nil {
		return SetResult{}, err
	}

	rec := model.CompletionRecord{
		OwnerID:     ownerID,
		TaskID:      taskID,
		Date:        model.DateOf(date),
		CompletedAt: s.now(),
	}
	err = s.completions.Create(ctx, &rec)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return SetResult{AlreadyCompleted: true}, nil
	}
	if err != nil {
		return SetResult{}, engine.NewStorageError("set completed", err)
	}

	if err := s.adjustScore(ctx, tpl, date, false); err != nil {
		return SetResult{}, err
	}
	return SetResult{}, nil
}

// UnsetCompleted removes the record for the key if present; a no-op when the
// key was never set. Validation mirrors SetCompleted.
func (s *CompletionService) UnsetCompleted(ctx context.Context, ownerID, taskID string, date time.Time) (UnsetResult, error) {
	if err := s.rejectFuture(date); err != nil {
		return UnsetResult{}, err
	}
	tpl, err := s.resolveTask(ctx, ownerID, taskID)
	if err != nil {
		return UnsetResult{}, err
	}

	removed, err := s.completions.Delete(ctx, ownerID, taskID, date)
	if err != nil {
		return UnsetResult{}, engine.NewStorageError("unset completed", err)
	}
	if removed == 0 {
		return UnsetResult{}, nil
	}

	if err := s.adjustScore(ctx, tpl, date, true); err != nil {
		return UnsetResult{}, err
	}
	return UnsetResult{WasCompleted: true}, nil
}

// Toggle flips the completion state for the key and reports the new state.
func (s *CompletionService) Toggle(ctx context.Context, ownerID, taskID string, date time.Time) (ToggleResult, error) {
	set, err := s.SetCompleted(ctx, ownerID, taskID, date)
	if err != nil {
		return ToggleResult{}, err
	}
	if !set.AlreadyCompleted {
		return ToggleResult{Completed: true, JustCompleted: true}, nil
	}

	if _, err := s.UnsetCompleted(ctx, ownerID, taskID, date); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Completed: false}, nil
}

// CompletedSet returns the ids of all tasks with a record for the exact date.
func (s *CompletionService) CompletedSet(ctx context.Context, ownerID string, date time.Time) (map[string]struct{}, error) {
	ids, err := s.completions.CompletedIDs(ctx, ownerID, date)
	if err != nil {
		return nil, engine.NewStorageError("read completed set", err)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *CompletionService) rejectFuture(date time.Time) error {
	if model.DateOf(date).After(model.DateOf(s.now())) {
		return &engine.ValidationError{Field: "date", Reason: "completion state cannot change for future dates"}
	}
	return nil
}

// resolveTask looks the task up before any ledger write, so an unknown id
// is rejected as validation instead of leaving partial state behind. Soft-
// deleted templates still resolve; their history stays editable.
func (s *CompletionService) resolveTask(ctx context.Context, ownerID, taskID string) (*model.TaskTemplate, error) {
	tpl, err := s.templates.FindByID(ctx, ownerID, taskID)
	switch {
	case err == nil:
		return tpl, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, &engine.ValidationError{Field: "taskId", Reason: "unknown task"}
	default:
		return nil, engine.NewStorageError("resolve task", err)
	}
}

// adjustScore applies the point event for a today-mutation. Actions on any
// other date leave the running score untouched; unsetting reverses the
// original award.
func (s *CompletionService) adjustScore(ctx context.Context, tpl *model.TaskTemplate, date time.Time, reverse bool) error {
	if !model.SameDate(date, s.now()) {
		return nil
	}

	var delta int
	switch tpl.Kind {
	case model.KindMIT:
		delta = PointsMITCompleted
	case model.KindMET:
		delta = PointsMETOccurred
	default:
		return nil
	}
	source := "completion"
	if reverse {
		delta = -delta
		source = "completion reversal"
	}

	_, err := s.scores.AddPoints(ctx, tpl.OwnerID, date, delta, source)
	return err
}
