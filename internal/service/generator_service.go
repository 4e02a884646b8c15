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

// GeneratorService materializes single-day instances from recurring
// templates. Generation is where the selected weekdays actually matter:
// visibility of the recurring template itself never consults them, but a
// per-day instance is only produced on a selected weekday. Each generated
// instance auto-expires by construction (start date == end date).
type GeneratorService struct {
	templates *repository.TemplateRepository
}

func NewGeneratorService(templates *repository.TemplateRepository) *GeneratorService {
	return &GeneratorService{templates: templates}
}

// GenerateFor materializes instances for the given date and returns how many
// were created. Safe to re-run: existing instances are skipped, and a lost
// insert race counts as already generated.
func (s *GeneratorService) GenerateFor(ctx context.Context, date time.Time) (int, error) {
	day := model.DateOf(date)

	tpls, err := s.templates.ListActiveRecurring(ctx)
	if err != nil {
		return 0, engine.NewStorageError("list recurring templates", err)
	}

	created := 0
	for i := range tpls {
		tpl := tpls[i]
		if !engine.IsActiveOn(&tpl, day) {
			continue
		}
		// Empty selection means every day.
		if len(tpl.RecurrenceDays) > 0 && !tpl.RecurrenceDays.Contains(model.ISOWeekday(day)) {
			continue
		}

		exists, err := s.templates.HasGeneratedFor(ctx, tpl.ID, day)
		if err != nil {
			return created, engine.NewStorageError("check generated instance", err)
		}
		if exists {
			continue
		}

		child := model.TaskTemplate{
			OwnerID:       tpl.OwnerID,
			Kind:          tpl.Kind,
			Text:          tpl.Text,
			Priority:      tpl.Priority,
			EstimatedTime: tpl.EstimatedTime,
			StartDate:     day,
			EndDate:       &day,
			Active:        true,
			GeneratedFrom: &tpl.ID,
		}
		err = s.templates.Create(ctx, &child)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return created, engine.NewStorageError("create generated instance", err)
		}
		created++
	}
	return created, nil
}
