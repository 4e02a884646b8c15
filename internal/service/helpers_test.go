package service

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"focusday/internal/dbtest"
	"focusday/internal/model"
	"focusday/internal/repository"
)

func date(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

type fixture struct {
	db          *gorm.DB
	tasks       *TaskService
	scores      *ScoreService
	completions *CompletionService
	calendar    *CalendarService
	generator   *GeneratorService
}

// newFixture wires the services over a fresh in-memory store, pinning the
// completion ledger's clock to midday on the given date.
func newFixture(t *testing.T, today string) *fixture {
	t.Helper()

	db := dbtest.NewDB(t)
	templateRepo := repository.NewTemplateRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	scores := NewScoreService(scoreRepo)
	completions := NewCompletionService(completionRepo, templateRepo, scores)
	completions.now = func() time.Time { return date(today).Add(12 * time.Hour) }

	return &fixture{
		db:          db,
		tasks:       NewTaskService(templateRepo),
		scores:      scores,
		completions: completions,
		calendar:    NewCalendarService(templateRepo, completionRepo, scores),
		generator:   NewGeneratorService(templateRepo),
	}
}
