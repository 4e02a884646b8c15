package service

import (
	"context"
	"time"

	"focusday/internal/engine"
	"focusday/internal/model"
	"focusday/internal/repository"
)

// DayInfo is the per-date calendar indicator.
type DayInfo struct {
	Status      engine.DayStatus
	HasActivity bool
}

// DaySummary is the full read model for a single day's screen.
type DaySummary struct {
	Date      string
	Aggregate engine.DayAggregate
	Status    engine.DayStatus
	Score     int
}

// CalendarService derives day statuses on demand from templates and the
// completion ledger; nothing here is persisted separately.
type CalendarService struct {
	templates   *repository.TemplateRepository
	completions *repository.CompletionRepository
	scores      *ScoreService
}

func NewCalendarService(templates *repository.TemplateRepository, completions *repository.CompletionRepository, scores *ScoreService) *CalendarService {
	return &CalendarService{templates: templates, completions: completions, scores: scores}
}

// GetCalendarStatus computes the indicator for every date in [from, to]
// inclusive, keyed by YYYY-MM-DD.
func (s *CalendarService) GetCalendarStatus(ctx context.Context, ownerID string, from, to time.Time) (map[string]DayInfo, error) {
	start := model.DateOf(from)
	end := model.DateOf(to)
	if end.Before(start) {
		return nil, &engine.ValidationError{Field: "dateRange", Reason: "end must not be before start"}
	}

	tpls, err := s.templates.ListByOwnerWithDeleted(ctx, ownerID)
	if err != nil {
		return nil, engine.NewStorageError("list templates", err)
	}
	recs, err := s.completions.ListRange(ctx, ownerID, start, end)
	if err != nil {
		return nil, engine.NewStorageError("list completions", err)
	}

	checkedByDate := make(map[string]map[string]struct{})
	for _, rec := range recs {
		key := model.FormatDate(rec.Date)
		if checkedByDate[key] == nil {
			checkedByDate[key] = make(map[string]struct{})
		}
		checkedByDate[key][rec.TaskID] = struct{}{}
	}

	out := make(map[string]DayInfo)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := model.FormatDate(d)
		mits, mets := activePartition(countingOn(tpls, d), d)
		agg := engine.AggregateDay(mits, mets, checkedByDate[key], checkedByDate[key])
		out[key] = DayInfo{Status: engine.Classify(agg), HasActivity: agg.HasActivity}
	}
	return out, nil
}

// countingOn keeps the templates that still matter for the date: live ones,
// plus soft-deleted ones whose deletion came only after that date. Deleting
// a template must not rewrite what past days looked like.
func countingOn(tpls []model.TaskTemplate, d time.Time) []model.TaskTemplate {
	day := model.DateOf(d)
	out := make([]model.TaskTemplate, 0, len(tpls))
	for _, tpl := range tpls {
		switch {
		case tpl.Active:
			out = append(out, tpl)
		case tpl.DeactivatedAt != nil && day.Before(model.DateOf(*tpl.DeactivatedAt)):
			out = append(out, tpl)
		}
	}
	return out
}

// DaySummary folds a single date's activity, status, and score together.
func (s *CalendarService) DaySummary(ctx context.Context, ownerID string, date time.Time) (*DaySummary, error) {
	tpls, err := s.templates.ListByOwnerWithDeleted(ctx, ownerID)
	if err != nil {
		return nil, engine.NewStorageError("list templates", err)
	}
	recs, err := s.completions.ListRange(ctx, ownerID, date, date)
	if err != nil {
		return nil, engine.NewStorageError("list completions", err)
	}
	checked := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		checked[rec.TaskID] = struct{}{}
	}

	mits, mets := activePartition(countingOn(tpls, date), date)
	agg := engine.AggregateDay(mits, mets, checked, checked)

	score, err := s.scores.Current(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	return &DaySummary{
		Date:      model.FormatDate(date),
		Aggregate: agg,
		Status:    engine.Classify(agg),
		Score:     score.Score,
	}, nil
}
