package engine

import (
	"fmt"
	"strings"

	"focusday/internal/model"
)

// ValidateTemplate checks a template before it is persisted.
func ValidateTemplate(t *model.TaskTemplate) error {
	if strings.TrimSpace(t.Text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if len(t.Text) > model.MaxTemplateTextLen {
		return &ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("must be at most %d characters", model.MaxTemplateTextLen),
		}
	}
	switch t.Kind {
	case model.KindMIT, model.KindMET:
	default:
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown kind %q", t.Kind)}
	}
	if t.Kind == model.KindMET {
		if t.Priority != "" {
			return &ValidationError{Field: "priority", Reason: "only valid for MIT tasks"}
		}
		if t.EstimatedTime != "" {
			return &ValidationError{Field: "estimatedTime", Reason: "only valid for MIT tasks"}
		}
	}
	if t.Kind == model.KindMIT && t.Priority != "" {
		switch t.Priority {
		case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		default:
			return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", t.Priority)}
		}
	}
	for _, d := range t.RecurrenceDays {
		if d < 1 || d > 7 {
			return &ValidationError{Field: "recurrenceDays", Reason: "weekdays must be 1..7 (Mon..Sun)"}
		}
	}
	if t.EndDate != nil && model.DateOf(*t.EndDate).Before(model.DateOf(t.StartDate)) {
		return &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}
	return nil
}
