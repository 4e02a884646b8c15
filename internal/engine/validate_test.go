package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusday/internal/model"
)

func validMIT() model.TaskTemplate {
	return model.TaskTemplate{
		Kind:          model.KindMIT,
		Text:          "write the weekly review",
		Priority:      model.PriorityHigh,
		EstimatedTime: model.Estimate30Min,
		StartDate:     date("2024-03-01"),
	}
}

func TestValidateTemplate(t *testing.T) {
	t.Run("valid mit", func(t *testing.T) {
		tpl := validMIT()
		assert.NoError(t, ValidateTemplate(&tpl))
	})

	t.Run("valid met", func(t *testing.T) {
		tpl := model.TaskTemplate{Kind: model.KindMET, Text: "doomscrolling", StartDate: date("2024-03-01")}
		assert.NoError(t, ValidateTemplate(&tpl))
	})

	t.Run("empty text", func(t *testing.T) {
		tpl := validMIT()
		tpl.Text = "   "
		err := ValidateTemplate(&tpl)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("text over limit", func(t *testing.T) {
		tpl := validMIT()
		tpl.Text = strings.Repeat("x", model.MaxTemplateTextLen+1)
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("text at limit passes", func(t *testing.T) {
		tpl := validMIT()
		tpl.Text = strings.Repeat("x", model.MaxTemplateTextLen)
		assert.NoError(t, ValidateTemplate(&tpl))
	})

	t.Run("unknown kind", func(t *testing.T) {
		tpl := validMIT()
		tpl.Kind = "chore"
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("priority on met", func(t *testing.T) {
		tpl := model.TaskTemplate{Kind: model.KindMET, Text: "snoozing", Priority: model.PriorityLow, StartDate: date("2024-03-01")}
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("estimate on met", func(t *testing.T) {
		tpl := model.TaskTemplate{Kind: model.KindMET, Text: "snoozing", EstimatedTime: model.Estimate1H, StartDate: date("2024-03-01")}
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("unknown priority", func(t *testing.T) {
		tpl := validMIT()
		tpl.Priority = "urgent"
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("weekday out of range", func(t *testing.T) {
		tpl := validMIT()
		tpl.IsRecurring = true
		tpl.RecurrenceDays = model.RecurrenceDays{0, 3}
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("end before start", func(t *testing.T) {
		tpl := validMIT()
		tpl.EndDate = datePtr("2024-02-01")
		assert.True(t, IsValidation(ValidateTemplate(&tpl)))
	})

	t.Run("end equal to start", func(t *testing.T) {
		tpl := validMIT()
		tpl.EndDate = datePtr("2024-03-01")
		assert.NoError(t, ValidateTemplate(&tpl))
	})
}
