package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusday/internal/model"
)

func TestGenerateForSelectedWeekdays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-03-31")

	// Mondays and Wednesdays only.
	_, err := f.tasks.CreateTemplate(ctx, "owner-1", TaskInput{
		Kind: model.KindMIT, Text: "gym session", IsRecurring: true,
		RecurrenceDays: model.RecurrenceDays{1, 3},
		StartDate:      date("2024-03-01"),
	})
	require.NoError(t, err)

	monday := date("2024-03-04")
	tuesday := date("2024-03-05")
	wednesday := date("2024-03-06")

	created, err := f.generator.GenerateFor(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = f.generator.GenerateFor(ctx, tuesday)
	require.NoError(t, err)
	assert.Zero(t, created)

	created, err = f.generator.GenerateFor(ctx, wednesday)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestGenerateForIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-03-31")

	_, err := f.tasks.CreateTemplate(ctx, "owner-1", TaskInput{
		Kind: model.KindMET, Text: "impulse buys", IsRecurring: true,
		StartDate: date("2024-03-01"),
	})
	require.NoError(t, err)

	created, err := f.generator.GenerateFor(ctx, date("2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = f.generator.GenerateFor(ctx, date("2024-03-04"))
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestGeneratedInstanceShape(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-03-31")

	parent, err := f.tasks.CreateTemplate(ctx, "owner-1", TaskInput{
		Kind: model.KindMIT, Text: "review goals", Priority: model.PriorityMedium,
		EstimatedTime: model.Estimate15Min, IsRecurring: true,
		StartDate: date("2024-03-01"),
	})
	require.NoError(t, err)

	day := date("2024-03-04")
	_, err = f.generator.GenerateFor(ctx, day)
	require.NoError(t, err)

	var children []model.TaskTemplate
	require.NoError(t, f.db.Where("generated_from = ?", parent.ID).Find(&children).Error)
	require.Len(t, children, 1)

	child := children[0]
	assert.Equal(t, parent.OwnerID, child.OwnerID)
	assert.Equal(t, parent.Kind, child.Kind)
	assert.Equal(t, parent.Text, child.Text)
	assert.Equal(t, parent.Priority, child.Priority)
	assert.False(t, child.IsRecurring)
	// Single-day, auto-expiring by construction.
	assert.True(t, model.SameDate(child.StartDate, day))
	require.NotNil(t, child.EndDate)
	assert.True(t, model.SameDate(*child.EndDate, day))
}

// A materialized instance stands in for its parent on its day, so the task
// never appears twice in the list or the aggregates.
func TestGeneratedInstanceReplacesParentInListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-03-31")

	parent, err := f.tasks.CreateTemplate(ctx, "owner-1", TaskInput{
		Kind: model.KindMIT, Text: "meditate", IsRecurring: true,
		StartDate: date("2024-03-01"),
	})
	require.NoError(t, err)

	day := date("2024-03-04")
	_, err = f.generator.GenerateFor(ctx, day)
	require.NoError(t, err)

	tasks, err := f.tasks.ListActiveTasksForDate(ctx, "owner-1", day, model.KindMIT)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.NotEqual(t, parent.ID, tasks[0].ID)
	require.NotNil(t, tasks[0].GeneratedFrom)
	assert.Equal(t, parent.ID, *tasks[0].GeneratedFrom)

	// On a day with no materialized instance the parent shows directly.
	tasks, err = f.tasks.ListActiveTasksForDate(ctx, "owner-1", date("2024-03-05"), model.KindMIT)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, parent.ID, tasks[0].ID)
}

func TestGenerateForSkipsOutOfRangeTemplates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "2024-03-31")

	_, err := f.tasks.CreateTemplate(ctx, "owner-1", TaskInput{
		Kind: model.KindMIT, Text: "sprint ritual", IsRecurring: true,
		StartDate: date("2024-03-10"), EndDate: datePtr("2024-03-20"),
	})
	require.NoError(t, err)

	created, err := f.generator.GenerateFor(ctx, date("2024-03-05"))
	require.NoError(t, err)
	assert.Zero(t, created)

	created, err = f.generator.GenerateFor(ctx, date("2024-03-25"))
	require.NoError(t, err)
	assert.Zero(t, created)
}
