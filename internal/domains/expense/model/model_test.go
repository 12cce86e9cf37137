package model_test

import (
	"testing"

	"pms/internal/domains/expense/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	totals, total := model.Summarize([]model.Expense{
		{Category: model.CategoryMaintenance, Amount: 450},
		{Category: model.CategorySupplies, Amount: 320.5},
		{Category: model.CategoryMaintenance, Amount: 50},
		{Category: "travel", Amount: 10},
	})

	require.Len(t, totals, len(model.Categories))
	assert.InDelta(t, 830.5, total, 0.001)

	assert.Equal(t, model.CategoryTotal{Category: model.CategoryMaintenance, Amount: 500, Count: 2}, totals[0])
	assert.Equal(t, model.CategoryTotal{Category: model.CategorySupplies, Amount: 320.5, Count: 1}, totals[1])
	assert.Equal(t, model.CategoryTotal{Category: model.CategoryTaxes}, totals[5])
	assert.Equal(t, model.CategoryTotal{Category: model.CategoryOther, Amount: 10, Count: 1}, totals[6])
}

func TestSummarize_Empty(t *testing.T) {
	totals, total := model.Summarize(nil)

	assert.Len(t, totals, len(model.Categories))
	assert.Zero(t, total)
}
