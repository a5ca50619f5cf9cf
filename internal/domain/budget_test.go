package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBudgetTotals(t *testing.T) {
	items := []*BudgetItem{
		{ID: "b1", Description: "hall", Category: BudgetCategoryVenue, EstimatedCost: 100, ActualCost: 80, Paid: true},
		{ID: "b2", Description: "snacks", Category: BudgetCategoryCatering, EstimatedCost: 50, ActualCost: 60, Paid: false},
	}
	totals := ComputeBudgetTotals(items)
	assert.Equal(t, 150.0, totals.TotalEstimated)
	assert.Equal(t, 140.0, totals.TotalActual)
	assert.Equal(t, 80.0, totals.TotalPaid)
	assert.Equal(t, 60.0, totals.TotalUnpaid)
}

func TestComputeBudgetTotals_Empty(t *testing.T) {
	assert.Equal(t, BudgetTotals{}, ComputeBudgetTotals(nil))
}

func TestValidBudgetCategory(t *testing.T) {
	for _, c := range []BudgetCategory{
		BudgetCategoryVenue, BudgetCategoryCatering, BudgetCategoryEquipment,
		BudgetCategoryMarketing, BudgetCategoryPrizes, BudgetCategoryTransport,
		BudgetCategoryMisc,
	} {
		assert.True(t, ValidBudgetCategory(c), string(c))
	}
	assert.False(t, ValidBudgetCategory("travel"))
}
