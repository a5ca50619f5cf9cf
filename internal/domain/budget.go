package domain

// BudgetCategory is the closed set of expense categories.
type BudgetCategory string

const (
	BudgetCategoryVenue     BudgetCategory = "venue"
	BudgetCategoryCatering  BudgetCategory = "catering"
	BudgetCategoryEquipment BudgetCategory = "equipment"
	BudgetCategoryMarketing BudgetCategory = "marketing"
	BudgetCategoryPrizes    BudgetCategory = "prizes"
	BudgetCategoryTransport BudgetCategory = "transport"
	BudgetCategoryMisc      BudgetCategory = "misc"
)

// ValidBudgetCategory reports whether c is a known category.
func ValidBudgetCategory(c BudgetCategory) bool {
	switch c {
	case BudgetCategoryVenue, BudgetCategoryCatering, BudgetCategoryEquipment,
		BudgetCategoryMarketing, BudgetCategoryPrizes, BudgetCategoryTransport,
		BudgetCategoryMisc:
		return true
	}
	return false
}

// BudgetItem is one expense line in an event's ledger. EstimatedCost and
// ActualCost are independently editable; Paid is a manual flag, not derived.
// swagger:model BudgetItem
type BudgetItem struct {
	ID            string         `json:"id"`
	Description   string         `json:"description"`
	Category      BudgetCategory `json:"category"`
	EstimatedCost float64        `json:"estimated_cost"`
	ActualCost    float64        `json:"actual_cost"`
	Paid          bool           `json:"paid"`
}

// BudgetItemUpdate carries the optional fields of a partial update. Nil
// fields are left untouched; no field triggers recomputation of another.
type BudgetItemUpdate struct {
	Description   *string         `json:"description,omitempty"`
	Category      *BudgetCategory `json:"category,omitempty"`
	EstimatedCost *float64        `json:"estimated_cost,omitempty"`
	ActualCost    *float64        `json:"actual_cost,omitempty"`
	Paid          *bool           `json:"paid,omitempty"`
}

// BudgetTotals are the derived ledger aggregates. They are recomputed from
// the live item set on every query and never stored.
// swagger:model BudgetTotals
type BudgetTotals struct {
	TotalEstimated float64 `json:"total_estimated"`
	TotalActual    float64 `json:"total_actual"`
	TotalPaid      float64 `json:"total_paid"`
	TotalUnpaid    float64 `json:"total_unpaid"`
}

// ComputeBudgetTotals sums the given items into BudgetTotals.
func ComputeBudgetTotals(items []*BudgetItem) BudgetTotals {
	var t BudgetTotals
	for _, it := range items {
		t.TotalEstimated += it.EstimatedCost
		t.TotalActual += it.ActualCost
		if it.Paid {
			t.TotalPaid += it.ActualCost
		}
	}
	t.TotalUnpaid = t.TotalActual - t.TotalPaid
	return t
}
