package expense

import (
	"max.ks1230/expense-tracker/internal/utils"
)

// DateLayout is the calendar-day format every record carries. The layout
// sorts lexicographically, so date strings compare without parsing.
const DateLayout = "2006-01-02"

const (
	Food    = "Food"
	Travel  = "Travel"
	Utility = "Utility"
	Extra   = "Extra"
)

// DailyCategories are the predefined categories of the daily entry form.
// Extra is predefined too but gets its display label from the note.
var DailyCategories = []string{Food, Travel, Utility}

var PredefinedCategories = []string{Food, Travel, Utility, Extra}

type Record struct {
	ID               int64   `json:"id"`
	Amount           float64 `json:"amount"`
	Category         string  `json:"category"`
	OriginalCategory string  `json:"originalCategory"`
	Note             string  `json:"note"`
	Date             string  `json:"date"`
}

// IsDaily reports whether the record belongs to the daily budget.
// The original category decides, falling back to the display category for
// records that never carried one. Extra counts as daily only when it is
// the original category: its display category is free text.
func (r Record) IsDaily() bool {
	category := r.OriginalCategory
	if category == "" {
		category = r.Category
	}
	return utils.Contains(DailyCategories, category) || r.OriginalCategory == Extra
}
