package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

var noon = time.Date(2022, 10, 12, 12, 30, 0, 0, time.UTC)

func Test_OnValidDailyEntry_ShouldBuildDailyRecord(t *testing.T) {
	entry := DailyEntry{AmountText: "50", Category: expense.Food}

	rec, err := entry.Record(noon)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, rec.Amount)
	assert.Equal(t, expense.Food, rec.Category)
	assert.Equal(t, expense.Food, rec.OriginalCategory)
	assert.Equal(t, "2022-10-12", rec.Date)
	assert.Equal(t, noon.UnixMilli(), rec.ID)
	assert.True(t, rec.IsDaily())
}

func Test_OnExtraEntry_ShouldUseNoteAsCategory(t *testing.T) {
	entry := DailyEntry{AmountText: "80", Category: expense.Extra, Note: " Concert "}

	rec, err := entry.Record(noon)

	assert.NoError(t, err)
	assert.Equal(t, "Concert", rec.Category)
	assert.Equal(t, expense.Extra, rec.OriginalCategory)
	assert.Equal(t, " Concert ", rec.Note)
	assert.True(t, rec.IsDaily())
}

func Test_OnExtraEntryWithoutNote_ShouldFailValidation(t *testing.T) {
	entry := DailyEntry{AmountText: "80", Category: expense.Extra, Note: "   "}

	_, err := entry.Record(noon)

	assert.ErrorIs(t, err, ErrMissingRequiredNote)
}

func Test_OnInvalidAmount_ShouldFailBeforeOtherChecks(t *testing.T) {
	for _, amount := range []string{"", "  ", "abc", "-5", "0", "NaN", "+Inf"} {
		entry := DailyEntry{AmountText: amount, Category: expense.Extra}

		err := entry.Validate()

		assert.ErrorIs(t, err, ErrMissingOrInvalidAmount, "amount %q", amount)
	}
}

func Test_OnPaddedExtraCategory_ShouldStillRequireNote(t *testing.T) {
	entry := DailyEntry{AmountText: "80", Category: " Extra "}

	assert.ErrorIs(t, entry.Validate(), ErrMissingRequiredNote)

	entry.Note = "Concert"
	rec, err := entry.Record(noon)
	assert.NoError(t, err)
	assert.Equal(t, "Concert", rec.Category)
	assert.Equal(t, expense.Extra, rec.OriginalCategory)
	assert.True(t, rec.IsDaily())
}

func Test_OnMissingCategory_ShouldFailValidation(t *testing.T) {
	entry := OtherEntry{AmountText: "100", Category: " "}

	assert.ErrorIs(t, entry.Validate(), ErrMissingCategory)
}

func Test_OnOtherEntry_ShouldBuildOtherRecord(t *testing.T) {
	entry := OtherEntry{AmountText: "1200", Category: "Rent", Note: "October"}

	rec, err := entry.Record(noon)

	assert.NoError(t, err)
	assert.Equal(t, "Rent", rec.Category)
	assert.Equal(t, "Rent", rec.OriginalCategory)
	assert.Equal(t, "October", rec.Note)
	assert.False(t, rec.IsDaily())
}
