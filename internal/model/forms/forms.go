package forms

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// Validation failures of the entry forms. They are recoverable: the user
// corrects the input and resubmits.
var (
	ErrMissingOrInvalidAmount = errors.New("missing or invalid amount")
	ErrMissingCategory        = errors.New("missing category")
	ErrMissingRequiredNote    = errors.New("missing required note")
)

// DailyEntry is the predefined-category form. Category is expected to be
// one of the predefined ones; when it is Extra the note is mandatory and
// becomes the stored display category.
type DailyEntry struct {
	AmountText string
	Category   string
	Note       string
}

func (e DailyEntry) Validate() error {
	if err := validateAmount(e.AmountText); err != nil {
		return err
	}
	category := strings.TrimSpace(e.Category)
	if category == "" {
		return ErrMissingCategory
	}
	if category == expense.Extra && strings.TrimSpace(e.Note) == "" {
		return ErrMissingRequiredNote
	}
	return nil
}

// Record validates the entry and builds the expense dated at the given
// instant's calendar day.
func (e DailyEntry) Record(at time.Time) (expense.Record, error) {
	if err := e.Validate(); err != nil {
		return expense.Record{}, err
	}

	original := strings.TrimSpace(e.Category)
	category := original
	if original == expense.Extra {
		category = strings.TrimSpace(e.Note)
	}
	return newRecord(at, e.AmountText, category, original, e.Note), nil
}

// OtherEntry is the free-form expenses form: the category is whatever the
// user typed, and the note is always optional.
type OtherEntry struct {
	AmountText string
	Category   string
	Note       string
}

func (e OtherEntry) Validate() error {
	if err := validateAmount(e.AmountText); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrMissingCategory
	}
	return nil
}

func (e OtherEntry) Record(at time.Time) (expense.Record, error) {
	if err := e.Validate(); err != nil {
		return expense.Record{}, err
	}

	category := strings.TrimSpace(e.Category)
	return newRecord(at, e.AmountText, category, category, e.Note), nil
}

func validateAmount(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrMissingOrInvalidAmount
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrMissingOrInvalidAmount
	}
	return nil
}

func newRecord(at time.Time, amountText, category, originalCategory, note string) expense.Record {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(amountText), 64)
	return expense.Record{
		ID:               at.UnixMilli(),
		Amount:           amount,
		Category:         category,
		OriginalCategory: originalCategory,
		Note:             note,
		Date:             at.Format(expense.DateLayout),
	}
}
