package reports

import (
	"context"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

func Test_OnMonthHTML_ShouldListEveryExpenseOnce(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return([]expense.Record{
		{Amount: 100, Category: expense.Food, OriginalCategory: expense.Food, Note: "groceries", Date: "2022-10-03"},
		{Amount: 80, Category: "Concert", OriginalCategory: expense.Extra, Date: "2022-10-10"},
		{Amount: 1200, Category: "Rent", OriginalCategory: "Rent", Date: "2022-10-01"},
	}, nil)

	generator := NewGenerator(cfg, storage)
	html, err := generator.MonthHTML(ctx, wednesday)

	assert.NoError(m, err)
	assert.Contains(m, html, "October 2022 Monthly Expense Summary")

	assert.Equal(m, 1, strings.Count(html, "(groceries)"))
	assert.Equal(m, 1, strings.Count(html, "Oct 10"))
	assert.Equal(m, 1, strings.Count(html, "Oct 1 - Rent"))

	assert.Contains(m, html, "Daily Expenses Total: Rs. 180.00")
	assert.Contains(m, html, "Other Expenses Total: Rs. 1200.00")
	assert.Contains(m, html, "Total for the Month:</strong> Rs. 1430.00")
}
