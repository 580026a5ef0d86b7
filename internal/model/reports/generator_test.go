package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/aggregate"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

var wednesday = time.Date(2022, 10, 12, 15, 0, 0, 0, time.UTC)

func Test_OnOverview_ShouldSplitTodayAgainstTarget(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return([]expense.Record{
		{Amount: 100, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-12"},
		{Amount: 50, Category: expense.Travel, OriginalCategory: expense.Travel, Date: "2022-10-12"},
		{Amount: 1200, Category: "Rent", OriginalCategory: "Rent", Date: "2022-10-12"},
		{Amount: 30, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-11"},
	}, nil).
		TargetMock.Return(500, true, nil)

	generator := NewGenerator(cfg, storage)
	overview, err := generator.Overview(ctx, wednesday)

	assert.NoError(m, err)
	assert.Equal(m, "2022-10-12", overview.Date)
	assert.Equal(m, 150.0, overview.DailyTotal)
	assert.Equal(m, 1200.0, overview.OtherTotal)
	assert.Equal(m, []string{"Rent"}, overview.OtherCategories)
	assert.Equal(m, 350.0, overview.Remaining)
	assert.Equal(m, 30.0, overview.Progress)
	assert.Len(m, overview.Today, 2)
	assert.Equal(m, expense.Food, overview.Today[0].Category)
	assert.Equal(m, 100.0, overview.Today[0].Amount)
}

func Test_OnOverviewPastTarget_ShouldCapProgress(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return([]expense.Record{
		{Amount: 800, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-12"},
	}, nil).
		TargetMock.Return(500, true, nil)

	generator := NewGenerator(cfg, storage)
	overview, err := generator.Overview(ctx, wednesday)

	assert.NoError(m, err)
	assert.Equal(m, 100.0, overview.Progress)
	assert.Equal(m, -300.0, overview.Remaining)
}

func Test_OnOverviewWithoutTarget_ShouldSkipProgress(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return(nil, nil).
		TargetMock.Return(0, false, nil)

	generator := NewGenerator(cfg, storage)
	overview, err := generator.Overview(ctx, wednesday)

	assert.NoError(m, err)
	assert.False(m, overview.TargetSet)
	assert.Zero(m, overview.Progress)
	assert.Zero(m, overview.Remaining)
}

func Test_OnHistory_ShouldGroupWeekAndMonth(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return([]expense.Record{
		{Amount: 100, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-12"},
		{Amount: 40, Category: expense.Travel, OriginalCategory: expense.Travel, Date: "2022-10-10"},
		{Amount: 60, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-03"},
		{Amount: 80, Category: "Concert", OriginalCategory: expense.Extra, Date: "2022-10-03"},
		{Amount: 1200, Category: "Rent", OriginalCategory: "Rent", Date: "2022-10-12"},
	}, nil)

	generator := NewGenerator(cfg, storage)
	history, err := generator.History(ctx, wednesday)

	assert.NoError(m, err)
	assert.Equal(m, "2022-10-12", history.Date)
	assert.Equal(m, 100.0, history.TodayDailyTotal)
	assert.Equal(m, 1200.0, history.TodayOtherTotal)

	// Oct 10 shares the week of the 12th, Oct 3 falls into calendar week 1.
	assert.Equal(m, []DayTotal{{Date: "2022-10-10", Total: 40}}, history.RestOfWeek)
	assert.Len(m, history.RestOfMonth, 1)
	assert.Equal(m, 1, history.RestOfMonth[0].Week)
	assert.Equal(m, 140.0, history.RestOfMonth[0].Total)
	assert.Equal(m, 1, history.RestOfMonth[0].StartDay)
	assert.Equal(m, 7, history.RestOfMonth[0].EndDay)
}

func Test_OnMonthSummary_ShouldAccountEveryExpenseOnce(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")

	storage.ListAllMock.Return([]expense.Record{
		{Amount: 100, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-10-03"},
		{Amount: 50, Category: expense.Travel, OriginalCategory: expense.Travel, Date: "2022-10-10"},
		{Amount: 80, Category: "Concert", OriginalCategory: expense.Extra, Date: "2022-10-10"},
		{Amount: 1200, Category: "Rent", OriginalCategory: "Rent", Date: "2022-10-01"},
		{Amount: 999, Category: expense.Food, OriginalCategory: expense.Food, Date: "2022-09-30"},
	}, nil)

	generator := NewGenerator(cfg, storage)
	summary, err := generator.MonthSummary(ctx, wednesday)

	assert.NoError(m, err)
	assert.Equal(m, 2022, summary.Year)
	assert.Equal(m, time.October, summary.Month)
	assert.Equal(m, 230.0, summary.DailyTotal)
	assert.Equal(m, 1200.0, summary.OtherTotal)
	assert.Equal(m, 1430.0, summary.Total)

	assert.Len(m, summary.Weeks, 5)
	assert.Equal(m, 100.0, summary.Weeks[0].Total)
	assert.Equal(m, 130.0, summary.Weeks[1].Total)

	weekly := 0.0
	for _, week := range summary.Weeks {
		weekly += week.Total
	}
	assert.Equal(m, summary.Total, weekly+summary.OtherTotal)

	assert.Len(m, summary.Other, 1)
	assert.Equal(m, "Rent", summary.Other[0].Category)

	assert.Equal(m, []string{"Rent", expense.Food, "Concert", expense.Travel}, categories(summary.ByCategory))
}

func Test_OnStorageFault_ShouldPropagateError(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	cfg := mock.NewConfigMock(m)
	storage := mock.NewExpensesStorageMock(m)

	cfg.CurrencyMock.Return("Rs.")
	storage.ListAllMock.Return(nil, assert.AnError)

	generator := NewGenerator(cfg, storage)

	_, err := generator.Overview(ctx, wednesday)
	assert.ErrorIs(m, err, assert.AnError)

	_, err = generator.History(ctx, wednesday)
	assert.ErrorIs(m, err, assert.AnError)

	_, err = generator.MonthSummary(ctx, wednesday)
	assert.ErrorIs(m, err, assert.AnError)
}

func categories(lines []aggregate.Line) []string {
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		res = append(res, line.Category)
	}
	return res
}
