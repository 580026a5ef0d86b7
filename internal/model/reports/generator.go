package reports

import (
	"context"
	"sort"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/aggregate"
)

type expensesStorage interface {
	ListAll(ctx context.Context) ([]expense.Record, error)
	Target(ctx context.Context) (float64, bool, error)
}

type config interface {
	Currency() string
}

// Generator composes the report views. It only reads: classification and
// bucketing are recomputed from the stored records on every call.
type Generator struct {
	storage  expensesStorage
	currency string
}

func NewGenerator(config config, storage expensesStorage) *Generator {
	return &Generator{
		storage:  storage,
		currency: config.Currency(),
	}
}

// Overview is the home view: today's spending against the daily target.
type Overview struct {
	Date            string
	Today           []aggregate.Line
	OtherCategories []string
	DailyTotal      float64
	OtherTotal      float64
	Target          float64
	TargetSet       bool
	Remaining       float64
	Progress        float64
}

// DayTotal is one past day of the current week.
type DayTotal struct {
	Date  string
	Total float64
}

// DayDetail is one day of a weekly group, with its collapsed lines.
type DayDetail struct {
	Date  string
	Total float64
	Lines []aggregate.Line
}

// WeekGroup is one calendar week of the month with its daily breakdown.
type WeekGroup struct {
	Week     int
	StartDay int
	EndDay   int
	Total    float64
	Days     []DayDetail
}

// History is the full-history view: today in detail, the rest of the
// current week per day, the rest of the month per calendar week.
type History struct {
	Date            string
	Today           []aggregate.Line
	TodayDailyTotal float64
	TodayOtherTotal float64
	RestOfWeek      []DayTotal
	RestOfMonth     []WeekGroup
}

// MonthSummary is the printable month report. Every expense of the month
// appears exactly once: daily ones inside the weekly groups, the rest in
// the flat Other list.
type MonthSummary struct {
	Year       int
	Month      time.Month
	Weeks      []WeekGroup
	Other      []expense.Record
	ByCategory []aggregate.Line
	DailyTotal float64
	OtherTotal float64
	Total      float64
}

func (g *Generator) Overview(ctx context.Context, at time.Time) (*Overview, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "overview")
	defer span.Finish()

	records, err := g.storage.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate overview")
	}
	target, targetSet, err := g.storage.Target(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate overview")
	}

	today := at.Format(expense.DateLayout)
	daily, other := aggregate.Split(filterByDate(records, today))

	res := &Overview{
		Date:            today,
		Today:           aggregate.GroupByCategoryNote(daily),
		OtherCategories: uniqueCategories(other),
		DailyTotal:      aggregate.Sum(daily),
		OtherTotal:      aggregate.Sum(other),
		Target:          target,
		TargetSet:       targetSet,
	}
	if targetSet {
		res.Remaining = target - res.DailyTotal
		res.Progress = res.DailyTotal / target * 100
		if res.Progress > 100 {
			res.Progress = 100
		}
	}
	return res, nil
}

func (g *Generator) History(ctx context.Context, at time.Time) (*History, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "history")
	defer span.Finish()

	records, err := g.storage.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate history")
	}

	daily, other := aggregate.Split(records)
	buckets := aggregate.BucketByDate(daily)
	dates := aggregate.Dates(buckets)

	today := at.Format(expense.DateLayout)
	weekStart, weekEnd := aggregate.WeekRange(at)

	restOfWeek := make([]DayTotal, 0)
	for _, date := range dates {
		if date == today || !aggregate.InRange(date, weekStart, weekEnd) {
			continue
		}
		restOfWeek = append(restOfWeek, DayTotal{
			Date:  date,
			Total: aggregate.Sum(buckets[date]),
		})
	}

	restOfMonth := make([]string, 0)
	for _, date := range aggregate.MonthDates(dates, at) {
		if !aggregate.InRange(date, weekStart, weekEnd) {
			restOfMonth = append(restOfMonth, date)
		}
	}

	return &History{
		Date:            today,
		Today:           aggregate.GroupByCategoryNote(buckets[today]),
		TodayDailyTotal: aggregate.Sum(buckets[today]),
		TodayOtherTotal: aggregate.Sum(filterByDate(other, today)),
		RestOfWeek:      restOfWeek,
		RestOfMonth:     groupByWeek(buckets, restOfMonth, at.Year(), at.Month()),
	}, nil
}

func (g *Generator) MonthSummary(ctx context.Context, at time.Time) (*MonthSummary, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "monthSummary")
	defer span.Finish()

	logger.Info("MonthSummary - start", zap.String("month", at.Format("2006-01")))
	defer logger.Info("MonthSummary - end")

	records, err := g.storage.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "generate month summary")
	}

	monthly := make([]expense.Record, 0, len(records))
	prefix := at.Format("2006-01")
	for _, rec := range records {
		if len(rec.Date) >= len(prefix) && rec.Date[:len(prefix)] == prefix {
			monthly = append(monthly, rec)
		}
	}

	daily, other := aggregate.Split(monthly)
	buckets := aggregate.BucketByDate(daily)

	weeks := make([]WeekGroup, 0)
	for _, wk := range aggregate.MonthWeeks(at.Year(), at.Month()) {
		dates := make([]string, 0)
		for _, date := range aggregate.Dates(buckets) {
			if aggregate.InRange(date, wk.Start, wk.End) {
				dates = append(dates, date)
			}
		}
		weeks = append(weeks, weekGroup(buckets, dates, wk.Week, aggregate.Day(wk.Start), aggregate.Day(wk.End)))
	}

	sortByDateDesc(other)

	return &MonthSummary{
		Year:       at.Year(),
		Month:      at.Month(),
		Weeks:      weeks,
		Other:      other,
		ByCategory: aggregate.GroupByCategory(monthly),
		DailyTotal: aggregate.Sum(daily),
		OtherTotal: aggregate.Sum(other),
		Total:      aggregate.Sum(monthly),
	}, nil
}

func weekGroup(buckets map[string][]expense.Record, dates []string, week, startDay, endDay int) WeekGroup {
	group := WeekGroup{
		Week:     week,
		StartDay: startDay,
		EndDay:   endDay,
		Days:     make([]DayDetail, 0, len(dates)),
	}
	for _, date := range dates {
		dayTotal := aggregate.Sum(buckets[date])
		group.Days = append(group.Days, DayDetail{
			Date:  date,
			Total: dayTotal,
			Lines: aggregate.GroupByCategoryNote(buckets[date]),
		})
		group.Total += dayTotal
	}
	return group
}

// groupByWeek collates the given dates of one month into calendar-week
// groups, weeks ascending, days within a week most recent first.
func groupByWeek(buckets map[string][]expense.Record, dates []string, year int, month time.Month) []WeekGroup {
	byWeek := make(map[int][]string)
	for _, date := range dates {
		week := aggregate.WeekOfMonth(date)
		byWeek[week] = append(byWeek[week], date)
	}

	groups := make([]WeekGroup, 0, len(byWeek))
	for _, wk := range aggregate.MonthWeeks(year, month) {
		weekDates, ok := byWeek[wk.Week]
		if !ok {
			continue
		}
		groups = append(groups, weekGroup(buckets, weekDates, wk.Week, aggregate.Day(wk.Start), aggregate.Day(wk.End)))
	}
	return groups
}

func filterByDate(records []expense.Record, date string) []expense.Record {
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if rec.Date == date {
			res = append(res, rec)
		}
	}
	return res
}

func uniqueCategories(records []expense.Record) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		categories = append(categories, rec.Category)
	}
	return categories
}

func sortByDateDesc(records []expense.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
