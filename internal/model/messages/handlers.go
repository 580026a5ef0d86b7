package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/forms"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	helloMessage = "Hello! I am your expense diary 🤖\n" +
		"Use /expense, /other, /target, /today, /history, /month and /export"
	dontUnderstandMessage = "I don't understand you :("
	loveToTalkMessage     = "I would love to talk about it more!"
	savedMessage          = "Gotcha! 🎉"

	expenseUsageMessage = "Usage: /expense <category> <amount> [note]"
	otherUsageMessage   = "Usage: /other <category> <amount> [note]"
	targetUsageMessage  = "Usage: /target <amount>"

	incorrectAmountMessage = "Your expense amount is incorrect"
	missingCategoryMessage = "Please specify a category"
	missingNoteMessage     = "Please say what the Extra expense is for"
	notPredefinedMessage   = "Daily categories are Food, Travel, Utility and Extra. " +
		"Use /other for anything else"
	noTargetMessage = "You have no daily target yet. Set one with /target <amount>"

	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
	cannotSaveTargetMessage  = "Can't save your target atm. Try later"
	exportUnavailableMessage = "Export is not available right now. Try later"
	exportQueuedMessage      = "Your month report is on its way 📄"
)

const (
	startCommand   = "/start"
	expenseCommand = "/expense"
	otherCommand   = "/other"
	targetCommand  = "/target"
	todayCommand   = "/today"
	historyCommand = "/history"
	monthCommand   = "/month"
	exportCommand  = "/export"
)

const (
	todayView   = "today"
	historyView = "history"
	monthView   = "month"
)

const monthLayout = "2006-01"

var cachedViews = []string{todayView, historyView, monthView}

// viewKey scopes a cached rendering to the day (or month) it was built
// for, so an entry never outlives its reference date.
func viewKey(view string, at time.Time) string {
	if view == monthView {
		return view + ":" + at.Format(monthLayout)
	}
	return view + ":" + at.Format(expense.DateLayout)
}

type expenseStorage interface {
	Append(ctx context.Context, rec expense.Record) error
	Target(ctx context.Context) (float64, bool, error)
	SetTarget(ctx context.Context, target float64) error
}

type reportGenerator interface {
	Overview(ctx context.Context, at time.Time) (*reports.Overview, error)
	History(ctx context.Context, at time.Time) (*reports.History, error)
	MonthSummary(ctx context.Context, at time.Time) (*reports.MonthSummary, error)
	FormatOverview(o *reports.Overview) string
	FormatHistory(h *reports.History) string
	FormatMonthSummary(m *reports.MonthSummary) string
}

// ReportCache is optional: a nil cache disables view caching.
type ReportCache interface {
	GetReport(userID int64, view string) (string, error)
	CacheReport(userID int64, view, report string) error
	InvalidateCache(userID int64, views []string) error
}

// ReportProducer is optional: a nil producer disables /export.
type ReportProducer interface {
	ProduceMessage(message []byte) error
}

type config interface {
	Currency() string
	Location() *time.Location
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	storage     expenseStorage
	generator   reportGenerator
	cache       ReportCache
	producer    ReportProducer
	currency    string
	loc         *time.Location
}

func newHandler(storage expenseStorage, generator reportGenerator,
	cache ReportCache, producer ReportProducer, config config) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		storage:     storage,
		generator:   generator,
		cache:       cache,
		producer:    producer,
		currency:    config.Currency(),
		loc:         config.Location(),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[expenseCommand] = s.handleExpense
	m[otherCommand] = s.handleOther
	m[targetCommand] = s.handleTarget
	m[todayCommand] = s.handleToday
	m[historyCommand] = s.handleHistory
	m[monthCommand] = s.handleMonth
	m[exportCommand] = s.handleExport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, userID int64) (string, error) {
	category, amount, note, ok := parseEntry(arg)
	if !ok {
		return expenseUsageMessage, nil
	}

	category = titleCase(category)
	if !utils.Contains(expense.PredefinedCategories, category) {
		return notPredefinedMessage, nil
	}

	entry := forms.DailyEntry{AmountText: amount, Category: category, Note: note}
	rec, err := entry.Record(time.Now().In(s.loc))
	if err != nil {
		return validationMessage(err), nil
	}
	return s.save(ctx, rec, userID)
}

func (s *HandlerService) handleOther(ctx context.Context, arg string, userID int64) (string, error) {
	category, amount, note, ok := parseEntry(arg)
	if !ok {
		return otherUsageMessage, nil
	}

	entry := forms.OtherEntry{AmountText: amount, Category: category, Note: note}
	rec, err := entry.Record(time.Now().In(s.loc))
	if err != nil {
		return validationMessage(err), nil
	}
	return s.save(ctx, rec, userID)
}

func (s *HandlerService) save(ctx context.Context, rec expense.Record, userID int64) (string, error) {
	if err := s.storage.Append(ctx, rec); err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "save expense")
	}
	observeSavedExpense(rec.IsDaily())
	s.invalidateViews(userID)
	return savedMessage, nil
}

func (s *HandlerService) handleTarget(ctx context.Context, arg string, userID int64) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		target, ok, err := s.storage.Target(ctx)
		if err != nil {
			return cannotGetExpensesMessage, errors.Wrap(err, "handle target")
		}
		if !ok {
			return noTargetMessage, nil
		}
		return fmt.Sprintf("🎯 Your daily target is %s %.2f", s.currency, target), nil
	}

	target, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return targetUsageMessage, nil
	}
	if err = s.storage.SetTarget(ctx, target); err != nil {
		return cannotSaveTargetMessage, errors.Wrap(err, "handle target")
	}
	s.invalidateViews(userID)
	return fmt.Sprintf("🎯 Daily target set to %s %.2f", s.currency, target), nil
}

func (s *HandlerService) handleToday(ctx context.Context, _ string, userID int64) (string, error) {
	at := time.Now().In(s.loc)
	return s.cachedView(ctx, todayView, at, userID, func() (string, error) {
		overview, err := s.generator.Overview(ctx, at)
		if err != nil {
			return "", err
		}
		return s.generator.FormatOverview(overview), nil
	})
}

func (s *HandlerService) handleHistory(ctx context.Context, _ string, userID int64) (string, error) {
	at := time.Now().In(s.loc)
	return s.cachedView(ctx, historyView, at, userID, func() (string, error) {
		history, err := s.generator.History(ctx, at)
		if err != nil {
			return "", err
		}
		return s.generator.FormatHistory(history), nil
	})
}

func (s *HandlerService) handleMonth(ctx context.Context, _ string, userID int64) (string, error) {
	at := time.Now().In(s.loc)
	return s.cachedView(ctx, monthView, at, userID, func() (string, error) {
		summary, err := s.generator.MonthSummary(ctx, at)
		if err != nil {
			return "", err
		}
		return s.generator.FormatMonthSummary(summary), nil
	})
}

func (s *HandlerService) handleExport(_ context.Context, _ string, userID int64) (string, error) {
	if s.producer == nil {
		return exportUnavailableMessage, nil
	}

	req := reports.Request{
		UserID: userID,
		Month:  time.Now().In(s.loc).Format(monthLayout),
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return exportUnavailableMessage, errors.Wrap(err, "handle export")
	}
	if err = s.producer.ProduceMessage(raw); err != nil {
		return exportUnavailableMessage, errors.Wrap(err, "handle export")
	}
	return exportQueuedMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) cachedView(ctx context.Context, view string, at time.Time, userID int64,
	build func() (string, error)) (string, error) {
	key := viewKey(view, at)
	if s.cache != nil {
		if report, err := s.cache.GetReport(userID, key); err == nil {
			return report, nil
		}
	}

	report, err := build()
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "render "+view)
	}

	if s.cache != nil {
		if err := s.cache.CacheReport(userID, key, report); err != nil {
			logger.Warn("failed to cache view", zap.String("view", view), zap.Error(err))
		}
	}
	return report, nil
}

func (s *HandlerService) invalidateViews(userID int64) {
	if s.cache == nil {
		return
	}
	at := time.Now().In(s.loc)
	keys := make([]string, 0, len(cachedViews))
	for _, view := range cachedViews {
		keys = append(keys, viewKey(view, at))
	}
	if err := s.cache.InvalidateCache(userID, keys); err != nil {
		logger.Warn("failed to invalidate cache", zap.Error(err))
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, forms.ErrMissingOrInvalidAmount):
		return incorrectAmountMessage
	case errors.Is(err, forms.ErrMissingCategory):
		return missingCategoryMessage
	case errors.Is(err, forms.ErrMissingRequiredNote):
		return missingNoteMessage
	default:
		return dontUnderstandMessage
	}
}
