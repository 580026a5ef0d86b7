package messages

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func newTestService(m *minimock.Controller, sender messageSender,
	cache ReportCache, producer ReportProducer) (*Service, *storage.Repository) {
	cfg := mock.NewConfigMock(m)
	cfg.CurrencyMock.Return("Rs.")
	cfg.LocationMock.Return(time.UTC)

	repo := storage.NewRepository(storage.NewInMemStore())
	generator := reports.NewGenerator(cfg, repo)

	return NewService(sender, repo, generator, cache, producer, cfg), repo
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(helloMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(dontUnderstandMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnPlainText_ShouldAnswerWithSmallTalk(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(loveToTalkMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "hello there",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseCommand_ShouldSaveAndConfirm(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(savedMessage, int64(123)).
		Return(nil)

	model, repo := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense food 50 lunch",
		UserID: 123,
	})

	assert.NoError(t, err)

	records, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Food", records[0].Category)
	assert.Equal(t, 50.0, records[0].Amount)
	assert.Equal(t, "lunch", records[0].Note)
	assert.True(t, records[0].IsDaily())
}

func Test_OnExtraExpense_ShouldStoreNoteAsCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(savedMessage, int64(123)).
		Return(nil)

	model, repo := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense extra 80 Concert",
		UserID: 123,
	})

	assert.NoError(t, err)

	records, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Concert", records[0].Category)
	assert.Equal(t, "Extra", records[0].OriginalCategory)
	assert.True(t, records[0].IsDaily())
}

func Test_OnExtraExpenseWithoutNote_ShouldAskForNote(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(missingNoteMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense extra 80",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseWithUnknownCategory_ShouldSuggestOther(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(notPredefinedMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense rent 1200",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseWithBadAmount_ShouldRejectIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(incorrectAmountMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense food -50",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseWithoutAmount_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(expenseUsageMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense food",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnOtherCommand_ShouldSaveFreeFormCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(savedMessage, int64(123)).
		Return(nil)

	model, repo := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/other Rent 1200 October",
		UserID: 123,
	})

	assert.NoError(t, err)

	records, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Rent", records[0].Category)
	assert.False(t, records[0].IsDaily())
}

func Test_OnTargetCommand_ShouldSetAndShowTarget(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		When(noTargetMessage, int64(123)).Then(nil).
		SendMessageMock.
		When("🎯 Daily target set to Rs. 450.00", int64(123)).Then(nil).
		SendMessageMock.
		When("🎯 Your daily target is Rs. 450.00", int64(123)).Then(nil)

	model, _ := newTestService(m, sender, nil, nil)
	ctx := context.Background()

	assert.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/target", UserID: 123}))
	assert.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/target 450", UserID: 123}))
	assert.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/target", UserID: 123}))
}

func Test_OnTargetWithBadAmount_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(targetUsageMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/target minus five",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnTodayCommand_ShouldRenderOverview(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	var report string
	sender.SendMessageMock.Set(func(text string, userID int64) error {
		report = text
		return nil
	})

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/today",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Contains(t, report, "📋 Today")
	assert.Contains(t, report, "No daily expenses today")
}

func Test_OnExportWithoutProducer_ShouldAnswerUnavailable(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(exportUnavailableMessage, int64(123)).
		Return(nil)

	model, _ := newTestService(m, sender, nil, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/export",
		UserID: 123,
	})

	assert.NoError(t, err)
}

type capturingProducer struct {
	message []byte
}

func (p *capturingProducer) ProduceMessage(message []byte) error {
	p.message = message
	return nil
}

func Test_OnExportCommand_ShouldProduceReportRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(exportQueuedMessage, int64(123)).
		Return(nil)

	producer := &capturingProducer{}
	model, _ := newTestService(m, sender, nil, producer)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/export",
		UserID: 123,
	})

	assert.NoError(t, err)

	var req reports.Request
	assert.NoError(t, json.Unmarshal(producer.message, &req))
	assert.Equal(t, int64(123), req.UserID)
	assert.Equal(t, time.Now().UTC().Format("2006-01"), req.Month)
}

func Test_OnNonFiniteTarget_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(targetUsageMessage, int64(123)).
		Return(nil)

	model, repo := newTestService(m, sender, nil, nil)
	ctx := context.Background()

	for _, amount := range []string{"NaN", "Inf", "-Inf"} {
		err := model.HandleIncomingMessage(ctx, Message{Text: "/target " + amount, UserID: 123})
		assert.NoError(t, err, "amount %q", amount)
	}

	_, ok, err := repo.Target(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}

type stubCache struct {
	entries map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]string)}
}

func (c *stubCache) key(userID int64, view string) string {
	return strconv.FormatInt(userID, 10) + ":" + view
}

func (c *stubCache) GetReport(userID int64, view string) (string, error) {
	report, ok := c.entries[c.key(userID, view)]
	if !ok {
		return "", errCacheMiss
	}
	return report, nil
}

func (c *stubCache) CacheReport(userID int64, view, report string) error {
	c.entries[c.key(userID, view)] = report
	return nil
}

func (c *stubCache) InvalidateCache(userID int64, views []string) error {
	for _, view := range views {
		delete(c.entries, c.key(userID, view))
	}
	return nil
}

var errCacheMiss = errors.New("cache miss")

func Test_OnViewCachedYesterday_ShouldRenderFreshToday(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	var reply string
	sender.SendMessageMock.Set(func(text string, userID int64) error {
		reply = text
		return nil
	})

	cache := newStubCache()
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	cache.entries["123:"+viewKey(todayView, yesterday)] = "stale overview"

	model, _ := newTestService(m, sender, cache, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/today",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "stale overview", reply)
	assert.Contains(t, reply, "📋 Today")
	assert.Equal(t, reply, cache.entries["123:"+viewKey(todayView, time.Now().UTC())])
}

func Test_OnViewCachedToday_ShouldServeCachedRendering(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("rendered earlier", int64(123)).
		Return(nil)

	cache := newStubCache()
	cache.entries["123:"+viewKey(todayView, time.Now().UTC())] = "rendered earlier"

	model, _ := newTestService(m, sender, cache, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/today",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnExpenseSave_ShouldDropTodaysCachedViews(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(savedMessage, int64(123)).
		Return(nil)

	cache := newStubCache()
	now := time.Now().UTC()
	for _, view := range cachedViews {
		cache.entries["123:"+viewKey(view, now)] = "stale " + view
	}

	model, _ := newTestService(m, sender, cache, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/expense food 50",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Empty(t, cache.entries)
}
