package cache

import (
	"strconv"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

var defaultBase = 10

// Keys carry the view's reference date, so an entry is only ever read on
// the day it was rendered. The TTL just keeps superseded days from piling up.
const entryTTLSeconds = 2 * 24 * 60 * 60

// MemcacheClient caches rendered views so repeated /today, /history and
// /month calls skip re-aggregation. Entries are dropped on every write.
type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID int64, view string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + view
}

func (mc *MemcacheClient) CacheReport(userID int64, view, report string) error {
	logger.Info("cache view", zap.Int64("userID", userID), zap.String("view", view))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, view),
		Value:      []byte(report),
		Expiration: entryTTLSeconds,
	})
}

func (mc *MemcacheClient) GetReport(userID int64, view string) (string, error) {
	item, err := mc.client.Get(formatKey(userID, view))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(userID int64, views []string) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))

	for _, view := range views {
		err := mc.client.Delete(formatKey(userID, view))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
