// Package directory serves franchisee profiles, optionally through a Redis
// read-through cache.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/config"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/storage/sqlconfig"
)

const keyPrefix = "ledger:franchisee:"

// Directory looks up franchisee profiles. A nil cache reads straight from the table.
type Directory struct {
	table sqlconfig.IFranchiseeTable
	cache *redis.Client
	ttl   time.Duration
	log   logrus.FieldLogger
}

type cachedProfile struct {
	BranchID        string          `json:"branch"`
	Name            string          `json:"name"`
	SharePercentage decimal.Decimal `json:"share_percentage"`
}

func New(table sqlconfig.IFranchiseeTable, cache *redis.Client, ttl time.Duration, log logrus.FieldLogger) *Directory {
	return &Directory{table: table, cache: cache, ttl: ttl, log: log}
}

// NewRedisClient connects to the configured Redis. It returns a nil client when
// no address is configured, which disables caching.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}
	return rdb, nil
}

// Lookup returns the branch profile. Cache failures are logged and fall back to the table.
func (d *Directory) Lookup(ctx context.Context, branchID string) (*ledger.Profile, error) {
	if profile, ok := d.fromCache(ctx, branchID); ok {
		return profile, nil
	}

	profile, err := d.table.Lookup(ctx, branchID)
	if err != nil {
		return nil, err
	}

	d.store(ctx, profile)
	return profile, nil
}

// Invalidate drops the cached profile of the branch.
func (d *Directory) Invalidate(ctx context.Context, branchID string) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Del(ctx, keyPrefix+branchID).Err(); err != nil {
		d.log.WithError(err).WithField("branch", branchID).Warn("Failed to invalidate cached profile")
	}
}

func (d *Directory) fromCache(ctx context.Context, branchID string) (*ledger.Profile, bool) {
	if d.cache == nil {
		return nil, false
	}

	raw, err := d.cache.Get(ctx, keyPrefix+branchID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			d.log.WithError(err).WithField("branch", branchID).Warn("Redis GET failed")
		}
		return nil, false
	}

	var cached cachedProfile
	if err := json.Unmarshal(raw, &cached); err != nil {
		d.log.WithError(err).WithField("branch", branchID).Warn("Discarding unreadable cached profile")
		return nil, false
	}

	return &ledger.Profile{
		BranchID:        cached.BranchID,
		Name:            cached.Name,
		SharePercentage: cached.SharePercentage,
	}, true
}

func (d *Directory) store(ctx context.Context, p *ledger.Profile) {
	if d.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedProfile{
		BranchID:        p.BranchID,
		Name:            p.Name,
		SharePercentage: p.SharePercentage,
	})
	if err != nil {
		return
	}
	if err := d.cache.Set(ctx, keyPrefix+p.BranchID, raw, d.ttl).Err(); err != nil {
		d.log.WithError(err).WithField("branch", p.BranchID).Warn("Redis SET failed")
	}
}
