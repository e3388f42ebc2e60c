// Package redis fans campaign state changes out to subscribers and keeps the
// latest state of each campaign for cheap progress reads.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"pagecast/internal/config/configs"
	"pagecast/internal/core/domain"
)

const keyPrefix = "pagecast:campaign:"

// NewClient opens a client for cfg and checks connectivity.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// EventPublisher implements port.EventPublisher. Each event is stored as the
// campaign's snapshot and published on a single channel.
type EventPublisher struct {
	client  goredis.Cmdable
	channel string
	ttl     time.Duration
}

func NewEventPublisher(client goredis.Cmdable, channel string, ttl time.Duration) *EventPublisher {
	return &EventPublisher{client: client, channel: channel, ttl: ttl}
}

func snapshotKey(id uuid.UUID) string { return keyPrefix + id.String() }

func (p *EventPublisher) Publish(ctx context.Context, ev domain.CampaignEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	_, err = p.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, snapshotKey(ev.CampaignID), payload, p.ttl)
		pipe.Publish(ctx, p.channel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", ev.Kind, err)
	}
	return nil
}

// Latest returns the last event written for the campaign, or
// domain.ErrNotFound when none is cached.
func (p *EventPublisher) Latest(ctx context.Context, id uuid.UUID) (*domain.CampaignEvent, error) {
	raw, err := p.client.Get(ctx, snapshotKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var ev domain.CampaignEvent
	if err = json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &ev, nil
}
