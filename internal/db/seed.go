package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and pgx transactions.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var seedNamespace = uuid.MustParse("6f1c1c56-52e4-4f7e-9a53-6d1b1c0e7a10")

// DemoAccountID owns every seeded row.
var DemoAccountID = uuid.NewSHA1(seedNamespace, []byte("account"))

const seedConversations = 30

// Seed inserts a demo channel, its conversations and a few campaigns. Ids
// are derived from names so repeated runs are no-ops.
func Seed(ctx context.Context, db Execer, accessToken string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	channelID := uuid.NewSHA1(seedNamespace, []byte("channel"))
	if _, err := db.Exec(ctx, `INSERT INTO channels (id, account_id, external_id, name, access_token)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
		channelID, DemoAccountID, "demo-page", "Demo Page", accessToken); err != nil {
		return fmt.Errorf("seed channel: %w", err)
	}

	for i := 1; i <= seedConversations; i++ {
		psid := fmt.Sprintf("demo-psid-%03d", i)
		// a third of the parties wrote within the last day
		lastInbound := now.Add(-time.Duration(r.Intn(72)) * time.Hour)
		if i%3 == 0 {
			lastInbound = now.Add(-time.Duration(r.Intn(20)+1) * time.Hour)
		}
		labels := []string{}
		if i%5 == 0 {
			labels = append(labels, "vip")
		}
		_, err := db.Exec(ctx, `INSERT INTO conversations
    (id, channel_id, account_id, recipient_external_id, recipient_name, labels, last_message, last_message_at, last_inbound_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) ON CONFLICT DO NOTHING`,
			uuid.NewSHA1(seedNamespace, []byte(psid)), channelID, DemoAccountID, psid,
			fmt.Sprintf("User %03d", i), labels, "hi there", lastInbound)
		if err != nil {
			return fmt.Errorf("seed conversation %s: %w", psid, err)
		}
	}

	campaigns := []struct {
		name, audience, tag, status string
		scheduledAt                 *time.Time
		template                    bool
	}{
		{name: "Welcome back", audience: "active-recently", status: "draft"},
		{name: "VIP preview", audience: "label:vip", tag: "ACCOUNT_UPDATE", status: "scheduled", scheduledAt: ptr(now.Add(time.Hour))},
		{name: "Order follow-up", status: "draft", template: true},
	}
	for _, c := range campaigns {
		var channel *uuid.UUID
		if !c.template {
			channel = &channelID
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, account_id, channel_id, name, audience, message, tag, status, scheduled_at, is_template)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT DO NOTHING`,
			uuid.NewSHA1(seedNamespace, []byte("campaign:"+c.name)), DemoAccountID, channel, c.name,
			c.audience, "Hello from the demo page!", c.tag, c.status, c.scheduledAt, c.template)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.name, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
