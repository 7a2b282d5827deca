// Package notify posts back-office alerts to a Discord webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/storefront/internal/config"
	"github.com/storefront/internal/model"
)

const (
	orderColor    = 0x57F287
	maxEmbedItems = 20
)

// Discord sends order alerts to a webhook, at most one per rateLimit.
type Discord struct {
	webhook   string
	username  string
	rateLimit time.Duration
	lastSend  time.Time
	mu        sync.Mutex
	client    *http.Client
}

// NewDiscord returns nil when no webhook is configured.
func NewDiscord(cfg config.NotifyConfig) *Discord {
	if cfg.DiscordWebhook == "" {
		return nil
	}
	return &Discord{
		webhook:   cfg.DiscordWebhook,
		username:  cfg.Username,
		rateLimit: time.Duration(cfg.RateLimitMs) * time.Millisecond,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Webhook returns the configured URL with its token masked, for logs.
func (d *Discord) Webhook() string {
	return maskWebhook(d.webhook)
}

// OrderPlaced announces a new order.
func (d *Discord) OrderPlaced(ctx context.Context, order *model.Order) error {
	message := &model.WebhookMessage{
		Username: d.username,
		Embeds:   []model.Embed{orderEmbed(order)},
	}

	if err := d.wait(ctx); err != nil {
		return err
	}

	if err := d.send(ctx, message); err != nil {
		return fmt.Errorf("failed to send Discord message: %w", err)
	}

	d.mu.Lock()
	d.lastSend = time.Now()
	d.mu.Unlock()
	return nil
}

func (d *Discord) wait(ctx context.Context) error {
	d.mu.Lock()
	elapsed := time.Since(d.lastSend)
	d.mu.Unlock()

	if elapsed >= d.rateLimit {
		return nil
	}

	timer := time.NewTimer(d.rateLimit - elapsed)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *Discord) send(ctx context.Context, message *model.WebhookMessage) error {
	jsonBody, err := json.Marshal(message)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhook, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Discord API error %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func orderEmbed(order *model.Order) model.Embed {
	var lines []string
	for i, item := range order.CartItems {
		if i == maxEmbedItems {
			lines = append(lines, fmt.Sprintf("…and %d more", len(order.CartItems)-maxEmbedItems))
			break
		}
		line := fmt.Sprintf("%d × %s (%.2f)", item.Count, item.Name, item.Price)
		if len(item.Flavor) > 0 {
			line += " [" + strings.Join(item.Flavor, ", ") + "]"
		}
		lines = append(lines, line)
	}

	fields := []model.EmbedField{
		{Name: "Email", Value: orDash(order.Email), Inline: true},
		{Name: "Phone", Value: orDash(order.Phone), Inline: true},
		{Name: "Payment", Value: orDash(string(order.PaymentMethod)), Inline: true},
		{Name: "Total", Value: fmt.Sprintf("%.2f", order.TotalAmount), Inline: true},
	}
	if order.Address != "" {
		fields = append(fields, model.EmbedField{Name: "Address", Value: truncate(order.Address, 1024)})
	}

	return model.Embed{
		Title:       truncate("New order from "+order.Name, 256),
		Description: truncate(strings.Join(lines, "\n"), 4096),
		Color:       orderColor,
		Fields:      fields,
		Footer:      &model.EmbedFooter{Text: "Order " + order.ID},
		Timestamp:   order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func maskWebhook(url string) string {
	if len(url) < 30 {
		return "***"
	}
	return url[:30] + "***"
}
