package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	colorPurchase    = 0x2ECC71
	colorConsignment = 0x3498DB
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title  string              `json:"title"`
	Color  int                 `json:"color"`
	Fields []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendItemIntaken posts the item as a Discord embed.
func (d *DiscordNotifier) SendItemIntaken(ctx context.Context, item ItemPayload) error {
	embed := discordEmbed{
		Title: fmt.Sprintf("New intake: %s", item.Title),
		Color: colorPurchase,
		Fields: []discordEmbedField{
			{Name: "Price", Value: "$" + item.Price, Inline: true},
			{Name: "Condition", Value: item.Condition, Inline: true},
			{Name: "Location", Value: item.Location, Inline: true},
		},
	}

	if item.IsConsignment {
		embed.Color = colorConsignment
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Consignment",
			Value:  fmt.Sprintf("%s at %.0f%%", item.Vendor, item.PayoutPct),
			Inline: true,
		})
	} else if item.Vendor != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Vendor",
			Value:  item.Vendor,
			Inline: true,
		})
	}

	payload := discordWebhookPayload{Embeds: []discordEmbed{embed}}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"discord webhook error (status %d): %s",
			resp.StatusCode,
			string(respBody),
		)
	}

	return nil
}
