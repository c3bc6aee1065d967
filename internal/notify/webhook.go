package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/glasscast/glasscast/internal/httputil"
	"github.com/glasscast/glasscast/internal/metrics"
	"github.com/glasscast/glasscast/internal/models"
)

// WebhookPusher posts notifications as JSON to a configured endpoint,
// the hosted analog of a native OS notification.
type WebhookPusher struct {
	url    string
	client *http.Client
}

func NewWebhookPusher(url string) *WebhookPusher {
	return &WebhookPusher{
		url:    url,
		client: httputil.NewClient(),
	}
}

// Probe checks the endpoint answers at all. Any response, even an error
// status, proves reachability; only transport failure denies permission.
func (w *WebhookPusher) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.url, nil)
	if err != nil {
		return err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe webhook: %w", err)
	}
	resp.Body.Close()
	return nil
}

type webhookPayload struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Push delivers one notification, retrying transient failures with
// exponential backoff. Client errors are permanent: a 4xx will not change
// on retry.
func (w *WebhookPusher) Push(ctx context.Context, n models.Notification) error {
	body, err := json.Marshal(webhookPayload{
		Title:     n.Title,
		Message:   n.Message,
		Severity:  string(n.Severity),
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.client.Do(req)
		if err != nil {
			return fmt.Errorf("post webhook: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("post webhook: status %d: %s", resp.StatusCode, string(b)))
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("post webhook: status %d", resp.StatusCode)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		metrics.WebhookDeliveries.WithLabelValues("error").Inc()
		return err
	}
	metrics.WebhookDeliveries.WithLabelValues("ok").Inc()
	return nil
}
