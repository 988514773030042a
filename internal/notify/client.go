package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
)

// Notifier delivers one notification to the messaging transport.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// Client posts notifications to the bot's webhook.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, n models.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/notifications", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close notification response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier only records notifications. Used when no webhook is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n models.Notification) error {
	logger.Log.Info("notification",
		zap.String("recipient", n.Recipient),
		zap.String("kind", string(n.Kind)),
		zap.String("batch", n.BatchID),
		zap.String("withdrawal", n.WithdrawalID),
	)
	return nil
}
