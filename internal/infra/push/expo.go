// Package push contains the outbound push gateways and the provider switch
// that selects one at startup.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"attic/internal/domain/service"

	"github.com/pkg/errors"
)

// expoBatchLimit is the Expo push API's hard per-request cap.
const expoBatchLimit = 100

type expoTicketEnvelope struct {
	Data []service.PushTicket `json:"data"`
}

// expoGateway posts message batches to the Expo push HTTP API.
type expoGateway struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewExpoGateway creates the Expo push gateway.
func NewExpoGateway(endpoint string, timeout time.Duration, logger *slog.Logger) service.PushGateway {
	return &expoGateway{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendBatch posts one batch as a JSON array and returns the per-message
// tickets. The batch must not exceed the API's 100-message cap.
func (g *expoGateway) SendBatch(ctx context.Context, messages []service.PushMessage) ([]service.PushTicket, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if len(messages) > expoBatchLimit {
		return nil, errors.Errorf("batch size %d exceeds limit %d", len(messages), expoBatchLimit)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "expo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return nil, errors.Errorf("expo returned status %d: %s", resp.StatusCode, respBody)
	}

	var envelope expoTicketEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "decode expo tickets")
	}

	g.logger.Debug("expo batch accepted",
		slog.Int("messages", len(messages)),
		slog.Int("tickets", len(envelope.Data)),
	)

	return envelope.Data, nil
}
