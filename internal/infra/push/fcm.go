package push

import (
	"context"
	"log/slog"

	"attic/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmGateway sends message batches through Firebase Cloud Messaging. Used
// when device tokens are FCM registration tokens instead of Expo tokens.
type fcmGateway struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFCMGateway initializes the Firebase app and messaging client.
func NewFCMGateway(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.PushGateway, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmGateway{
		client: client,
		logger: logger,
	}, nil
}

// SendBatch sends each message individually through SendEach and maps the
// per-message responses onto tickets.
func (g *fcmGateway) SendBatch(ctx context.Context, messages []service.PushMessage) ([]service.PushTicket, error) {
	if len(messages) == 0 {
		return nil, nil
	}

	fcmMessages := make([]*messaging.Message, 0, len(messages))
	for _, m := range messages {
		fcmMessages = append(fcmMessages, &messaging.Message{
			Token: m.To,
			Notification: &messaging.Notification{
				Title: m.Title,
				Body:  m.Body,
			},
			Data: m.Data,
		})
	}

	response, err := g.client.SendEach(ctx, fcmMessages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send batch")
	}

	tickets := make([]service.PushTicket, 0, len(response.Responses))
	for _, r := range response.Responses {
		ticket := service.PushTicket{Status: "ok", ID: r.MessageID}
		if r.Error != nil {
			ticket.Status = "error"
			ticket.ID = ""
			ticket.Message = r.Error.Error()
		}
		tickets = append(tickets, ticket)
	}

	g.logger.Debug("fcm batch sent",
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
	)

	return tickets, nil
}
