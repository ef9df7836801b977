package push

import (
	"context"
	"log/slog"

	"attic/config"
	"attic/internal/domain/constants"
	"attic/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates a PushGateway based on configuration
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	logger := params.Logger

	switch cfg.Provider {
	case constants.PushProviderExpo:
		logger.Info("Using Expo push gateway",
			slog.String("endpoint", cfg.ExpoURL),
		)

		return NewExpoGateway(cfg.ExpoURL, cfg.RequestTimeout, logger), nil

	case constants.PushProviderFCM:
		if cfg.FirebaseProjectID == "" && cfg.FirebaseCredentialsPath == "" {
			return nil, errors.New("firebase project ID or credentials path is required for fcm provider")
		}
		logger.Info("Using FCM push gateway",
			slog.String("project_id", cfg.FirebaseProjectID),
		)

		return NewFCMGateway(params.Ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
