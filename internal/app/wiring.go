// Package app assembles the collaborators shared by the binaries.
package app

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/notify"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

// EmailSender picks the provider named by EMAIL_PROVIDER. A provider that
// is selected but not configured falls back to the stub.
func EmailSender(ctx context.Context, cfg *config.Config, logger *logging.Logger) (notify.EmailSender, error) {
	switch cfg.EmailProvider {
	case "sendgrid":
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}, logger); s != nil {
			return s, nil
		}
		logger.Warn("SENDGRID_API_KEY not set, using stub email sender")

	case "ses":
		sesCfg := notify.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			FromEmail:       cfg.EmailFrom,
			FromName:        cfg.EmailFromName,
		}
		client, err := notify.NewSESClient(ctx, sesCfg)
		if err != nil {
			return nil, err
		}
		return notify.NewSESSender(client, sesCfg, logger), nil

	case "stub", "":
	default:
		return nil, fmt.Errorf("unsupported EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
	return notify.NewStubEmailSender(logger), nil
}

// SMSSender returns nil when Twilio is not configured.
func SMSSender(cfg *config.Config, logger *logging.Logger) notify.SMSSender {
	s := notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger)
	if s == nil {
		logger.Info("twilio not configured, sms disabled")
		return nil
	}
	return s
}

// Locker connects to Redis when REDIS_ADDR is set. The returned close func
// is never nil.
func Locker(cfg *config.Config, logger *logging.Logger) (domain.Locker, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, booking lock disabled")
		return lock.NoopLocker{}, func() {}, nil
	}

	client, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, func() {}, err
	}
	return lock.NewRedisLocker(client, cfg.BookingLockTTL, logger), func() { _ = client.Close() }, nil
}
