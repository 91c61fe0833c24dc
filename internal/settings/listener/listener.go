package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-site-service/internal/settings"
	"github.com/fekuna/omnipos-site-service/internal/settings/dto"
	"github.com/fekuna/omnipos-site-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// SettingsListener drops the local cached document whenever any replica
// saves a tenant's settings.
type SettingsListener struct {
	consumer MessageReader
	uc       settings.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewSettingsListener(consumer MessageReader, uc settings.UseCase, logger logger.ZapLogger) *SettingsListener {
	return &SettingsListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *SettingsListener) Start(ctx context.Context) {
	l.logger.Info("Starting Settings Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Settings Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *SettingsListener) processMessage(ctx context.Context, value []byte) {
	var event dto.SettingsEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != dto.EventSettingsUpdated || event.Payload.TenantID == "" {
		return
	}

	if err := l.uc.InvalidateCache(ctx, event.Payload.TenantID); err != nil {
		l.logger.Error("Failed to invalidate settings cache",
			zap.String("event_id", event.EventID),
			zap.String("tenant_id", event.Payload.TenantID),
			zap.Error(err),
		)
		return
	}
	l.logger.Debug("Settings cache invalidated", zap.String("tenant_id", event.Payload.TenantID))
}
