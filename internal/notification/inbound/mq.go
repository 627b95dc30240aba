package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goroutine"
	"github.com/rakasatria/eventum/internal/pkg/idempotency"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/messaging"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/notification/usecase"
	"github.com/rakasatria/eventum/internal/shared/event"
)

type uc interface {
	ConsumeUserSignup(ctx context.Context, in usecase.ConsumeUserSignupInput) error
	ConsumeOTPResend(ctx context.Context, in usecase.ConsumeOTPResendInput) error
}

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	idemp idempotency.Idempotency,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, idemp: idemp, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	var consumers = []struct {
		name    string
		topic   string // destination where publisher sent message
		handler messaging.Handler
	}{
		{
			name:    event.UserSignupDestinationConsumerNotification,
			topic:   event.UserSignupDestination,
			handler: mqHandler.UserSignupNotification,
		},
		{
			name:    event.OTPResendDestinationConsumerNotification,
			topic:   event.OTPResendDestination,
			handler: mqHandler.OTPResendNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.name),
					messaging.WithQueueGroup(consumer.name),
					messaging.WithGroup(consumer.name),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
