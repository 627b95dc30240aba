package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/notification/usecase"
	"github.com/rakasatria/eventum/internal/pkg/idempotency"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/messaging"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc    uc
	idemp idempotency.Idempotency
	uuid  uid.StringID
	ins   instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// execOnce runs fn under the message ID so broker redeliveries do not send
// the same email twice.
func (h *MQHandler) execOnce(ctx context.Context, key string, fn func(context.Context) error) error {
	err := h.idemp.Exec(ctx, key, fn)
	if errors.Is(err, idempotency.ErrInProgress) || errors.Is(err, idempotency.ErrCompleted) {
		slog.InfoContext(ctx, "skipping duplicate message", "key", key)
		return nil
	}
	return err
}

func (h *MQHandler) UserSignupNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "UserSignupNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: user signup notification", "msg_id", msg.ID())

	var payload event.UserSignupMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user signup notification", "msg_body", string(body), "error", err)
		return nil
	}

	return h.execOnce(ctx, "notification:user_signup:"+msg.ID(), func(ctx context.Context) error {
		if err := h.uc.ConsumeUserSignup(ctx, usecase.ConsumeUserSignupInput{
			UserID:    payload.UserID,
			Email:     payload.Email,
			FullName:  payload.FullName,
			Role:      payload.Role,
			OTPCode:   payload.OTPCode,
			ExpiresAt: payload.ExpiresAt,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to consume user signup", "msg_id", msg.ID(), "error", err)
			return err
		}
		return nil
	})
}

func (h *MQHandler) OTPResendNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "OTPResendNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp resend notification", "msg_id", msg.ID())

	var payload event.OTPResendMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp resend notification", "msg_body", string(body), "error", err)
		return nil
	}

	return h.execOnce(ctx, "notification:otp_resend:"+msg.ID(), func(ctx context.Context) error {
		if err := h.uc.ConsumeOTPResend(ctx, usecase.ConsumeOTPResendInput{
			UserID:    payload.UserID,
			Email:     payload.Email,
			FullName:  payload.FullName,
			OTPCode:   payload.OTPCode,
			ExpiresAt: payload.ExpiresAt,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to consume otp resend", "msg_id", msg.ID(), "error", err)
			return err
		}
		return nil
	})
}
