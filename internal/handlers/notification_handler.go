package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/sirupsen/logrus"
)

type NotificationServiceIn interface {
	RecordNotification(ctx context.Context, event models.PostbackReceivedEvent) error
}

type NotificationHandler struct {
	Service NotificationServiceIn
}

func NewNotificationHandler(s NotificationServiceIn) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

func (h *NotificationHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PostbackReceivedEventTopic:
		var event models.PostbackReceivedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing postback event %s", err.Error())
			return fmt.Errorf("error parsing postback event %w", err)
		}
		if err := h.Service.RecordNotification(ctx, event); err != nil {
			return fmt.Errorf("error recording notification %w", err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
