package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/mail"
)

// NotificationService emails customers, applicants and the shop on domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
	cfg        config.MailConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger, cfg config.MailConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     loggerOrNop(logger),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderDeleted, n.handleOrderDeleted)
	n.dispatcher.Subscribe(events.EventPaymentVerified, n.handlePaymentVerified)
	n.dispatcher.Subscribe(events.EventJobApplicationStatusChanged, n.handleApplicationStatusChanged)
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderCreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	n.logger.Info("OrderCreated", zap.String("order_id", event.EntityID), zap.Int64("total", payload.TotalAmount))

	if strings.TrimSpace(n.cfg.AdminTo) == "" {
		return nil
	}
	return n.send(ctx, n.cfg.AdminTo, "New order received", mail.TemplateNewOrder, map[string]any{
		"OrderID": event.EntityID,
		"Name":    payload.CustomerName,
		"Email":   payload.Email,
		"Total":   payload.TotalAmount,
	})
}

func (n *NotificationService) handleOrderDeleted(_ context.Context, event events.Event) error {
	fields := []zap.Field{zap.String("order_id", event.EntityID)}
	if event.ActorID != nil {
		fields = append(fields, zap.String("admin_id", *event.ActorID))
	}
	n.logger.Info("OrderDeleted", fields...)
	return nil
}

func (n *NotificationService) handlePaymentVerified(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PaymentVerifiedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	n.logger.Info("PaymentVerified", zap.String("order_id", payload.OrderID), zap.String("reference", payload.Reference))

	return n.send(ctx, payload.Email, "Payment received", mail.TemplatePaymentReceipt, map[string]any{
		"Name":      payload.Email,
		"Reference": payload.Reference,
		"OrderID":   payload.OrderID,
	})
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.JobApplicationStatusChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T", event.Payload)
	}
	n.logger.Info("JobApplicationStatusChanged",
		zap.String("application_id", event.EntityID),
		zap.String("old_status", string(payload.OldStatus)),
		zap.String("new_status", string(payload.NewStatus)))

	subject := fmt.Sprintf("Your application for %s", payload.Position)
	return n.send(ctx, payload.Email, subject, mail.TemplateApplicationStatus, map[string]any{
		"Name":     payload.FullName,
		"Position": payload.Position,
		"Status":   payload.NewStatus,
	})
}

func (n *NotificationService) send(ctx context.Context, to, subject string, tmpl mail.Template, data map[string]any) error {
	if n.mailer == nil || strings.TrimSpace(to) == "" {
		return nil
	}
	body, err := mail.Render(tmpl, data)
	if err != nil {
		return err
	}
	return n.mailer.Send(ctx, mail.Message{To: []string{to}, Subject: subject, HTML: body})
}
