package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/mail"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// ContactService forwards storefront contact messages to the shop inbox.
type ContactService struct {
	mailer    mail.Mailer
	recipient string
}

// NewContactService constructs the service.
func NewContactService(mailer mail.Mailer, recipient string) *ContactService {
	return &ContactService{mailer: mailer, recipient: recipient}
}

// Submit sends msg to the shop inbox with the sender as reply-to.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	body, err := mail.Render(mail.TemplateContact, msg)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	subject := msg.Subject
	if subject == "" {
		subject = fmt.Sprintf("Contact form message from %s", msg.Name)
	}

	err = s.mailer.Send(ctx, mail.Message{
		To:      []string{s.recipient},
		ReplyTo: msg.Email,
		Subject: subject,
		HTML:    body,
		Text:    msg.Message,
	})
	if err != nil {
		return apperrors.NewUpstreamError("failed to send message", err)
	}
	return nil
}
