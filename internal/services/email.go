package services

import (
	"context"
	"errors"
	"fmt"

	"sportevents/internal/domain"
)

var errNoRecipient = errors.New("email has no recipient")

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) SendWelcome(ctx context.Context, data domain.WelcomeEmail) error {
	return s.deliver(ctx, data.Email, domain.TemplateWelcome, data)
}

// deliver renders name with data and sends it to a single recipient.
func (s *emailService) deliver(ctx context.Context, to string, name domain.EmailTemplate, data any) error {
	if to == "" {
		return errNoRecipient
	}
	msg, err := s.renderer.Render(name, data)
	if err != nil {
		return fmt.Errorf("render %s email: %w", name, err)
	}
	if err := s.mailer.Send(ctx, to, msg); err != nil {
		return fmt.Errorf("send %s email: %w", name, err)
	}
	return nil
}
