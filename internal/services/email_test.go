package services

import (
	"context"
	"errors"
	"testing"

	"sportevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	err error
}

func (f fakeRenderer) Render(name domain.EmailTemplate, data any) (domain.RenderedEmail, error) {
	if f.err != nil {
		return domain.RenderedEmail{}, f.err
	}
	return domain.RenderedEmail{Subject: "subject:" + string(name), HTML: "<p>html</p>", Text: "text"}, nil
}

type fakeMailer struct {
	to  string
	msg domain.RenderedEmail
	err error
}

func (f *fakeMailer) Send(ctx context.Context, to string, msg domain.RenderedEmail) error {
	f.to, f.msg = to, msg
	return f.err
}

func TestEmailService_SendWelcome(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewEmailService(mailer, fakeRenderer{})

	err := svc.SendWelcome(context.Background(), domain.WelcomeEmail{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", mailer.to)
	assert.Equal(t, "subject:welcome", mailer.msg.Subject)
}

func TestEmailService_SendWelcomeErrors(t *testing.T) {
	ctx := context.Background()
	data := domain.WelcomeEmail{Email: "a@example.com"}

	tests := []struct {
		name    string
		svc     domain.EmailService
		data    domain.WelcomeEmail
		wantErr error
	}{
		{"no recipient", NewEmailService(&fakeMailer{}, fakeRenderer{}), domain.WelcomeEmail{}, errNoRecipient},
		{"render fails", NewEmailService(&fakeMailer{}, fakeRenderer{err: errors.New("bad template")}), data, nil},
		{"send fails", NewEmailService(&fakeMailer{err: errors.New("ses")}, fakeRenderer{}), data, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.svc.SendWelcome(ctx, tt.data)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
