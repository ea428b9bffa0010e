package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sportevents/config"
	"sportevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	msg, err := r.Render(domain.TemplateWelcome, domain.WelcomeEmail{
		Email:        "coach@example.com",
		DashboardURL: "https://app.example.com/dashboard",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Sport Events", msg.Subject)
	assert.Contains(t, msg.HTML, "coach@example.com")
	assert.Contains(t, msg.HTML, `href="https://app.example.com/dashboard"`)
	assert.Contains(t, msg.Text, "https://app.example.com/dashboard")
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	msg, err := r.Render(domain.TemplateWelcome, domain.WelcomeEmail{Email: "<b>x</b>@example.com"})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<b>x</b>")
	assert.Contains(t, msg.Text, "<b>x</b>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, err = r.Render("missing", nil)
	assert.Error(t, err)
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := NewMailer(config.EmailConfig{Provider: "noop"}, logger)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "a@example.com", domain.RenderedEmail{Subject: "s", Text: "t"}))

	m = NewMailer(config.EmailConfig{Provider: "carrier-pigeon"}, logger)
	assert.IsType(t, &noopMailer{}, m)

	m = NewMailer(config.EmailConfig{Provider: "ses", AWSRegion: "eu-west-1", FromAddress: "no-reply@example.com", FromName: "Sport Events"}, logger)
	require.IsType(t, &sesMailer{}, m)
	assert.Equal(t, "Sport Events <no-reply@example.com>", m.(*sesMailer).source)
}

func TestFormatSource(t *testing.T) {
	assert.Equal(t, "no-reply@example.com", formatSource("", "no-reply@example.com"))
	assert.Equal(t, "Team <no-reply@example.com>", formatSource("Team", "no-reply@example.com"))
}
