package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"sportevents/config"
	"sportevents/internal/domain"
)

// NewMailer builds a mailer from the email config. Provider "ses" sends through AWS SES;
// "noop" and unknown providers only log.
func NewMailer(cfg config.EmailConfig, logger *slog.Logger) domain.Mailer {
	switch cfg.Provider {
	case "ses":
		if cfg.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: cfg.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region: cfg.AWSRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
			),
			HTTPClient: httpClient,
		}
		return &sesMailer{
			client: ses.NewFromConfig(awsCfg),
			source: formatSource(cfg.FromName, cfg.FromAddress),
			logger: logger,
		}
	case "noop", "":
		return &noopMailer{logger: logger}
	default:
		logger.Warn("unknown email provider, using noop", "provider", cfg.Provider)
		return &noopMailer{logger: logger}
	}
}

func formatSource(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

type sesMailer struct {
	client *ses.Client
	source string
	logger *slog.Logger
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}

func (s *sesMailer) Send(ctx context.Context, to string, msg domain.RenderedEmail) error {
	input := &ses.SendEmailInput{
		Source:      aws.String(s.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: utf8Content(msg.Subject),
			Body:    &types.Body{},
		},
	}
	if msg.HTML != "" {
		input.Message.Body.Html = utf8Content(msg.HTML)
	}
	if msg.Text != "" {
		input.Message.Body.Text = utf8Content(msg.Text)
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send email via SES: %w", err)
	}
	s.logger.Info("email sent", "provider", "ses", "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(_ context.Context, to string, msg domain.RenderedEmail) error {
	n.logger.Info("email not sent (noop)", "to", to, "subject", msg.Subject)
	return nil
}
