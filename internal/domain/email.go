package domain

import "context"

// EmailTemplate names a set of embedded templates: <name>_subject.txt, <name>.html and <name>.txt.
type EmailTemplate string

const TemplateWelcome EmailTemplate = "welcome"

// RenderedEmail is a message ready to hand to a Mailer. Either body may be empty.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers a rendered message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to string, msg RenderedEmail) error
}

type EmailTemplateRenderer interface {
	Render(name EmailTemplate, data any) (RenderedEmail, error)
}

// WelcomeEmail is the data of the message sent after sign-up.
type WelcomeEmail struct {
	Email        string
	DashboardURL string
}

// EmailService sends the account emails of the app. Failures never undo the action that triggered them.
type EmailService interface {
	SendWelcome(ctx context.Context, data WelcomeEmail) error
}
