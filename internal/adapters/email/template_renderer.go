package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"sportevents/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

type templateRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses the embedded templates once. A template named "welcome" is made of
// welcome_subject.txt, welcome.html and welcome.txt.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	h, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	t, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &templateRenderer{html: h, text: t}, nil
}

func (r *templateRenderer) Render(name domain.EmailTemplate, data any) (domain.RenderedEmail, error) {
	var msg domain.RenderedEmail
	var buf bytes.Buffer
	if err := r.text.ExecuteTemplate(&buf, string(name)+"_subject.txt", data); err != nil {
		return msg, fmt.Errorf("render subject: %w", err)
	}
	msg.Subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := r.html.ExecuteTemplate(&buf, string(name)+".html", data); err != nil {
		return msg, fmt.Errorf("render html: %w", err)
	}
	msg.HTML = buf.String()

	buf.Reset()
	if err := r.text.ExecuteTemplate(&buf, string(name)+".txt", data); err != nil {
		return msg, fmt.Errorf("render text: %w", err)
	}
	msg.Text = buf.String()
	return msg, nil
}
