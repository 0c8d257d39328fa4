package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from, templateDir string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: templateDir,
	}
}

// SendAccessApproved tells a dealer their access request went through.
func (s *EmailSender) SendAccessApproved(to string) error {
	body, err := s.render("access_approved.html", AccessApprovedData{Email: to})
	if err != nil {
		return err
	}

	return s.send(to, "Your LuxeMarket access has been approved", body)
}

// SendNewsletter delivers the daily digest of fresh listings.
func (s *EmailSender) SendNewsletter(to string, leadCount int, titles []string) error {
	body, err := s.render("newsletter.html", NewsletterData{
		LeadCount: leadCount,
		Titles:    titles,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%d new leads on LuxeMarket today", leadCount)
	return s.send(to, subject, body)
}

func (s *EmailSender) render(name string, data any) (string, error) {
	tmplPath := filepath.Join(s.TemplateDir, name)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("failed to read mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render mail template: %w", err)
	}

	return body.String(), nil
}

func (s *EmailSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail over SMTP: %w", err)
	}

	return nil
}
