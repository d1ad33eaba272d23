package services

import (
	"fmt"
	"log"
	"sales_demarcation_go/config"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// BuildSignupReceivedEmail is sent to a user right after sign-up, while the
// account waits for an administrator to activate it.
func BuildSignupReceivedEmail(toEmail, name string) *Email {
	text := fmt.Sprintf(
		"Hi %s,\n\nYour sign-up request has been received. An administrator will review and activate your account.\n\nYou will get another email once your account is ready.\n",
		name,
	)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your sign-up request has been received. An administrator will review and activate your account.</p><p>You will get another email once your account is ready.</p>`,
		name,
	)
	return &Email{
		To:       []string{toEmail},
		Subject:  "Sign-up received",
		HTMLBody: html,
		TextBody: text,
	}
}

// BuildAccountActivatedEmail is sent when an administrator activates a pending account
func BuildAccountActivatedEmail(toEmail, name, appURL string) *Email {
	text := fmt.Sprintf(
		"Hi %s,\n\nYour account has been activated. You can now sign in at %s.\n",
		name, appURL,
	)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your account has been activated. You can now <a href="%s">sign in</a>.</p>`,
		name, appURL,
	)
	return &Email{
		To:       []string{toEmail},
		Subject:  "Your account is active",
		HTMLBody: html,
		TextBody: text,
	}
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}

	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// SendEmailAsync sends an email in a goroutine so handlers never block on delivery
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			log.Printf("Failed to send email to %v: %v", emailCopy.To, err)
		}
	}()
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}
