package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendTicketAssigned(to, ticketName, ticketURL string) error
	SendTicketStatusChanged(to, ticketName, fromStatus, toStatus, ticketURL string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	BaseURL     string
}

type SMTPSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPSender) SendTicketAssigned(to, ticketName, ticketURL string) error {
	subject := fmt.Sprintf("You were assigned to: %s", ticketName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Assignment</h2>
			<p>You have been assigned to the ticket <strong>%s</strong>.</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, ticketName, ticketURL)

	plainBody := fmt.Sprintf("You have been assigned to the ticket %q.\n\nOpen it at:\n%s\n", ticketName, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) SendTicketStatusChanged(to, ticketName, fromStatus, toStatus, ticketURL string) error {
	subject := fmt.Sprintf("Status changed: %s", ticketName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Status Change</h2>
			<p>The ticket <strong>%s</strong> moved from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, ticketName, fromStatus, toStatus, ticketURL)

	plainBody := fmt.Sprintf("The ticket %q moved from %s to %s.\n\nOpen it at:\n%s\n", ticketName, fromStatus, toStatus, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) SendTicketAssigned(string, string, string) error {
	return nil
}

func (NoopSender) SendTicketStatusChanged(string, string, string, string, string) error {
	return nil
}
