package mailer

import (
	"fmt"

	"github.com/Math-Ferraz/blog-parques/config"

	mail "github.com/wneessen/go-mail"
)

// Mailer relays contact-form suggestions through an authenticated
// STARTTLS SMTP session. Delivery is synchronous; the caller decides
// what a failure means.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	to       string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.EmailOrigem,
		password: cfg.EmailSenha,
		to:       cfg.EmailDestino,
	}
}

// SendSuggestion forwards one visitor message. The visitor email only
// appears inside the body, never as a header, so it cannot inject
// headers or spoof the envelope.
func (m *Mailer) SendSuggestion(name, email, message string) error {
	subject := fmt.Sprintf("Sugestão de %s", name)
	body := fmt.Sprintf("Nova sugestão de %s (%s):\n\n%s", name, email, message)
	return m.send(subject, body)
}

// SendProbe sends a fixed test message to the configured recipient.
// Used by the -test-email flag to check the relay credentials.
func (m *Mailer) SendProbe() error {
	return m.send("Teste de envio", "Teste de envio automático usando senha de app.")
}

func (m *Mailer) send(subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.from),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("building smtp client: %w", err)
	}

	return client.DialAndSend(msg)
}
