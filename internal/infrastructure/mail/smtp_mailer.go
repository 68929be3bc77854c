package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/pkg/config"
)

var _ employee.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía el correo de confirmación con la contraseña aprovisionada vía SMTP.
// El envío ocurre dentro de la transacción de aprovisionamiento, por eso se acota
// con el timeout de configuración para no dejar la tx abierta ante un SMTP lento.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		timeout: timeout,
	}
}

// SendConfirmation compone y envía el mensaje de bienvenida/actualización con la
// credencial de un solo uso. Los fallos se devuelven como domain.ErrNotificationFailed.
func (m *SMTPMailer) SendConfirmation(ctx context.Context, name, email, plainPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Credenciales de acceso - Ladrillera")
	msg.SetBody("text/plain", confirmationBody(name, email, plainPassword))

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	// gomail no acepta context; el envío corre aparte y se abandona si vence el plazo.
	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, ctx.Err())
	}
}

func confirmationBody(name, email, plainPassword string) string {
	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Se registraron tus credenciales de acceso al sistema de la ladrillera.\n\n"+
			"Usuario: %s\nContraseña: %s\n\n"+
			"Cambia la contraseña después de tu primer ingreso.\n",
		name, email, plainPassword,
	)
}
