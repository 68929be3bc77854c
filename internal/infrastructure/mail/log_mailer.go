package mail

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/pkg/logger"
)

var _ employee.Mailer = (*LogMailer)(nil)

// LogMailer mailer de desarrollo: registra el envío en el log en lugar de usar SMTP.
// Se usa cuando SMTP_HOST no está configurado. No registra la contraseña.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendConfirmation registra el envío simulado.
func (m *LogMailer) SendConfirmation(_ context.Context, name, email, _ string) error {
	m.log.Info().
		Str("to", email).
		Str("name", name).
		Msg("correo de confirmación simulado (SMTP no configurado)")
	return nil
}
