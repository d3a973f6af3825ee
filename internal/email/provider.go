package email

// Email представляет структуру письма
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое письмо
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}
