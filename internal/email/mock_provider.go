package email

import "sync"

// MockProvider сохраняет письма в памяти, используется в тестах
// и в окружениях без настроенного SMTP
type MockProvider struct {
	mu   sync.Mutex
	sent []Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, *email)
	return nil
}

func (p *MockProvider) Validate() error {
	return nil
}

// Sent возвращает копию отправленных писем
func (p *MockProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
