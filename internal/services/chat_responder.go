package services

import "strings"

// Responder формирует ответ поддержки на сообщение клиента.
// Живой оператор или LLM встают за этот же интерфейс.
type Responder interface {
	Reply(message string) string
}

// SimulatedResponder отвечает заготовленными фразами по ключевым
// словам в сообщении
type SimulatedResponder struct{}

func NewSimulatedResponder() *SimulatedResponder {
	return &SimulatedResponder{}
}

func (r *SimulatedResponder) Reply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "price") || strings.Contains(message, "$"):
		return "The pricing details vary based on the property. Would you like me to provide specific pricing for a particular listing?"
	case strings.Contains(lower, "tour") || strings.Contains(lower, "visit"):
		return "I can schedule a virtual tour for you. Please let me know your preferred date and time."
	case strings.Contains(lower, "available") || strings.Contains(lower, "vacant"):
		return "Availability depends on the property. I can check current availability for any property you're interested in."
	default:
		return "Thank you for your message. Our team will review your inquiry and get back to you with detailed information."
	}
}
