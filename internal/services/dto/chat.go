package dto

// SendMessageRequest - отправка сообщения в поддержку
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}
