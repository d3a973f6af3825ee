package dto

// CreatePaymentRequest - оплата клиентом (опционально привязана к брони)
type CreatePaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=card bank_transfer paypal"`
	BookingID *string `json:"booking_id,omitempty" binding:"omitempty,uuid"`
}

// PaymentResult - итог обработки платежа провайдером
type PaymentResult struct {
	Success   bool   `json:"success"`
	ReceiptID string `json:"receipt_id,omitempty"`
	Message   string `json:"message"`
}
