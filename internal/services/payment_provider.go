package services

import (
	"math/rand"
	"strings"
	"sync"

	"villa_backend/internal/services/dto"

	"github.com/google/uuid"
)

// PaymentProvider - шлюз обработки платежей. Реальный эквайринг
// встает за этот же интерфейс.
type PaymentProvider interface {
	Charge(amount float64, method string) dto.PaymentResult
}

// SimulatedProvider имитирует шлюз: платеж проходит с заданной
// вероятностью, при успехе выдается квитанция RCPT-<uuid>
type SimulatedProvider struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
}

func NewSimulatedProvider(seed int64) *SimulatedProvider {
	return &SimulatedProvider{
		rng:         rand.New(rand.NewSource(seed)),
		successRate: 0.9,
	}
}

func (p *SimulatedProvider) Charge(amount float64, method string) dto.PaymentResult {
	p.mu.Lock()
	roll := p.rng.Float64()
	p.mu.Unlock()

	if roll >= p.successRate {
		return dto.PaymentResult{
			Success: false,
			Message: "payment declined by provider",
		}
	}

	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return dto.PaymentResult{
		Success:   true,
		ReceiptID: "RCPT" + ref[:9],
		Message:   "Payment completed successfully",
	}
}
