package integration_test

import (
	"net/http"
	"testing"

	"villa_backend/internal/models"
	"villa_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPayment_AlwaysRecorded - транзакция пишется в историю при любом
// исходе на стороне провайдера
func TestPayment_AlwaysRecorded(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/payments", clientToken, tx, map[string]interface{}{
		"amount": 250.50,
		"method": "card",
	})

	// Симулируемый провайдер отклоняет часть платежей, оба исхода валидны
	require.Contains(t, []int{http.StatusCreated, http.StatusPaymentRequired}, res.StatusCode, bodyStr)

	var payment models.Payment
	require.NoError(t, tx.First(&payment, "user_id = ?", client.ID).Error)
	assert.Equal(t, 250.50, payment.Amount)

	if res.StatusCode == http.StatusCreated {
		assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
		assert.Contains(t, payment.ReceiptID, "RCPT")
	} else {
		assert.Equal(t, models.PaymentStatusFailed, payment.Status)
		assert.Empty(t, payment.ReceiptID)
	}

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/payments", clientToken, tx, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, payment.ID)
}

// TestPayment_UnknownMethodRejected - неизвестный метод оплаты дает 400
func TestPayment_UnknownMethodRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/payments", clientToken, tx, map[string]interface{}{
		"amount": 100,
		"method": "goats",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

// TestPayment_ForeignBookingRejected - платеж по чужой брони не проходит
func TestPayment_ForeignBookingRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, owner := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	property := helpers.CreateProperty(t, tx, admin.ID, nil)
	booking := helpers.CreateBooking(t, tx, owner.ID, property.ID, models.BookingStatusPending)

	res, _ := ts.SendRequest(t, "POST", "/api/payments", strangerToken, tx, map[string]interface{}{
		"amount":     100,
		"method":     "card",
		"booking_id": booking.ID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
