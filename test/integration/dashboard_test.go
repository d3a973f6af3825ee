package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"villa_backend/internal/models"
	"villa_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDashboardStats - счетчики кабинета считаются по данным пользователя
func TestDashboardStats(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	p1 := helpers.CreateProperty(t, tx, admin.ID, nil)
	p2 := helpers.CreateProperty(t, tx, admin.ID, func(p *models.Property) { p.Title = "Second" })

	// Два сохранения
	for _, p := range []models.Property{p1, p2} {
		res, _ := ts.SendRequest(t, "POST", "/api/properties/"+p.ID+"/save", clientToken, tx, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	// Брони: pending и confirmed считаются, cancelled - нет
	helpers.CreateBooking(t, tx, client.ID, p1.ID, models.BookingStatusPending)
	helpers.CreateBooking(t, tx, client.ID, p1.ID, models.BookingStatusConfirmed)
	helpers.CreateBooking(t, tx, client.ID, p2.ID, models.BookingStatusCancelled)

	// Платеж
	require.NoError(t, tx.Create(&models.Payment{
		UserID: client.ID,
		Amount: 100,
		Method: "card",
		Status: models.PaymentStatusCompleted,
	}).Error)

	// Непрочитанный ответ поддержки появляется после отправки сообщения
	msgRes, _ := ts.SendRequest(t, "POST", "/api/messages", clientToken, tx, map[string]interface{}{
		"body": "What is the price?",
	})
	require.Equal(t, http.StatusCreated, msgRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/dashboard/stats", clientToken, tx, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resp struct {
		Stats struct {
			SavedCount    int64 `json:"savedCount"`
			BookingsCount int64 `json:"bookingsCount"`
			PaymentsCount int64 `json:"paymentsCount"`
			MessagesCount int64 `json:"messagesCount"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, int64(2), resp.Stats.SavedCount)
	assert.Equal(t, int64(2), resp.Stats.BookingsCount)
	assert.Equal(t, int64(1), resp.Stats.PaymentsCount)
	assert.Equal(t, int64(1), resp.Stats.MessagesCount)
}

// TestDashboardSavedProperties - список сохраненного без деактивированных
func TestDashboardSavedProperties(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	kept := helpers.CreateProperty(t, tx, admin.ID, func(p *models.Property) { p.Title = "Kept" })
	doomed := helpers.CreateProperty(t, tx, admin.ID, func(p *models.Property) { p.Title = "Doomed" })

	for _, p := range []models.Property{kept, doomed} {
		res, _ := ts.SendRequest(t, "POST", "/api/properties/"+p.ID+"/save", clientToken, tx, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/admin/properties/"+doomed.ID, adminToken, tx, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/dashboard/saved-properties", clientToken, tx, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resp struct {
		Properties []struct {
			Title string `json:"title"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.Len(t, resp.Properties, 1)
	assert.Equal(t, "Kept", resp.Properties[0].Title)
}

// TestAdminStats - агрегаты платформы
func TestAdminStats(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	helpers.CreateProperty(t, tx, admin.ID, nil)

	require.NoError(t, tx.Create(&models.Payment{
		UserID: client.ID, Amount: 150, Method: "card", Status: models.PaymentStatusCompleted,
	}).Error)
	require.NoError(t, tx.Create(&models.Payment{
		UserID: client.ID, Amount: 999, Method: "card", Status: models.PaymentStatusFailed,
	}).Error)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/admin/stats", adminToken, tx, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resp struct {
		Stats struct {
			TotalProperties    int64           `json:"totalProperties"`
			TotalUsers         int64           `json:"totalUsers"`
			TotalRevenue       float64         `json:"totalRevenue"`
			RecentTransactions []models.Payment `json:"recentTransactions"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.GreaterOrEqual(t, resp.Stats.TotalProperties, int64(1))
	assert.GreaterOrEqual(t, resp.Stats.TotalUsers, int64(1))
	assert.Equal(t, float64(150), resp.Stats.TotalRevenue)
	assert.NotEmpty(t, resp.Stats.RecentTransactions)
}
