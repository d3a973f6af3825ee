package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"villa_backend/internal/auth"
	"villa_backend/internal/models"
	"villa_backend/test/helpers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropertyRoundTrip - создание админом и чтение публично,
// картинки сверяются без учета порядка
func TestPropertyRoundTrip(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	images := []string{
		"https://cdn.example.com/img/villa-1.jpg",
		"https://cdn.example.com/img/villa-2.jpg",
		"https://cdn.example.com/img/villa-3.jpg",
	}
	createBody := map[string]interface{}{
		"title":     "Sea View Villa",
		"type":      "house",
		"price":     480000,
		"location":  "Ikoyi, Lagos",
		"beds":      4,
		"baths":     3,
		"sqft":      2600,
		"amenities": []string{"pool", "gym"},
		"images":    images,
	}

	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/admin/properties", adminToken, tx, createBody)
	require.Equal(t, http.StatusCreated, createRes.StatusCode, createBodyStr)

	var created struct {
		Property struct {
			ID string `json:"id"`
		} `json:"property"`
	}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))
	require.NotEmpty(t, created.Property.ID)

	getRes, getBodyStr := ts.SendRequest(t, "GET", "/api/properties/"+created.Property.ID, "", tx, nil)
	require.Equal(t, http.StatusOK, getRes.StatusCode, getBodyStr)

	var fetched struct {
		Property struct {
			Title  string `json:"title"`
			Price  float64
			Images []struct {
				ImageURL string `json:"image_url"`
			} `json:"images"`
		} `json:"property"`
	}
	require.NoError(t, json.Unmarshal([]byte(getBodyStr), &fetched))
	assert.Equal(t, "Sea View Villa", fetched.Property.Title)

	var gotURLs []string
	for _, img := range fetched.Property.Images {
		gotURLs = append(gotURLs, img.ImageURL)
	}
	assert.ElementsMatch(t, images, gotURLs)
}

// TestPropertyList_Filtered - фильтры листинга и счетчик сохранений
func TestPropertyList_Filtered(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	cheap := helpers.CreateProperty(t, tx, admin.ID, func(p *models.Property) {
		p.Title = "Cheap Flat"
		p.Type = models.PropertyTypeApartment
		p.Price = 90000
		p.Location = "Victoria Island"
	})
	helpers.CreateProperty(t, tx, admin.ID, func(p *models.Property) {
		p.Title = "Expensive House"
		p.Price = 900000
		p.Location = "Banana Island"
	})

	saveRes, _ := ts.SendRequest(t, "POST", "/api/properties/"+cheap.ID+"/save", clientToken, tx, nil)
	require.Equal(t, http.StatusCreated, saveRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/properties?type=apartment&maxPrice=100000&location=victoria", "", tx, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var listing struct {
		Properties []struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			SavedCount int64  `json:"saved_count"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listing))
	require.Len(t, listing.Properties, 1)
	assert.Equal(t, "Cheap Flat", listing.Properties[0].Title)
	assert.Equal(t, int64(1), listing.Properties[0].SavedCount)
}

// TestPropertyList_BadPriceRejected - нечисловая цена отбивается на биндинге
func TestPropertyList_BadPriceRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/properties?minPrice=abc", "", tx, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

// TestInactiveProperty_InvisibleToEveryone - деактивированный объект
// не виден ни публично, ни по админскому токену
func TestInactiveProperty_InvisibleToEveryone(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)

	property := helpers.CreateProperty(t, tx, admin.ID, nil)

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/admin/properties/"+property.ID, adminToken, tx, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	pubRes, _ := ts.SendRequest(t, "GET", "/api/properties/"+property.ID, "", tx, nil)
	assert.Equal(t, http.StatusNotFound, pubRes.StatusCode)

	admRes, _ := ts.SendRequest(t, "GET", "/api/properties/"+property.ID, adminToken, tx, nil)
	assert.Equal(t, http.StatusNotFound, admRes.StatusCode)
}

// TestGuardMatrix - клиентский токен на админском маршруте дает 403,
// отсутствие и истечение токена дают 401
func TestGuardMatrix(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/admin/stats", clientToken, tx, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/admin/stats", "", tx, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/dashboard/stats", "", tx, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	expiredToken := makeExpiredToken(t, client.ID, client.Email, string(client.Role))
	res, _ = ts.SendRequest(t, "GET", "/api/admin/stats", expiredToken, tx, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "expired token must never yield 403")

	res, _ = ts.SendRequest(t, "GET", "/api/dashboard/stats", "garbage.token.value", tx, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestSaveProperty_Duplicate - повторное сохранение дает 409
func TestSaveProperty_Duplicate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	property := helpers.CreateProperty(t, tx, admin.ID, nil)

	res, _ := ts.SendRequest(t, "POST", "/api/properties/"+property.ID+"/save", clientToken, tx, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/properties/"+property.ID+"/save", clientToken, tx, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/properties/"+property.ID+"/save", clientToken, tx, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func makeExpiredToken(t *testing.T, userID, email, role string) string {
	claims := auth.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test_secret_key_1234567890"))
	require.NoError(t, err)
	return signed
}
