package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"villa_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя в транзакции, пароль хешируется
// автоматически, если еще не хеширован
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	user.Email = strings.ToLower(user.Email)
	user.IsActive = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	require.NoError(t, err, "Creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", tx, loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginClient создает клиента с уникальным email
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleClient)
}

// CreateAndLoginAdmin создает администратора с уникальным email
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleAdmin)
}

// CreateProperty создает объект недвижимости в транзакции
func CreateProperty(t *testing.T, tx *gorm.DB, createdBy string, mutate func(*models.Property)) models.Property {
	property := models.Property{
		Title:     "Test Villa",
		Type:      models.PropertyTypeHouse,
		Price:     250000,
		Location:  "Lagos",
		Beds:      3,
		Baths:     2,
		Sqft:      1800,
		Status:    models.PropertyStatusAvailable,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if mutate != nil {
		mutate(&property)
	}
	if err := tx.Create(&property).Error; err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}
	return property
}

// CreateBooking создает бронь в транзакции
func CreateBooking(t *testing.T, tx *gorm.DB, userID, propertyID string, status models.BookingStatus) models.Booking {
	booking := models.Booking{
		UserID:      userID,
		PropertyID:  propertyID,
		CheckIn:     time.Now().Add(24 * time.Hour),
		CheckOut:    time.Now().Add(72 * time.Hour),
		Guests:      2,
		TotalAmount: 500,
		Status:      status,
	}
	if err := tx.Create(&booking).Error; err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}
	return booking
}
