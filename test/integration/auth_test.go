package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"villa_backend/internal/models"
	"villa_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin - регистрация, затем вход с теми же данными
func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("newuser_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":      email,
		"password":   "super_password123",
		"first_name": "Ivan",
		"last_name":  "Petrov",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", tx, registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)
	assert.Contains(t, regBodyStr, "token")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", tx, loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode, logBodyStr)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "client", resp.User.Role)
}

// TestRegister_RoleAlwaysClient - роль из тела запроса игнорируется
func TestRegister_RoleAlwaysClient(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("wannabe_admin_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":      email,
		"password":   "super_password123",
		"first_name": "Eva",
		"last_name":  "Adams",
		"role":       "admin",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", tx, registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)

	var user models.User
	require.NoError(t, tx.First(&user, "email = ?", email).Error)
	assert.Equal(t, models.UserRoleClient, user.Role)
}

// TestRegister_DuplicateEmail - повторная регистрация отклоняется как
// ошибка формы (400), регистр букв в email не учитывается
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, tx, &models.User{
		Email:        email,
		PasswordHash: "pass12345",
		FirstName:    "User",
		LastName:     "One",
		Role:         models.UserRoleClient,
	})
	require.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":      toUpperFirst(email),
		"password":   "password_is_long_enough",
		"first_name": "User",
		"last_name":  "Two",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", tx, duplicateBody)
	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode, regBodyStr)
	assert.Contains(t, regBodyStr, "Email already registered")
}

// TestLogin_IdenticalFailures - несуществующий email и неверный пароль
// дают байт-в-байт одинаковый ответ
func TestLogin_IdenticalFailures(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("victim_%d@test.com", time.Now().UnixNano())
	require.NoError(t, helpers.CreateUser(t, tx, &models.User{
		Email:        email,
		PasswordHash: "correct_password",
		FirstName:    "Known",
		LastName:     "User",
		Role:         models.UserRoleClient,
	}))

	unknownRes, unknownBody := ts.SendRequest(t, "POST", "/api/auth/login", "", tx, map[string]interface{}{
		"email":    fmt.Sprintf("nobody_%d@test.com", time.Now().UnixNano()),
		"password": "whatever123",
	})
	wrongRes, wrongBody := ts.SendRequest(t, "POST", "/api/auth/login", "", tx, map[string]interface{}{
		"email":    email,
		"password": "wrong_password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, unknownBody, wrongBody)
}

// TestLogin_SuspendedAccount - заблокированный аккаунт с верным паролем
// получает 403, а не 401
func TestLogin_SuspendedAccount(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("suspended_%d@test.com", time.Now().UnixNano())
	require.NoError(t, helpers.CreateUser(t, tx, &models.User{
		Email:        email,
		PasswordHash: "correct_password",
		FirstName:    "Blocked",
		LastName:     "User",
		Role:         models.UserRoleClient,
	}))
	require.NoError(t, tx.Model(&models.User{}).Where("email = ?", email).Update("is_active", false).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", tx, map[string]interface{}{
		"email":    email,
		"password": "correct_password",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	// Неверный пароль у заблокированного - обычный 401
	res, _ = ts.SendRequest(t, "POST", "/api/auth/login", "", tx, map[string]interface{}{
		"email":    email,
		"password": "wrong_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestChangePassword - смена пароля и вход с новым
func TestChangePassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/users/password", token, tx, map[string]interface{}{
		"current_password": "password123",
		"new_password":     "brand_new_password",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	logRes, _ := ts.SendRequest(t, "POST", "/api/auth/login", "", tx, map[string]interface{}{
		"email":    user.Email,
		"password": "brand_new_password",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
}

func toUpperFirst(s string) string {
	if s == "" {
		return s
	}
	first := s[:1]
	if first >= "a" && first <= "z" {
		first = string(first[0] - 'a' + 'A')
	}
	return first + s[1:]
}
