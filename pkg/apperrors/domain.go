package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Одна и та же ошибка для несуществующего email и неверного пароля,
// чтобы не раскрывать существование аккаунта.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrAccountSuspended - аккаунт деактивирован.
// Проверяется только ПОСЛЕ успешной проверки пароля.
var ErrAccountSuspended = New(
	CodeForbidden,
	"auth",
	"Account is suspended",
	http.StatusForbidden,
)

// ErrEmailAlreadyExists - email уже используется.
// Семантически конфликт, но наружу отдается 400, как и остальные
// ошибки формы регистрации.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// ErrWeakPassword - пароль короче минимальной длины
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Properties ---

// ErrPropertyNotFound - объект не найден или деактивирован.
// Деактивированные объекты не видны никому, включая админов.
var ErrPropertyNotFound = New(
	CodeNotFound,
	"property",
	"Property not found",
	http.StatusNotFound,
)

// ErrAlreadySaved - объект уже в сохраненных у пользователя
var ErrAlreadySaved = New(
	CodeAlreadyExists,
	"property",
	"Property already saved",
	http.StatusConflict,
)

// --- Bookings & Payments ---

// ErrBookingNotFound - бронирование не найдено
var ErrBookingNotFound = New(
	CodeNotFound,
	"booking",
	"Booking not found",
	http.StatusNotFound,
)

// ErrInvalidBookingStatus - операция невозможна в текущем статусе бронирования
var ErrInvalidBookingStatus = New(
	CodeInvalidStatus,
	"booking",
	"Operation not allowed for the current booking status",
	http.StatusConflict,
)

// ErrPaymentDeclined - платежный провайдер отклонил транзакцию
var ErrPaymentDeclined = New(
	CodeExternalServiceError,
	"payment",
	"Payment was declined",
	http.StatusPaymentRequired,
)

// --- Messages ---

// ErrMessageNotFound - сообщение не найдено или принадлежит другому пользователю
var ErrMessageNotFound = New(
	CodeNotFound,
	"message",
	"Message not found",
	http.StatusNotFound,
)
