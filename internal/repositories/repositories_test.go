package repositories

import (
	"fmt"
	"testing"
	"time"

	"villa_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB - изолированная sqlite база в памяти на каждый тест
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyImage{},
		&models.SavedProperty{},
		&models.Booking{},
		&models.Payment{},
		&models.Message{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("user_%d@test.com", time.Now().UnixNano()),
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProperty(t *testing.T, db *gorm.DB, createdBy string) *models.Property {
	t.Helper()
	property := &models.Property{
		Title:     "Test Villa",
		Type:      models.PropertyTypeHouse,
		Price:     100000,
		Location:  "Lagos",
		Status:    models.PropertyStatusAvailable,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, models.UserRoleClient)

	found, err := repo.FindByEmail(db, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(db, "missing@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestUserRepository_CreateDuplicateEmail - дубликат ловится на индексе
// базы, а не предварительным SELECT
func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository()

	existing := seedUser(t, db, models.UserRoleClient)

	err := repo.Create(db, &models.User{
		Email:        existing.Email,
		PasswordHash: "otherhash",
		FirstName:    "Second",
		LastName:     "User",
		Role:         models.UserRoleClient,
		IsActive:     true,
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", existing.Email).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindClients(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	for i := 0; i < 5; i++ {
		user := seedUser(t, db, models.UserRoleClient)
		user.FirstName = fmt.Sprintf("Client%d", i)
		require.NoError(t, db.Save(user).Error)
	}

	users, total, err := repo.FindClients(db, UserFilter{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 3)

	// Админ в клиентский список не попадает
	for _, u := range users {
		assert.NotEqual(t, admin.ID, u.ID)
	}

	// Поиск по имени
	users, total, err = repo.FindClients(db, UserFilter{Search: "Client3", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Client3", users[0].FirstName)
}

func TestUserRepository_FindFirstAdmin(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository()

	_, err := repo.FindFirstAdmin(db)
	assert.ErrorIs(t, err, ErrUserNotFound)

	first := seedUser(t, db, models.UserRoleAdmin)
	seedUser(t, db, models.UserRoleAdmin)

	admin, err := repo.FindFirstAdmin(db)
	require.NoError(t, err)
	assert.Equal(t, first.ID, admin.ID)
}

func TestSavedPropertyRepository_SaveAndDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavedPropertyRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	client := seedUser(t, db, models.UserRoleClient)
	property := seedProperty(t, db, admin.ID)

	require.NoError(t, repo.Save(db, client.ID, property.ID))
	assert.ErrorIs(t, repo.Save(db, client.ID, property.ID), ErrAlreadySaved)

	count, err := repo.CountByUser(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Unsave(db, client.ID, property.ID))
	count, err = repo.CountByUser(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSavedPropertyRepository_ListSkipsInactive(t *testing.T) {
	db := openTestDB(t)
	repo := NewSavedPropertyRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	client := seedUser(t, db, models.UserRoleClient)

	active := seedProperty(t, db, admin.ID)
	inactive := seedProperty(t, db, admin.ID)

	require.NoError(t, repo.Save(db, client.ID, active.ID))
	require.NoError(t, repo.Save(db, client.ID, inactive.ID))

	require.NoError(t, db.Model(&models.Property{}).
		Where("id = ?", inactive.ID).Update("is_active", false).Error)

	properties, err := repo.ListByUser(db, client.ID)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, active.ID, properties[0].ID)
}

func TestBookingRepository_CountActiveByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	client := seedUser(t, db, models.UserRoleClient)
	property := seedProperty(t, db, admin.ID)

	statuses := []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	}
	for _, status := range statuses {
		require.NoError(t, repo.Create(db, &models.Booking{
			UserID:     client.ID,
			PropertyID: property.ID,
			CheckIn:    time.Now().Add(24 * time.Hour),
			CheckOut:   time.Now().Add(48 * time.Hour),
			Guests:     1,
			Status:     status,
		}))
	}

	count, err := repo.CountActiveByUser(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestBookingRepository_ExpirePending(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	client := seedUser(t, db, models.UserRoleClient)
	property := seedProperty(t, db, admin.ID)

	stale := &models.Booking{
		UserID:     client.ID,
		PropertyID: property.ID,
		CheckIn:    time.Now().Add(-48 * time.Hour),
		CheckOut:   time.Now().Add(-24 * time.Hour),
		Status:     models.BookingStatusPending,
	}
	require.NoError(t, repo.Create(db, stale))

	upcoming := &models.Booking{
		UserID:     client.ID,
		PropertyID: property.ID,
		CheckIn:    time.Now().Add(24 * time.Hour),
		CheckOut:   time.Now().Add(48 * time.Hour),
		Status:     models.BookingStatusPending,
	}
	require.NoError(t, repo.Create(db, upcoming))

	expired, err := repo.ExpirePending(db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, "id = ?", stale.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, reloaded.Status)

	require.NoError(t, db.First(&reloaded, "id = ?", upcoming.ID).Error)
	assert.Equal(t, models.BookingStatusPending, reloaded.Status)
}

func TestMessageRepository_MarkReadScopedToRecipient(t *testing.T) {
	db := openTestDB(t)
	repo := NewMessageRepository()

	admin := seedUser(t, db, models.UserRoleAdmin)
	client := seedUser(t, db, models.UserRoleClient)
	other := seedUser(t, db, models.UserRoleClient)

	message := &models.Message{
		SenderID:    admin.ID,
		RecipientID: &client.ID,
		SenderRole:  models.UserRoleAdmin,
		Body:        "reply",
	}
	require.NoError(t, repo.Create(db, message))

	// Чужой пользователь пометить не может
	assert.ErrorIs(t, repo.MarkRead(db, message.ID, other.ID), ErrMessageNotFound)

	require.NoError(t, repo.MarkRead(db, message.ID, client.ID))

	// Повторная пометка уже прочитанного
	assert.ErrorIs(t, repo.MarkRead(db, message.ID, client.ID), ErrMessageNotFound)

	count, err := repo.CountUnreadForUser(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
