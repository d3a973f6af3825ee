package models

type User struct {
	BaseModel
	// Email хранится в нижнем регистре, нормализация - на слое сервиса
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `gorm:"not null" json:"first_name"`
	LastName     string   `gorm:"not null" json:"last_name"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`

	// Relations
	SavedProperties []SavedProperty `gorm:"foreignKey:UserID" json:"-"`
	Bookings        []Booking       `gorm:"foreignKey:UserID" json:"-"`
}
