package models

import (
	"time"

	"gorm.io/datatypes"
)

type Property struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Type        PropertyType   `gorm:"type:varchar(20);not null" json:"type"`
	Price       float64        `gorm:"not null" json:"price"`
	// Location - свободный текст, по нему работает подстрочный поиск
	Location  string         `gorm:"not null;index" json:"location"`
	Beds      int            `json:"beds"`
	Baths     int            `json:"baths"`
	Sqft      int            `json:"sqft"`
	Amenities datatypes.JSON `json:"amenities"`
	Status    PropertyStatus `gorm:"type:varchar(20);default:'available'" json:"status"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedBy string         `gorm:"type:uuid" json:"created_by"`

	// Картинки - неупорядоченное множество внешних URL
	Images []PropertyImage `gorm:"foreignKey:PropertyID" json:"images"`
}

type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"-"`
	ImageURL   string `gorm:"not null" json:"image_url"`
}

// SavedProperty - связь many-to-many "пользователь сохранил объект"
type SavedProperty struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_property" json:"user_id"`
	PropertyID string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_property" json:"property_id"`
	SavedAt    time.Time `gorm:"autoCreateTime" json:"saved_at"`
}
