package dto

// PropertyQuery - query-параметры публичного листинга.
// Нечисловые цены отбрасываются еще на биндинге, до построения запроса.
type PropertyQuery struct {
	Type     string   `form:"type" validate:"omitempty,is-property-type"`
	Status   string   `form:"status" validate:"omitempty,is-property-status"`
	MinPrice *float64 `form:"minPrice" validate:"omitempty,min=0"`
	MaxPrice *float64 `form:"maxPrice" validate:"omitempty,min=0"`
	Location string   `form:"location"`
	Page     int      `form:"page" validate:"omitempty,min=1"`
	Limit    int      `form:"limit" validate:"omitempty,min=1,max=100"`
}

// CreatePropertyRequest - создание объекта админом
type CreatePropertyRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required" validate:"is-property-type"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Location    string   `json:"location" binding:"required"`
	Beds        int      `json:"beds" binding:"omitempty,min=0"`
	Baths       int      `json:"baths" binding:"omitempty,min=0"`
	Sqft        int      `json:"sqft" binding:"omitempty,min=0"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status" validate:"omitempty,is-property-status"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdatePropertyRequest - частичное обновление: nil-поля не трогаются
type UpdatePropertyRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *string   `json:"type,omitempty" validate:"omitempty,is-property-type"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Location    *string   `json:"location,omitempty"`
	Beds        *int      `json:"beds,omitempty"`
	Baths       *int      `json:"baths,omitempty"`
	Sqft        *int      `json:"sqft,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,is-property-status"`
}
