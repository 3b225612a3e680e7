package models

import "time"

// City is reference data for places
type City struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex"`
	Province  string    `json:"province" gorm:"size:100"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is reference data for places
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Place is a location media can be attached to
type Place struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255"`
	Description string    `json:"description"`
	CategoryID  *uint     `json:"category_id,omitempty"`
	CityID      *uint     `json:"city_id,omitempty"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	City        *City     `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedByID uint      `json:"created_by" gorm:"index"`
	IsDeleted   bool      `json:"-" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePlaceRequest defines the request body for creating a place
type CreatePlaceRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	CityID      *uint   `json:"city_id,omitempty"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}
