package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property is a rental listing. The four list fields are stored as JSON
// array columns; the serialized form never leaves the repository layer.
type Property struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Slug        string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50;index" json:"category"` // camping, cottage, villa
	Location    string `gorm:"size:255" json:"location"`

	Price     string `gorm:"size:100" json:"price"`
	PriceNote string `gorm:"size:255" json:"price_note"`

	Capacity    int     `gorm:"not null;default:4" json:"capacity"`
	MaxCapacity *int    `json:"max_capacity"`
	Rating      float64 `gorm:"not null;default:4.5" json:"rating"`

	IsTopSelling bool `gorm:"not null;default:false" json:"is_top_selling"`
	IsActive     bool `gorm:"not null;default:true" json:"is_active"`

	CheckInTime  string `gorm:"size:50" json:"check_in_time"`
	CheckOutTime string `gorm:"size:50" json:"check_out_time"`
	Contact      string `gorm:"size:255" json:"contact"`
	Address      string `gorm:"type:text" json:"address"`

	Amenities  datatypes.JSONSlice[string] `json:"amenities"`
	Highlights datatypes.JSONSlice[string] `json:"highlights"`
	Activities datatypes.JSONSlice[string] `json:"activities"`
	Policies   datatypes.JSONSlice[string] `json:"policies"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owned exclusively by the property; replaced wholesale on update.
	Images []PropertyImage `gorm:"foreignKey:PropertyID" json:"images"`
}

// PropertyImage is one entry of a property's ordered image list.
// DisplayOrder is contiguous from 0 in the order supplied by the caller.
type PropertyImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PropertyID   uint   `gorm:"not null;index" json:"property_id"`
	ImageURL     string `gorm:"type:text;not null" json:"image_url"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}
