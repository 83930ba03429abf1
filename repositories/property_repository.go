package repositories

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/utils"
)

var (
	ErrPropertyNotFound      = errors.New("property not found")
	ErrDuplicateSlug         = errors.New("a property with this title already exists")
	ErrTitleCategoryRequired = errors.New("title and category are required")
	ErrInvalidToggleField    = errors.New("invalid field, must be is_active or is_top_selling")
)

// Defaults applied when a create request leaves the fields unset.
const (
	defaultCapacity     = 4
	defaultRating       = 4.5
	defaultCheckInTime  = "2:00 PM"
	defaultCheckOutTime = "11:00 AM"
)

// PropertyRepository owns all queries against the properties and
// property_images tables, including slug derivation and uniqueness.
type PropertyRepository struct {
	DB *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

// CreatePropertyInput carries the fields accepted on create. Pointer
// fields distinguish "not provided" (default applies) from an explicit
// zero value.
type CreatePropertyInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Location     string   `json:"location"`
	Price        string   `json:"price"`
	PriceNote    string   `json:"price_note"`
	Capacity     *int     `json:"capacity"`
	MaxCapacity  *int     `json:"max_capacity"`
	Rating       *float64 `json:"rating"`
	IsTopSelling bool     `json:"is_top_selling"`
	IsActive     *bool    `json:"is_active"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time"`
	Contact      string   `json:"contact"`
	Address      string   `json:"address"`
	Amenities    []string `json:"amenities"`
	Highlights   []string `json:"highlights"`
	Activities   []string `json:"activities"`
	Policies     []string `json:"policies"`
	Images       []string `json:"images"`
}

// UpdatePropertyInput carries a partial update. A nil field leaves the
// stored value untouched; a non-nil field is written as given, booleans
// included. Images is special: nil leaves the image rows alone, non-nil
// (even empty) replaces the whole list.
type UpdatePropertyInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Location     *string   `json:"location"`
	Price        *string   `json:"price"`
	PriceNote    *string   `json:"price_note"`
	Capacity     *int      `json:"capacity"`
	MaxCapacity  *int      `json:"max_capacity"`
	Rating       *float64  `json:"rating"`
	IsTopSelling *bool     `json:"is_top_selling"`
	IsActive     *bool     `json:"is_active"`
	CheckInTime  *string   `json:"check_in_time"`
	CheckOutTime *string   `json:"check_out_time"`
	Contact      *string   `json:"contact"`
	Address      *string   `json:"address"`
	Amenities    *[]string `json:"amenities"`
	Highlights   *[]string `json:"highlights"`
	Activities   *[]string `json:"activities"`
	Policies     *[]string `json:"policies"`
	Images       *[]string `json:"images"`
}

// orderedImages preloads the image list sorted by display order.
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC")
}

// ListAll returns every property with its ordered image list, newest first.
func (r *PropertyRepository) ListAll() ([]models.Property, error) {
	var properties []models.Property
	err := r.DB.Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	normalizeImages(properties)
	return properties, nil
}

// ListPublic returns only active properties, top-selling ones first,
// then newest first.
func (r *PropertyRepository) ListPublic() ([]models.Property, error) {
	var properties []models.Property
	err := r.DB.Preload("Images", orderedImages).
		Where("is_active = ?", true).
		Order("is_top_selling DESC, created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	normalizeImages(properties)
	return properties, nil
}

// GetByID returns a single property with its ordered image list.
func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.DB.Preload("Images", orderedImages).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if property.Images == nil {
		property.Images = []models.PropertyImage{}
	}
	return &property, nil
}

// Create stores a new property and its image rows. The slug is derived
// from the title and must be unique across all properties.
func (r *PropertyRepository) Create(input *CreatePropertyInput) (*models.Property, error) {
	if input.Title == "" || input.Category == "" {
		return nil, ErrTitleCategoryRequired
	}

	slug := utils.Slugify(input.Title)
	taken, err := r.slugTaken(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateSlug
	}

	property := models.Property{
		Title:        input.Title,
		Slug:         slug,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		Price:        input.Price,
		PriceNote:    input.PriceNote,
		Capacity:     defaultCapacity,
		MaxCapacity:  input.MaxCapacity,
		Rating:       defaultRating,
		IsTopSelling: input.IsTopSelling,
		IsActive:     true,
		CheckInTime:  defaultCheckInTime,
		CheckOutTime: defaultCheckOutTime,
		Contact:      input.Contact,
		Address:      input.Address,
		Amenities:    emptyIfNil(input.Amenities),
		Highlights:   emptyIfNil(input.Highlights),
		Activities:   emptyIfNil(input.Activities),
		Policies:     emptyIfNil(input.Policies),
	}
	if input.Capacity != nil {
		property.Capacity = *input.Capacity
	}
	if input.Rating != nil {
		property.Rating = *input.Rating
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}
	if input.CheckInTime != "" {
		property.CheckInTime = input.CheckInTime
	}
	if input.CheckOutTime != "" {
		property.CheckOutTime = input.CheckOutTime
	}

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		return insertImages(tx, property.ID, input.Images)
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Update applies a partial update. Title changes recompute the slug and
// revalidate uniqueness excluding the record itself; a provided images
// list replaces the existing rows wholesale.
func (r *PropertyRepository) Update(id uint, input *UpdatePropertyInput) error {
	var existing models.Property
	if err := r.DB.Select("id", "slug").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		newSlug := utils.Slugify(*input.Title)
		if newSlug != existing.Slug {
			taken, err := r.slugTaken(newSlug, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateSlug
			}
		}
		updates["title"] = *input.Title
		updates["slug"] = newSlug
	}
	setString(updates, "description", input.Description)
	setString(updates, "category", input.Category)
	setString(updates, "location", input.Location)
	setString(updates, "price", input.Price)
	setString(updates, "price_note", input.PriceNote)
	setString(updates, "check_in_time", input.CheckInTime)
	setString(updates, "check_out_time", input.CheckOutTime)
	setString(updates, "contact", input.Contact)
	setString(updates, "address", input.Address)
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.MaxCapacity != nil {
		updates["max_capacity"] = *input.MaxCapacity
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.IsTopSelling != nil {
		updates["is_top_selling"] = *input.IsTopSelling
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	setList(updates, "amenities", input.Amenities)
	setList(updates, "highlights", input.Highlights)
	setList(updates, "activities", input.Activities)
	setList(updates, "policies", input.Policies)

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Property{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if input.Images != nil {
			if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
			return insertImages(tx, id, *input.Images)
		}
		return nil
	})
}

// Delete removes the property row and every owned image row. Image
// cleanup is the repository's job, not a database cascade.
func (r *PropertyRepository) Delete(id uint) error {
	var existing models.Property
	if err := r.DB.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
}

// Toggle sets one of the two boolean flags. The field name is validated
// before any query runs; nothing else is settable through this path.
func (r *PropertyRepository) Toggle(id uint, field string, value bool) error {
	if field != "is_active" && field != "is_top_selling" {
		return ErrInvalidToggleField
	}

	var existing models.Property
	if err := r.DB.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}

	return r.DB.Model(&models.Property{}).Where("id = ?", id).
		Update(field, value).Error
}

func (r *PropertyRepository) slugTaken(slug string, excludeID uint) (bool, error) {
	query := r.DB.Model(&models.Property{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// insertImages writes image rows with display order equal to position.
func insertImages(tx *gorm.DB, propertyID uint, urls []string) error {
	for i, url := range urls {
		image := models.PropertyImage{
			PropertyID:   propertyID,
			ImageURL:     url,
			DisplayOrder: i,
		}
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
	}
	return nil
}

// normalizeImages keeps the JSON contract at [] instead of null for
// properties without images.
func normalizeImages(properties []models.Property) {
	for i := range properties {
		if properties[i].Images == nil {
			properties[i].Images = []models.PropertyImage{}
		}
	}
}

func emptyIfNil(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.NewJSONSlice([]string{})
	}
	return datatypes.NewJSONSlice(values)
}

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func setList(updates map[string]interface{}, column string, values *[]string) {
	if values != nil {
		updates[column] = datatypes.NewJSONSlice(*values)
	}
}
