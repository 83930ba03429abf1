package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/models"
)

var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrDuplicateEmail = errors.New("admin with this email already exists")
)

// AdminRepository owns all queries against the admins table.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// FindByEmail looks up an admin by exact email match.
func (r *AdminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Create stores a new admin with an already-computed password hash.
// Email uniqueness is enforced here and backed by the unique column.
func (r *AdminRepository) Create(email, passwordHash string) (*models.Admin, error) {
	var count int64
	if err := r.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	admin := models.Admin{Email: email, PasswordHash: passwordHash}
	if err := r.DB.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
