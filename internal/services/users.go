package services

import (
	"errors"

	"github.com/hartharney/EXpeditious-Logistics/internal/models"
	"github.com/hartharney/EXpeditious-Logistics/pkg/utils"

	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("email already exists")

type CreateUserDTO struct {
	Username  string
	Email     string
	Password  string
	IPAddress string // For Audit Log
}

type UserService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewUserService(db *gorm.DB, auditService *AuditService) *UserService {
	return &UserService{
		db:           db,
		auditService: auditService,
	}
}

// Create registers a new user. The password is stored bcrypt-hashed.
func (s *UserService) Create(dto CreateUserDTO) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(dto.Password)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		Username: dto.Username,
		Email:    dto.Email,
		Password: hashedPassword,
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.auditService.LogAction(&newUser.ID, "CREATE_USER", newUser.Email, nil, dto.IPAddress)

	return &newUser, nil
}

// List returns all user rows.
func (s *UserService) List() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given surrogate key, or
// gorm.ErrRecordNotFound if none exists.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
