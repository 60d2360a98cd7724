package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-backend/models"
)

// SessionClaim is what a successful login stores in the session cookie.
type SessionClaim struct {
	UserID   uint
	Username string
	Role     string
}

type RegisterInput struct {
	Username   string
	Password   string
	Name       string
	Email      string
	Phone      string
	Guardian   string
	Department string
	Batch      string
	Semester   string
}

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Hash of an empty password, compared against when the username is
// unknown so both failure paths take a bcrypt verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *AuthService) Authenticate(username, password string) (SessionClaim, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return SessionClaim{}, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return SessionClaim{}, ErrInvalidCredentials
		}
		return SessionClaim{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return SessionClaim{}, ErrInvalidCredentials
	}

	return SessionClaim{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// RegisterStudent creates the User and its Student profile as one
// transaction, so a duplicate email cannot leave an orphan user behind.
func (s *AuthService) RegisterStudent(input RegisterInput) error {
	username := strings.TrimSpace(input.Username)
	name := strings.TrimSpace(input.Name)
	if username == "" || input.Password == "" || name == "" {
		return ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         models.RoleStudent,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		student := models.Student{
			UserID:     &user.ID,
			Name:       name,
			Email:      optionalString(input.Email),
			Phone:      strings.TrimSpace(input.Phone),
			Guardian:   strings.TrimSpace(input.Guardian),
			Department: strings.TrimSpace(input.Department),
			Batch:      strings.TrimSpace(input.Batch),
			Semester:   strings.TrimSpace(input.Semester),
		}
		return tx.Create(&student).Error
	})
	if isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// CreateUser is the admin path for adding accounts with any role.
func (s *AuthService) CreateUser(username, password, role string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrValidation
	}
	if role != models.RoleAdmin && role != models.RoleStudent {
		return ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
