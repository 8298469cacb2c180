package services

import (
	"errors"
	"fmt"

	"github.com/freshmart/freshmart-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// VerifyCredentials looks the user up by exact email match and checks the
// password against the stored hash.
func VerifyCredentials(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	if err := ComparePasswords(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// RegisterUser creates a user with a freshly hashed password. The
// plaintext is never persisted or logged.
func RegisterUser(db *gorm.DB, name, email, password string) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("email check: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Name: name, Email: email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}
