package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	mailer *utils.Mailer // optional; nil disables welcome mail
}

func NewUserService(db *gorm.DB, mailer *utils.Mailer) *UserService {
	return &UserService{db: db, mailer: mailer}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return nil, err
	}
	return &user, nil
}

// Create rejects duplicate usernames and emails before touching the row, so a
// constraint violation never reaches the database on the common path.
func (s *UserService) Create(user *models.User, plainPassword string) error {
	if err := s.checkUnique(user.Username, user.Email, 0); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.Enabled = true

	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(context.Background(), user.Email, user.Username); err != nil {
			log.Printf("welcome email to %s failed: %v", user.Email, err)
		}
	}
	return nil
}

func (s *UserService) Update(user *models.User) error {
	existing, err := s.Get(user.ID)
	if err != nil {
		return err
	}
	if user.Username != existing.Username || user.Email != existing.Email {
		if err := s.checkUnique(user.Username, user.Email, user.ID); err != nil {
			return err
		}
	}
	// Password changes go through ChangePassword, not Update.
	user.Password = existing.Password
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *UserService) ChangePassword(id uint, plainPassword string) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("password", hashed).Error
}

// Delete refuses to remove ADMIN accounts.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return fmt.Errorf("%w: admin accounts cannot be deleted", ErrConflict)
	}
	return s.db.Delete(user).Error
}

// SetEnabled toggles a user account. ADMIN accounts cannot be disabled.
func (s *UserService) SetEnabled(id uint, enabled bool) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.IsAdmin() && !enabled {
		return fmt.Errorf("%w: admin accounts cannot be disabled", ErrConflict)
	}
	return s.db.Model(user).Update("enabled", enabled).Error
}

func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ? AND enabled = ?", username, true).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: user not found or disabled", ErrNotFound)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}
	return &user, nil
}

func (s *UserService) checkUnique(username, email string, excludeID uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: username %q already taken", ErrConflict, username)
	}
	if err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: email %q already registered", ErrConflict, email)
	}
	return nil
}
