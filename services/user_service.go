package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"goaltrack-service/models"
	"goaltrack-service/repository"
	"goaltrack-service/validation"
)

// bcryptCost matches the cost used across the service for new hashes.
const bcryptCost = 12

// UserService enforces registration, authentication, and profile rules.
type UserService struct {
	users *repository.UserRepo
}

func NewUserService(users *repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// Register creates an account from validated input. The email is
// stored trimmed and lower-cased so uniqueness is case-insensitive;
// the password is bcrypt-hashed and the plaintext is never persisted.
func (s *UserService) Register(req models.RegisterRequest) (*models.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normalizeEmail(req.Email)

	if fullName == "" || email == "" || req.Password == "" {
		return nil, validationErr("All fields are required")
	}
	if !validation.ValidEmail(email) {
		return nil, validationErr("Invalid email format")
	}
	if req.Password != req.ConfirmPassword {
		return nil, validationErr("Passwords do not match")
	}
	if msg := validation.ValidatePassword(req.Password); msg != "" {
		return nil, validationErr(msg)
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, validationErr("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, internalErr("Registration failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, internalErr("Registration failed", err)
	}

	user := &models.User{FullName: fullName, Email: email, Password: string(hash)}
	if err := s.users.Insert(user); err != nil {
		// Covers the unique-email race between the check and the insert.
		return nil, internalErr("Registration failed", err)
	}
	return user, nil
}

// Authenticate verifies credentials. The failure message never reveals
// whether the email exists.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, validationErr("Email and password are required")
	}

	user, err := s.users.FindByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notAuthorizedErr("Invalid email or password")
	}
	if err != nil {
		return nil, internalErr("Login failed", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, notAuthorizedErr("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("User not found")
	}
	if err != nil {
		return nil, internalErr("Error loading user", err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID int, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return validationErr("Name cannot be empty")
	}
	err := s.users.UpdateName(userID, fullName)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundErr("User not found")
	}
	if err != nil {
		return internalErr("Error updating profile", err)
	}
	return nil
}

// ChangePassword verifies the current password against the stored hash
// before accepting a new one. The stored hash is untouched on any
// failure path.
func (s *UserService) ChangePassword(userID int, currentPassword, newPassword, confirmPassword string) error {
	user, err := s.users.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundErr("User not found")
	}
	if err != nil {
		return internalErr("Error changing password", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return validationErr("Current password is incorrect")
	}
	if newPassword != confirmPassword {
		return validationErr("New passwords do not match")
	}
	if msg := validation.ValidatePassword(newPassword); msg != "" {
		return validationErr(msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return internalErr("Error changing password", err)
	}
	if err := s.users.UpdatePassword(userID, string(hash)); err != nil {
		return internalErr("Error changing password", err)
	}
	return nil
}

// DeleteAccount removes the user and cascades to all owned tasks and
// goals in one transaction.
func (s *UserService) DeleteAccount(userID int) error {
	err := s.users.Delete(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundErr("User not found")
	}
	if err != nil {
		return internalErr("Error deleting account", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
