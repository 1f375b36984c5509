package services

import (
	"database/sql"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/skisyula/jobify-be/internal/apperr"
	"github.com/skisyula/jobify-be/internal/auth"
	"github.com/skisyula/jobify-be/internal/models"
)

// Profile fields fall back to these when registration omits them.
const (
	DefaultLastName = "Kisyula"
	DefaultLocation = "Nairobi, Kenya"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(name, email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	GetUserByEmail(email string, withHash bool) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
	UpdateUser(id string, upd models.UserUpdate) (models.User, error)
}

// UserService is the credential store: it owns user records and the hashing
// and comparison of their passwords.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser validates and creates a new user, hashing their password. A
// duplicate email surfaces as a conflict error regardless of whether another
// request won the race: the unique index on users.email is the arbiter, not
// an existence pre-check.
func (s *UserService) CreateUser(name, email, password string) (models.User, error) {
	if err := validateName(name); err != nil {
		return models.User{}, err
	}
	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if len(password) < 6 {
		return models.User{}, apperr.Validation("Password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		LastName:     DefaultLastName,
		Location:     DefaultLocation,
	}

	_, err = s.db.Exec(
		"INSERT INTO users(id, name, email, password_hash, last_name, location) VALUES(?, ?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.LastName, user.Location,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apperr.Conflict("Email already in use")
		}
		return models.User{}, err
	}

	// Re-read so created_at comes back populated, without the hash.
	return s.GetUserByID(user.ID)
}

// GetUserByID retrieves a single user by their ID, without the password hash.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, last_name, location, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.LastName, &user.Location, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their email. The password hash
// is excluded unless the caller asks for it; only authentication needs it.
func (s *UserService) GetUserByEmail(email string, withHash bool) (models.User, error) {
	var user models.User
	if withHash {
		row := s.db.QueryRow("SELECT id, name, email, password_hash, last_name, location, created_at FROM users WHERE email = ?", email)
		err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.LastName, &user.Location, &user.CreatedAt)
		if err != nil {
			if err == sql.ErrNoRows {
				return models.User{}, apperr.NotFound("User not found")
			}
			return models.User{}, err
		}
		return user, nil
	}

	row := s.db.QueryRow("SELECT id, name, email, last_name, location, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.LastName, &user.Location, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// AuthenticateUser verifies a user's credentials. An unknown email and a
// wrong password fail identically so the response cannot be used to
// enumerate accounts.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	user, err := s.GetUserByEmail(email, true)
	if err != nil {
		return models.User{}, apperr.Auth("Invalid Credentials")
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, apperr.Auth("Invalid Credentials")
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// UpdateUser applies a profile update. The password is rehashed only when
// the update explicitly carries one; profile-only updates leave the stored
// hash byte-for-byte untouched.
func (s *UserService) UpdateUser(id string, upd models.UserUpdate) (models.User, error) {
	if err := validateName(upd.Name); err != nil {
		return models.User{}, err
	}
	if err := validateEmail(upd.Email); err != nil {
		return models.User{}, err
	}
	if len(upd.LastName) > 20 || len(upd.Location) > 20 {
		return models.User{}, apperr.Validation("Last name and location must be at most 20 characters")
	}

	if _, err := s.GetUserByID(id); err != nil {
		return models.User{}, err
	}

	if upd.Password != nil {
		if len(*upd.Password) < 6 {
			return models.User{}, apperr.Validation("Password must be at least 6 characters")
		}
		hash, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return models.User{}, err
		}
		_, err = s.db.Exec(
			"UPDATE users SET name = ?, email = ?, last_name = ?, location = ?, password_hash = ? WHERE id = ?",
			strings.TrimSpace(upd.Name), upd.Email, upd.LastName, upd.Location, hash, id,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return models.User{}, apperr.Conflict("Email already in use")
			}
			return models.User{}, err
		}
		return s.GetUserByID(id)
	}

	_, err := s.db.Exec(
		"UPDATE users SET name = ?, email = ?, last_name = ?, location = ? WHERE id = ?",
		strings.TrimSpace(upd.Name), upd.Email, upd.LastName, upd.Location, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apperr.Conflict("Email already in use")
		}
		return models.User{}, err
	}
	return s.GetUserByID(id)
}

func validateName(name string) error {
	n := len(strings.TrimSpace(name))
	if n < 3 || n > 20 {
		return apperr.Validation("Name must be between 3 and 20 characters")
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperr.Validation("Please provide a valid email")
	}
	return nil
}

// isUniqueViolation reports whether err is the database rejecting a
// duplicate value on a unique column.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
