package users

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/gymtracker/pkg"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrWrongCredentials   = errors.New("wrong username or password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	username := strings.TrimSpace(c.Username)
	if l := utf8.RuneCountInString(username); l < minUsernameLength || l > maxUsernameLength {
		return errors.Join(ErrInvalidCredentials, errors.New("username must be between 3 and 50 characters"))
	}
	if utf8.RuneCountInString(c.Password) < minPasswordLength {
		return errors.Join(ErrInvalidCredentials, errors.New("password must be at least 6 characters"))
	}
	if len(c.Password) > pkg.MaxPasswordBytes {
		return errors.Join(ErrInvalidCredentials, errors.New("password must be at most 72 bytes"))
	}
	return nil
}
