package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// User represents an account registered with the users service.
// The password hash never leaves the service boundary.
type User struct {
	// ID is the store-assigned identifier.
	ID int64 `json:"id"`

	// Login is the unique, immutable identity of the user. Its external
	// JSON name is configurable ("login" or "username").
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Email is unique across all users.
	Email string `json:"email"`

	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	BirthDate   *Date   `json:"birth_date"`
	PhoneNumber *string `json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser is the registration payload.
type NewUser struct {
	Login    string `json:"login" validate:"required,alphanum,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

// Credentials is the login payload.
type Credentials struct {
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// UserUpdate carries a partial profile update. A nil field is left as is.
type UserUpdate struct {
	FirstName   *string `json:"first_name" validate:"omitnil,max=100"`
	LastName    *string `json:"last_name" validate:"omitnil,max=100"`
	BirthDate   *Date   `json:"birth_date"`
	Email       *string `json:"email" validate:"omitnil,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,number,max=32"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.BirthDate == nil &&
		u.Email == nil && u.PhoneNumber == nil
}

// DateLayout is the wire and storage format of [Date].
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component, encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate returns the Date of the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns of postgres and sqlite.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
