package model

import "time"

// User roles.
const (
	RoleUser    = "user"
	RolePremium = "premium"
	RoleAdmin   = "admin"
)

// Genders accepted on profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents a registered client with optional birth data used to
// personalize readings.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:30;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"size:20;default:'user'"`
	FirstName    string     `json:"first_name,omitempty" gorm:"size:50"`
	LastName     string     `json:"last_name,omitempty" gorm:"size:50"`
	Gender       string     `json:"gender,omitempty" gorm:"size:10"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	BirthPlace   string     `json:"birth_place,omitempty" gorm:"size:100"`
	BirthTime    string     `json:"birth_time,omitempty" gorm:"size:5"` // HH:MM, empty when unknown
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
