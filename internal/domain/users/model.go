package users

import "time"

type User struct {
	ID           string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string  `json:"name"`
	Lastname     string  `json:"lastname"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `json:"role"`
	IsVerified   bool    `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is what canvas attribution shows for this user.
func (u User) DisplayName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}
