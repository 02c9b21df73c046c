package domain

import "time"

// User is an identity referenced by issues and comments.
type User struct {
	ID        int64
	Email     string
	Name      *string
	Image     *string
	CreatedAt time.Time
}

// DisplayName returns the name when set, otherwise the email.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}
