package domain

import "time"

// Default profile values applied when registration omits optional fields.
const (
	DefaultUserName   = "Jacques-Yves Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User is the domain model for registered members.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
