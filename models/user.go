package models

// Role is a user's access level
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account in the user directory.
// PasswordHash is a bcrypt hash and never leaves the service in responses.
type User struct {
	ID                 string  `json:"id"`
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	PasswordHash       string  `json:"-"`
	Role               Role    `json:"role"`
	Phone              *string `json:"phone,omitempty"`
	Language           *string `json:"language,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	EmailNotifications *bool   `json:"emailNotifications,omitempty"`
	TwoFactor          *bool   `json:"twoFactor,omitempty"`
	ProfileImage       *string `json:"profileImage,omitempty"`
}

// Owner returns the snapshot stored on projects created by this user
func (u User) Owner() ProjectOwner {
	return ProjectOwner{ID: u.ID, Name: u.Name, Email: u.Email}
}

// IsAdmin reports whether the user has the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Clone returns a copy of the user that shares no pointers with the original
func (u User) Clone() User {
	out := u
	out.Phone = cloneString(u.Phone)
	out.Language = cloneString(u.Language)
	out.Timezone = cloneString(u.Timezone)
	out.ProfileImage = cloneString(u.ProfileImage)
	out.EmailNotifications = cloneBool(u.EmailNotifications)
	out.TwoFactor = cloneBool(u.TwoFactor)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
