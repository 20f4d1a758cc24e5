package users

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      string    `gorm:"size:50;not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "app_users.users" }

// PublicUser is the outward-facing projection of a user record.
// The password hash never appears here.
type PublicUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// Updates holds the validated, normalized fields of an update request.
// Nil pointers mean "leave unchanged".
type Updates struct {
	Name  *string
	Email *string
	Role  *string
}

func (u Updates) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil
}

func (u Updates) HasRoleChange() bool { return u.Role != nil }

// WithoutRole strips the role field. Non-admin requesters get their updates
// sanitized with this even though the policy already denies role changes.
func (u Updates) WithoutRole() Updates {
	u.Role = nil
	return u
}
