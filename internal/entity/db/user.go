package db

import "time"

const (
	UserRoleReader = "reader"
	UserRoleAuthor = "author"
	UserRoleAdmin  = "admin"
)

// User 表示持久化的用户账户。
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         string `gorm:"column:role;type:varchar(32);index;not null" json:"role"`
	Bio          string `gorm:"column:bio;type:text" json:"bio"`
	Avatar       string `gorm:"column:avatar;type:varchar(1024)" json:"avatar"`

	IsVerified        bool       `gorm:"column:is_verified;not null" json:"is_verified"`
	VerificationToken *string    `gorm:"column:verification_token;type:varchar(128)" json:"-"`
	VerifiedAt        *time.Time `gorm:"column:verified_at" json:"verified_at"`

	ResetPasswordToken  *string    `gorm:"column:reset_password_token;type:varchar(128);index" json:"-"`
	ResetPasswordExpire *time.Time `gorm:"column:reset_password_expire" json:"-"`
	PasswordChangedAt   *time.Time `gorm:"column:password_changed_at" json:"-"`

	IsBanned bool `gorm:"column:is_banned;not null" json:"is_banned"`
	Version  uint `gorm:"column:version;not null" json:"-"`
}

// TableName 指定表名。
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// PromoteToAuthor moves a reader to the author role. Authors and admins keep
// their role. It reports whether the role changed.
func (u *User) PromoteToAuthor() bool {
	if u == nil || u.Role != UserRoleReader {
		return false
	}
	u.Role = UserRoleAuthor
	return true
}

// PromoteToAdmin grants the admin role. It reports whether the role changed.
func (u *User) PromoteToAdmin() bool {
	if u == nil || u.Role == UserRoleAdmin {
		return false
	}
	u.Role = UserRoleAdmin
	return true
}

// SessionRevoked reports whether a session issued at issuedAt predates the
// last password change. Comparison is at second granularity, matching the
// resolution of token timestamps.
func (u *User) SessionRevoked(issuedAt time.Time) bool {
	if u == nil || u.PasswordChangedAt == nil {
		return false
	}
	return issuedAt.Unix() < u.PasswordChangedAt.Unix()
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case UserRoleReader, UserRoleAuthor, UserRoleAdmin:
		return true
	default:
		return false
	}
}
