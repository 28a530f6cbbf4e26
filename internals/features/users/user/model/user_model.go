package model

import (
	"time"
)

// UserModel adalah akun petugas/admin yang boleh menulis data prestasi.
type UserModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserName  string    `gorm:"type:varchar(50);not null;column:user_name" json:"user_name"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password  string    `gorm:"type:varchar(250);not null" json:"-"`
	GoogleID  *string   `gorm:"type:varchar(64);uniqueIndex;column:google_id" json:"-"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
