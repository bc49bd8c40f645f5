package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID       string         `gorm:"primaryKey;column:user_id;size:36" json:"user_id"`
	Username     string         `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	Email        string         `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Avatar       *string        `gorm:"column:avatar;size:512" json:"avatar,omitempty"`
	Bio          string         `gorm:"column:bio;type:text" json:"bio"`
	Status       string         `gorm:"column:status;type:enum('active','banned','deleted');default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
