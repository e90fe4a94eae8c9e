// Package domain defines the persistent data model of the question bank.
package domain

import (
	"crypto/md5"
	"fmt"
	"time"
)

// User is a registered account. Password holds the bcrypt hash, never
// the plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	// Binary collation keeps username matching and uniqueness
	// case-sensitive on MySQL.
	Username  string    `gorm:"type:varchar(191) COLLATE utf8mb4_bin;uniqueIndex:idx_username;not null"`
	Password  string    `gorm:"type:text;not null"`
	LastSeen  time.Time `gorm:"index:idx_last_seen"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Annotations []Annotation `gorm:"foreignKey:UserID"`
	Stats       []UserStats  `gorm:"foreignKey:UserID"`
}

// AvatarURL builds a gravatar identicon URL for the user at the given
// pixel size.
func (u *User) AvatarURL(size int) string {
	digest := md5.Sum([]byte(u.Username + "@gmail.com"))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon&s=%d", digest, size)
}
