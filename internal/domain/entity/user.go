package entity

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User представляет пользователя в системе
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password_hash;size:128;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// SetPassword всегда хеширует переданный пароль, даже если он похож на bcrypt-хеш.
// В Password попадает только результат bcrypt.
func (u *User) SetPassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password is longer than %d bytes", MaxPasswordBytes)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword проверяет, соответствует ли переданный пароль хешу
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
