package entity

import (
	"time"
)

// Score - результат одной игры пользователя. Записи только добавляются.
type Score struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CategoryID     string    `gorm:"size:64;not null;index:idx_scores_category" json:"category_id"`
	SubcategoryID  *string   `gorm:"size:64;index:idx_scores_category" json:"subcategory_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Score) TableName() string {
	return "scores"
}

// Username возвращает имя владельца результата или nil, если пользователь не загружен
func (s *Score) Username() *string {
	if s.User == nil {
		return nil
	}
	name := s.User.Username
	return &name
}
