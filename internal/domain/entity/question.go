package entity

import (
	"time"
)

// Question - вопрос из старого общего пула ("My Questions").
// Автор может быть удален, тогда created_by обнуляется.
type Question struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CategoryID    string  `gorm:"size:64;not null;index" json:"category_id"`
	SubcategoryID *string `gorm:"size:64;index" json:"subcategory_id"`
	Text          string  `gorm:"column:question_text;size:512;not null" json:"question"`
	OptionSet
	Difficulty *string   `gorm:"size:16" json:"difficulty"`
	CreatedBy  *uint     `gorm:"index" json:"-"`
	Creator    *User     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsOwnedBy проверяет, создан ли вопрос указанным пользователем
func (q *Question) IsOwnedBy(userID uint) bool {
	return q.CreatedBy != nil && *q.CreatedBy == userID
}

// CreatorName возвращает имя автора или nil, если автор удален или не загружен
func (q *Question) CreatorName() *string {
	if q.Creator == nil {
		return nil
	}
	name := q.Creator.Username
	return &name
}
