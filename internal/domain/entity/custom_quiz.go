package entity

import (
	"time"
)

// CustomQuiz - викторина, созданная пользователем.
// Вопросы удаляются вместе с викториной, викторины - вместе с пользователем.
type CustomQuiz struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	UserID      uint                 `gorm:"not null;index" json:"-"`
	Owner       *User                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string               `gorm:"size:128;not null" json:"title"`
	Description *string              `gorm:"size:512" json:"description"`
	Theme       *string              `gorm:"size:32" json:"theme"`
	Questions   []CustomQuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt   time.Time            `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (CustomQuiz) TableName() string {
	return "custom_quizzes"
}

// IsOwnedBy проверяет принадлежность викторины пользователю
func (q *CustomQuiz) IsOwnedBy(userID uint) bool {
	return q.UserID == userID
}

// CustomQuizQuestion - вопрос внутри пользовательской викторины
type CustomQuizQuestion struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	QuizID uint   `gorm:"not null;index" json:"quiz_id"`
	Text   string `gorm:"column:question_text;size:512;not null" json:"question"`
	OptionSet
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (CustomQuizQuestion) TableName() string {
	return "custom_quiz_questions"
}
