package entity

import "fmt"

// OptionsCount - количество вариантов ответа у любого вопроса
const OptionsCount = 4

// OptionSet хранит четыре варианта ответа и индекс правильного.
// Встраивается в Question и CustomQuizQuestion, GORM разворачивает поля
// в колонки option_a..option_d и correct_index.
type OptionSet struct {
	OptionA      string `gorm:"size:256;not null" json:"-"`
	OptionB      string `gorm:"size:256;not null" json:"-"`
	OptionC      string `gorm:"size:256;not null" json:"-"`
	OptionD      string `gorm:"size:256;not null" json:"-"`
	CorrectIndex int    `gorm:"not null" json:"answerIndex"`
}

// Options возвращает варианты ответа в порядке A..D
func (o *OptionSet) Options() []string {
	return []string{o.OptionA, o.OptionB, o.OptionC, o.OptionD}
}

// SetOptions заменяет все четыре варианта разом.
// Если передано не ровно четыре значения, набор не меняется.
func (o *OptionSet) SetOptions(options []string) error {
	if len(options) != OptionsCount {
		return fmt.Errorf("expected %d options, got %d", OptionsCount, len(options))
	}
	o.OptionA, o.OptionB, o.OptionC, o.OptionD = options[0], options[1], options[2], options[3]
	return nil
}

// IsValidAnswerIndex проверяет, что индекс попадает в 0..3
func IsValidAnswerIndex(idx int) bool {
	return idx >= 0 && idx < OptionsCount
}

// IsCorrect проверяет, является ли выбранный вариант правильным
func (o *OptionSet) IsCorrect(selectedOption int) bool {
	return selectedOption == o.CorrectIndex
}
