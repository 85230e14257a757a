package entity

import "unicode/utf8"

// Максимальные длины строковых полей. Совпадают с VARCHAR в migrations/000001_init.up.sql,
// Postgres считает длину в символах.
const (
	MaxUsernameLength    = 64
	MaxCategoryLength    = 64
	MaxQuestionLength    = 512
	MaxOptionLength      = 256
	MaxDifficultyLength  = 16
	MaxTitleLength       = 128
	MaxDescriptionLength = 512
	MaxThemeLength       = 32

	// MaxPasswordBytes - предел bcrypt, считается в байтах
	MaxPasswordBytes = 72
)

// FitsLength проверяет, что строка не длиннее max символов
func FitsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}
