package errors

import (
	"errors"
	"strings"
)

// Общие ошибки приложения.
// Сервисы оборачивают их через fmt.Errorf("%w: ..."), текст после двоеточия
// уходит клиенту в поле message.
var (
	// ErrNotFound используется, когда запись не найдена
	// (для викторин также когда викторина принадлежит другому пользователю).
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок аутентификации (неверные учетные данные, нет токена).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда пользователь не владеет ресурсом (только старые вопросы).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrExpiredToken используется, когда срок действия токена истек.
	ErrExpiredToken = errors.New("token is expired")

	// ErrConflict используется для конфликтов уникальности (занятое имя пользователя).
	ErrConflict = errors.New("resource state conflict")
)

// Message возвращает человекочитаемую часть обернутой ошибки:
// "validation failed: Title is required" -> "Title is required".
// Если ошибка не обернута поверх sentinel, возвращается fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrForbidden, ErrValidation, ErrExpiredToken, ErrConflict} {
		prefix := sentinel.Error() + ": "
		if msg := err.Error(); strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return fallback
}
