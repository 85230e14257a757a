package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/iq-api/internal/domain/entity"
	apperrors "github.com/yourusername/iq-api/internal/pkg/errors"
)

var (
	errNotInteger   = errors.New("not an integer")
	errBadOptions   = errors.New("options must be a list of 4 items")
	jsonNullLiteral = []byte("null")
)

// isAbsent сообщает, что поле не пришло в запросе или пришло как null
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNullLiteral)
}

// parseInteger принимает JSON-число с целым значением или строку с целым числом.
// 3, 3.0, "3" и " 3 " дают 3. 2.5, "2.5", "abc", true и списки отклоняются.
func parseInteger(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, errNotInteger
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, errNotInteger
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errNotInteger
		}
		return n, nil
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return 0, errNotInteger
	}
	if n, err := strconv.Atoi(num.String()); err == nil {
		return n, nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errNotInteger
	}
	return int(f), nil
}

// parseAnswerIndex разбирает индекс правильного ответа и проверяет диапазон 0..3
func parseAnswerIndex(raw json.RawMessage) (int, bool) {
	idx, err := parseInteger(raw)
	if err != nil || !entity.IsValidAnswerIndex(idx) {
		return 0, false
	}
	return idx, true
}

// parseOptions ожидает JSON-массив ровно из четырех строк (числа приводятся к строке)
func parseOptions(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) != entity.OptionsCount {
		return nil, errBadOptions
	}

	options := make([]string, 0, len(items))
	for _, item := range items {
		if isAbsent(item) {
			return nil, errBadOptions
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			options = append(options, s)
			continue
		}
		var num json.Number
		if err := json.Unmarshal(item, &num); err == nil {
			options = append(options, num.String())
			continue
		}
		return nil, errBadOptions
	}
	return options, nil
}

// trimmedOrNil обрезает пробелы, пустая строка превращается в nil
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// filterValue превращает параметр запроса в фильтр: пустое значение не фильтрует
func filterValue(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// lengthCheck - одно строковое поле и его предел в символах
type lengthCheck struct {
	field string
	value *string
	max   int
}

// checkLengths отклоняет первое поле, не влезающее в колонку. nil-поля пропускаются.
func checkLengths(checks ...lengthCheck) error {
	for _, c := range checks {
		if c.value != nil && !entity.FitsLength(*c.value, c.max) {
			return fmt.Errorf("%w: %s must be at most %d characters", apperrors.ErrValidation, c.field, c.max)
		}
	}
	return nil
}

// checkOptionLengths проверяет каждый вариант ответа
func checkOptionLengths(options []string) error {
	for _, option := range options {
		if !entity.FitsLength(option, entity.MaxOptionLength) {
			return fmt.Errorf("%w: options must be at most %d characters each", apperrors.ErrValidation, entity.MaxOptionLength)
		}
	}
	return nil
}
