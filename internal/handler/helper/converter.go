package helper

import (
	"strconv"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// ExportHeader - заголовок таблицы выгрузки вопросов викторины
var ExportHeader = []string{"#", "Question", "Option A", "Option B", "Option C", "Option D", "Answer"}

// answerLetters сопоставляет индекс правильного ответа с буквой варианта
var answerLetters = [entity.OptionsCount]string{"A", "B", "C", "D"}

// AnswerLetter возвращает букву варианта для индекса 0-3 или пустую строку
func AnswerLetter(idx int) string {
	if !entity.IsValidAnswerIndex(idx) {
		return ""
	}
	return answerLetters[idx]
}

// QuizExportRows преобразует вопросы викторины в строки таблицы.
// Пользовательский текст экранируется от formula injection.
func QuizExportRows(quiz *entity.CustomQuiz) [][]string {
	rows := make([][]string, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		row := []string{strconv.Itoa(i + 1), SanitizeForExcel(q.Text)}
		for _, opt := range q.Options() {
			row = append(row, SanitizeForExcel(opt))
		}
		row = append(row, AnswerLetter(q.CorrectIndex))
		rows = append(rows, row)
	}
	return rows
}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
