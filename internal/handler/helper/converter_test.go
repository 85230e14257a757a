package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

func TestSanitizeForExcel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Paris", "Paris"},
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"\tx", "'\tx"},
		{"a=b", "a=b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeForExcel(tt.in), "in=%q", tt.in)
	}
}

func TestAnswerLetter(t *testing.T) {
	assert.Equal(t, "A", AnswerLetter(0))
	assert.Equal(t, "D", AnswerLetter(3))
	assert.Equal(t, "", AnswerLetter(4))
	assert.Equal(t, "", AnswerLetter(-1))
}

func TestQuizExportRows(t *testing.T) {
	quiz := &entity.CustomQuiz{
		Questions: []entity.CustomQuizQuestion{
			{Text: "Capital of France?", OptionSet: entity.OptionSet{OptionA: "Paris", OptionB: "Rome", OptionC: "Oslo", OptionD: "Bern", CorrectIndex: 0}},
			{Text: "=1+1", OptionSet: entity.OptionSet{OptionA: "1", OptionB: "2", OptionC: "-3", OptionD: "4", CorrectIndex: 1}},
		},
	}

	rows := QuizExportRows(quiz)

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Capital of France?", "Paris", "Rome", "Oslo", "Bern", "A"}, rows[0])
	assert.Equal(t, []string{"2", "'=1+1", "1", "2", "'-3", "4", "B"}, rows[1])
	assert.Len(t, ExportHeader, len(rows[0]))
}
