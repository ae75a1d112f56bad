package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_SelectOption_OverwritesCurrentQuestionOnly(t *testing.T) {
	quiz := NewQuiz(Questions)

	require.NoError(t, quiz.SelectOption("Daily"))
	require.NoError(t, quiz.SelectOption("1-2 times a month"))

	done := quiz.Advance()
	require.False(t, done)
	require.NoError(t, quiz.SelectOption("Dust"))

	answers := quiz.Answers()
	assert.Equal(t, "1-2 times a month", answers[Questions[0].Text],
		"latest selection for question 0 should win")
	assert.Equal(t, "Dust", answers[Questions[1].Text])
	assert.Len(t, answers, 2)
}

func TestQuiz_SelectOption_RejectsUnknownOption(t *testing.T) {
	quiz := NewQuiz(Questions)

	err := quiz.SelectOption("Every full moon")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Empty(t, quiz.Answers())
}

func TestQuiz_Answers_OmitsUnansweredQuestions(t *testing.T) {
	quiz := NewQuiz(Questions)

	require.NoError(t, quiz.SelectOption("Daily"))
	for !quiz.Advance() {
	}

	answers := quiz.Answers()
	assert.Len(t, answers, 1, "unanswered store-flagged questions are omitted")
	assert.Equal(t, "Daily", answers[Questions[0].Text])
}

func TestQuiz_Answers_ExcludesDisplayOnlyQuestions(t *testing.T) {
	questions := []Question{
		{Text: "Do you have a diagnosed respiratory condition?", Options: []string{"Asthma", "None"}},
		{Text: "Do you experience difficulty breathing at night?", Options: []string{"Frequently", "Never"}, Store: true},
	}
	quiz := NewQuiz(questions)

	require.NoError(t, quiz.SelectOption("Asthma"))
	require.False(t, quiz.Advance())
	require.NoError(t, quiz.SelectOption("Never"))

	answers := quiz.Answers()
	assert.Len(t, answers, 1)
	assert.Equal(t, "Never", answers[questions[1].Text])
}

func TestQuiz_Advance_ReportsDoneOnlyAtLastQuestion(t *testing.T) {
	quiz := NewQuiz(Questions)

	for i := 0; i < len(Questions)-1; i++ {
		assert.Equal(t, i, quiz.Index())
		assert.False(t, quiz.Advance())
	}

	assert.True(t, quiz.AtLast())
	assert.True(t, quiz.Advance())
	assert.Equal(t, len(Questions)-1, quiz.Index(), "advancing past the end does not move the index")
	assert.True(t, quiz.Advance(), "done stays true on repeated calls")
}

func TestQuiz_Reset_DiscardsPartialAnswers(t *testing.T) {
	quiz := NewQuiz(Questions)

	require.NoError(t, quiz.SelectOption("Daily"))
	quiz.Advance()
	require.NoError(t, quiz.SelectOption("Pollen"))

	quiz.Reset()

	assert.Equal(t, 0, quiz.Index())
	assert.Empty(t, quiz.Answers())
	assert.False(t, quiz.Finalized())
}

func TestQuiz_MarkFinalized_BlocksFurtherSelection(t *testing.T) {
	quiz := NewQuiz(Questions)
	quiz.MarkFinalized()

	err := quiz.SelectOption("Daily")
	assert.ErrorIs(t, err, ErrQuizFinalized)
}
