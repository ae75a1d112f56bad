package flow

import (
	"errors"
	"fmt"
)

var (
	ErrQuizFinalized = errors.New("quiz already submitted")
	ErrUnknownOption = errors.New("option is not offered by the current question")
)

type Question struct {
	Text    string
	Options []string
	// Store marks questions whose answer belongs in the final submission.
	// Unflagged questions are display-only.
	Store bool
}

// Questions is the fixed intake questionnaire, in presentation order.
var Questions = []Question{
	{
		Text: "How often do you experience asthma symptoms?",
		Options: []string{
			"Less than once a month",
			"1-2 times a month",
			"Frequently (Weekly)",
			"Daily",
		},
		Store: true,
	},
	{
		Text: "Which of the following commonly trigger your symptoms?",
		Options: []string{
			"Pollen",
			"Dust",
			"Humidity",
			"Temperature changes",
			"Air pollution",
		},
		Store: true,
	},
	{
		Text: "Do you notice symptoms worsening in specific weather conditions?",
		Options: []string{
			"Hot and humid",
			"Cold",
			"Windy and dry",
			"No specific triggers",
		},
		Store: true,
	},
	{
		Text:    "Do you live in or frequently visit areas with poor air quality?",
		Options: []string{"Yes, often", "No", "Occasionally"},
		Store:   true,
	},
	{
		Text:    "Do you experience difficulty breathing at night?",
		Options: []string{"Frequently", "Occasionally", "Rarely", "Never"},
		Store:   true,
	},
}

// Quiz accumulates one selected option per question across a fixed forward
// sequence. There is no backward navigation.
type Quiz struct {
	questions []Question
	index     int
	selected  map[int]string
	finalized bool
}

func NewQuiz(questions []Question) *Quiz {
	return &Quiz{
		questions: questions,
		selected:  make(map[int]string),
	}
}

func (q *Quiz) Index() int {
	return q.index
}

func (q *Quiz) Current() Question {
	return q.questions[q.index]
}

// AtLast reports whether the current question is the final one, where
// advancing means finishing.
func (q *Quiz) AtLast() bool {
	return q.index == len(q.questions)-1
}

func (q *Quiz) Selected() (string, bool) {
	option, ok := q.selected[q.index]
	return option, ok
}

// SelectOption records the choice for the current question only,
// overwriting any earlier choice for this question.
func (q *Quiz) SelectOption(option string) error {
	if q.finalized {
		return ErrQuizFinalized
	}
	for _, offered := range q.Current().Options {
		if offered == option {
			q.selected[q.index] = option
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOption, option)
}

// Advance moves to the next question. At the last question it reports
// done=true instead; the caller then finalizes and submits.
func (q *Quiz) Advance() (done bool) {
	if q.AtLast() {
		return true
	}
	q.index++
	return false
}

// Answers projects the per-index selections onto question text for every
// store-flagged question that was actually answered. Unanswered questions
// are omitted, not errors.
func (q *Quiz) Answers() map[string]string {
	answers := make(map[string]string)
	for i, question := range q.questions {
		if !question.Store {
			continue
		}
		if option, ok := q.selected[i]; ok {
			answers[question.Text] = option
		}
	}
	return answers
}

// MarkFinalized seals the quiz after a successful submission so a second
// submit cannot fire.
func (q *Quiz) MarkFinalized() {
	q.finalized = true
}

func (q *Quiz) Finalized() bool {
	return q.finalized
}

// Reset discards the partially built answer set and starts over, used when
// finishing is blocked by a missing session identifier.
func (q *Quiz) Reset() {
	q.index = 0
	q.selected = make(map[int]string)
	q.finalized = false
}
