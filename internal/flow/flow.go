// Package flow is the intake and session flow controller: an explicit
// state machine over the screens of the app, the data carried between
// them, and the guards on every transition.
package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
	"hridayavayu/internal/session"
)

type State string

const (
	StateSplash    State = "Splash"
	StateSignUp    State = "SignUp"
	StateProfile   State = "Profile"
	StateQuiz      State = "Quiz"
	StateDashboard State = "Dashboard"
	StateReminder  State = "Reminder"
)

const DefaultSplashDelay = 3 * time.Second

var (
	ErrNoSession          = errors.New("no session identifier; complete the profile step first")
	ErrPredictionInFlight = errors.New("a prediction is already in flight")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrInvalidTransition  = errors.New("action not available in the current state")
)

// BackendAPI is the slice of the backend client the controller drives.
type BackendAPI interface {
	SaveProfile(ctx context.Context, request *SaveProfileRequest) (string, error)
	SubmitQuiz(ctx context.Context, request *SubmitQuizRequest) error
	SendDataToAI(ctx context.Context, userID string) (*AIResponse, error)
	GetAlerts(ctx context.Context, userID string) ([]Alert, error)
	SetReminder(ctx context.Context, request *SetReminderRequest) error
}

// Controller owns the current screen state. All navigation decisions and
// their guards live here; screens are pure presentation over it.
type Controller struct {
	mu       sync.Mutex
	state    State
	sessions session.Store
	backend  BackendAPI
	quiz     *Quiz

	splashDelay time.Duration
	splashGen   int

	predicting    bool
	submitting    bool
	alerts        []Alert
	showingAlerts bool

	log logger.Logger
}

type Option func(*Controller)

// WithSplashDelay overrides the fixed splash duration, for tests.
func WithSplashDelay(delay time.Duration) Option {
	return func(c *Controller) {
		c.splashDelay = delay
	}
}

func NewController(sessions session.Store, backend BackendAPI, opts ...Option) *Controller {
	c := &Controller{
		state:       StateSplash,
		sessions:    sessions,
		backend:     backend,
		quiz:        NewQuiz(Questions),
		splashDelay: DefaultSplashDelay,
		log:         logger.New("flow"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Quiz() *Quiz {
	return c.quiz
}

// EnterSplash arms the splash timer. When it fires the controller routes
// to Dashboard for a returning user or SignUp for a new one, and the
// resulting state is sent on done. The stop function cancels the pending
// navigation; once stopped, the timer never fires a late transition.
func (c *Controller) EnterSplash() (done <-chan State, stop func()) {
	c.mu.Lock()
	c.state = StateSplash
	c.splashGen++
	gen := c.splashGen
	c.mu.Unlock()

	ch := make(chan State, 1)
	timer := time.AfterFunc(c.splashDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.splashGen != gen || c.state != StateSplash {
			return
		}
		if _, ok := c.sessions.Get(); ok {
			c.state = StateDashboard
		} else {
			c.state = StateSignUp
		}
		ch <- c.state
	})

	return ch, func() {
		c.mu.Lock()
		c.splashGen++
		c.mu.Unlock()
		timer.Stop()
	}
}

// ConfirmSignUp moves on to the profile form. There is nothing to
// validate on the sign-up screen.
func (c *Controller) ConfirmSignUp() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSignUp {
		return ErrInvalidTransition
	}
	c.state = StateProfile
	return nil
}

// SubmitProfile sends the profile to the backend. On success the returned
// identifier is persisted before the controller moves to the quiz; any
// failure (including a response without an identifier) leaves the
// controller on the profile screen. The quiz restarts fresh on every
// profile save, so editing the profile from the dashboard retakes it.
// The lock is not held across the request; other actions stay available.
func (c *Controller) SubmitProfile(ctx context.Context, request *SaveProfileRequest) (string, error) {
	log := c.log.Function("SubmitProfile")

	c.mu.Lock()
	if c.state != StateProfile {
		c.mu.Unlock()
		return "", ErrInvalidTransition
	}
	if c.submitting {
		c.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	userID, err := c.backend.SaveProfile(ctx, request)
	if err != nil {
		return "", log.Err("profile submission failed", err)
	}

	if err := c.sessions.Set(userID); err != nil {
		return "", log.Err("failed to persist session identifier", err)
	}

	c.mu.Lock()
	if c.state == StateProfile {
		c.quiz.Reset()
		c.state = StateQuiz
	}
	c.mu.Unlock()
	return userID, nil
}

// SelectOption records an answer for the current quiz question.
func (c *Controller) SelectOption(option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateQuiz {
		return ErrInvalidTransition
	}
	return c.quiz.SelectOption(option)
}

// AdvanceQuiz moves to the next question, or on the last question
// finalizes and submits the answer set. Finishing without a session
// identifier discards the partial answers and keeps the user on the quiz.
func (c *Controller) AdvanceQuiz(ctx context.Context) (finished bool, err error) {
	log := c.log.Function("AdvanceQuiz")

	c.mu.Lock()
	if c.state != StateQuiz {
		c.mu.Unlock()
		return false, ErrInvalidTransition
	}
	if c.quiz.Finalized() {
		c.mu.Unlock()
		return false, ErrQuizFinalized
	}

	if !c.quiz.Advance() {
		c.mu.Unlock()
		return false, nil
	}

	userID, ok := c.sessions.Get()
	if !ok {
		c.quiz.Reset()
		c.mu.Unlock()
		return false, ErrNoSession
	}
	if c.submitting {
		c.mu.Unlock()
		return false, ErrSubmissionInFlight
	}
	c.submitting = true
	request := &SubmitQuizRequest{
		UserID:  userID,
		Answers: c.quiz.Answers(),
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := c.backend.SubmitQuiz(ctx, request); err != nil {
		// Stay on the quiz; the user retries by finishing again.
		return false, log.Err("quiz submission failed", err)
	}

	c.mu.Lock()
	if c.state == StateQuiz && !c.quiz.Finalized() {
		c.quiz.MarkFinalized()
		c.state = StateDashboard
	}
	c.mu.Unlock()
	return true, nil
}

// OpenReminder and the other dashboard navigations are unconditional.
func (c *Controller) OpenReminder() error {
	return c.transition(StateDashboard, StateReminder)
}

func (c *Controller) CloseReminder() error {
	return c.transition(StateReminder, StateDashboard)
}

func (c *Controller) OpenProfile() error {
	return c.transition(StateDashboard, StateProfile)
}

func (c *Controller) transition(from, to State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != from {
		return ErrInvalidTransition
	}
	c.state = to
	return nil
}

// Predict triggers server-side inference and then fetches the generated
// alerts, in that order. The action is single-flight: a second call while
// one is in flight is rejected rather than queued. Success opens the
// alert modal; a response landing after the user left the dashboard is
// discarded.
func (c *Controller) Predict(ctx context.Context) ([]Alert, error) {
	log := c.log.Function("Predict")

	c.mu.Lock()
	if c.state != StateDashboard {
		c.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if c.predicting {
		c.mu.Unlock()
		return nil, ErrPredictionInFlight
	}
	userID, ok := c.sessions.Get()
	if !ok {
		c.mu.Unlock()
		return nil, ErrNoSession
	}
	c.predicting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.predicting = false
		c.mu.Unlock()
	}()

	if _, err := c.backend.SendDataToAI(ctx, userID); err != nil {
		return nil, log.Err("AI invocation failed", err, "userID", userID)
	}

	alerts, err := c.backend.GetAlerts(ctx, userID)
	if err != nil {
		return nil, log.Err("alert fetch failed", err, "userID", userID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateDashboard {
		return nil, nil
	}
	c.alerts = alerts
	c.showingAlerts = true
	return alerts, nil
}

// ShowingAlerts reports whether the alert modal sub-state is open.
func (c *Controller) ShowingAlerts() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showingAlerts
}

func (c *Controller) Alerts() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alerts
}

func (c *Controller) DismissAlerts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showingAlerts = false
}

// SubmitReminder posts the schedule as one payload. The user stays on the
// reminder screen either way.
func (c *Controller) SubmitReminder(ctx context.Context, remindMe bool, times []string) error {
	c.mu.Lock()
	if c.state != StateReminder {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.mu.Unlock()

	request := &SetReminderRequest{RemindMe: remindMe, Times: times}
	if err := c.backend.SetReminder(ctx, request); err != nil {
		return c.log.Function("SubmitReminder").Err("reminder submission failed", err)
	}
	return nil
}
