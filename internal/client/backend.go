// Package client holds the typed HTTP clients the front-end flow talks
// through: the HridayaVayu backend, the weather provider, and the inhaler
// status source.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"hridayavayu/internal/logger"
	. "hridayavayu/internal/models"
)

const defaultTimeout = 15 * time.Second

var (
	// ErrMissingUserID marks a save-profile response without the generated
	// identifier; callers treat it like any other backend failure.
	ErrMissingUserID = errors.New("backend response did not include user_id")
	ErrNotCreated    = errors.New("backend did not acknowledge creation")
)

type Backend struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

func NewBackend(baseURL string) *Backend {
	return &Backend{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logger.New("client").File("backend"),
	}
}

// SaveProfile submits the profile and returns the generated user id.
func (b *Backend) SaveProfile(ctx context.Context, request *SaveProfileRequest) (string, error) {
	log := b.log.Function("SaveProfile")

	var response SaveProfileResponse
	if _, err := b.postJSON(ctx, "/save-profile", request, &response); err != nil {
		return "", log.Err("failed to save profile", err)
	}

	if response.UserID == "" {
		return "", ErrMissingUserID
	}

	return response.UserID, nil
}

// SubmitQuiz sends the finalized answer set. Anything other than a
// creation-class status is a failure.
func (b *Backend) SubmitQuiz(ctx context.Context, request *SubmitQuizRequest) error {
	log := b.log.Function("SubmitQuiz")

	status, err := b.postJSON(ctx, "/submit-quiz", request, nil)
	if err != nil {
		return log.Err("failed to submit quiz", err)
	}
	if status != http.StatusCreated {
		return ErrNotCreated
	}

	return nil
}

// SendDataToAI triggers server-side inference for the user.
func (b *Backend) SendDataToAI(ctx context.Context, userID string) (*AIResponse, error) {
	log := b.log.Function("SendDataToAI")

	var response AIResponse
	if err := b.getJSON(ctx, "/send-data-to-ai/"+url.PathEscape(userID), &response); err != nil {
		return nil, log.Err("failed to invoke AI model", err, "userID", userID)
	}

	return &response, nil
}

// GetAlerts fetches the alerts generated for the user. Called only after
// SendDataToAI resolves.
func (b *Backend) GetAlerts(ctx context.Context, userID string) ([]Alert, error) {
	log := b.log.Function("GetAlerts")

	var response AlertsResponse
	if err := b.getJSON(ctx, "/get-alerts/"+url.PathEscape(userID), &response); err != nil {
		return nil, log.Err("failed to fetch alerts", err, "userID", userID)
	}

	return response.Alerts, nil
}

func (b *Backend) SetReminder(ctx context.Context, request *SetReminderRequest) error {
	log := b.log.Function("SetReminder")

	if _, err := b.postJSON(ctx, "/set-reminder", request, nil); err != nil {
		return log.Err("failed to set reminder", err)
	}

	return nil
}

func (b *Backend) RecordInhalerUse(ctx context.Context, userID string) (*InhalerUsageResponse, error) {
	log := b.log.Function("RecordInhalerUse")

	var response InhalerUsageResponse
	if _, err := b.postJSON(ctx, "/use-inhaler", &UseInhalerRequest{UserID: userID}, &response); err != nil {
		return nil, log.Err("failed to record inhaler use", err, "userID", userID)
	}

	return &response, nil
}

func (b *Backend) GetInhalerUsage(ctx context.Context, userID string) (*InhalerUsageResponse, error) {
	log := b.log.Function("GetInhalerUsage")

	var response InhalerUsageResponse
	if err := b.getJSON(ctx, "/get-inhaler-usage/"+url.PathEscape(userID), &response); err != nil {
		return nil, log.Err("failed to fetch inhaler usage", err, "userID", userID)
	}

	return &response, nil
}

func (b *Backend) GetUser(ctx context.Context, userID string) (*User, error) {
	log := b.log.Function("GetUser")

	var user User
	if err := b.getJSON(ctx, "/get-user/"+url.PathEscape(userID), &user); err != nil {
		return nil, log.Err("failed to fetch user", err, "userID", userID)
	}

	return &user, nil
}

func (b *Backend) postJSON(ctx context.Context, pathname string, payload any, dest any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+pathname, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("POST %s returned status %d", pathname, resp.StatusCode)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (b *Backend) getJSON(ctx context.Context, pathname string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+pathname, nil)
	if err != nil {
		return err
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s returned status %d", pathname, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
