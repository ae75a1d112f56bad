package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "hridayavayu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_SaveProfile(t *testing.T) {
	var received SaveProfileRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/save-profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveProfileResponse{
			Message: "Profile saved successfully",
			UserID:  "u-123",
		})
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	userID, err := backend.SaveProfile(context.Background(), &SaveProfileRequest{
		Name:   "Asha Verma",
		Age:    29,
		Gender: "Female",
		Mobile: "9876543210",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-123", userID)
	assert.Equal(t, "Asha Verma", received.Name)
	assert.Equal(t, "9876543210", received.Mobile)
}

func TestBackend_SaveProfile_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveProfileResponse{Message: "Profile saved successfully"})
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	_, err := backend.SaveProfile(context.Background(), &SaveProfileRequest{Name: "Asha Verma"})

	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestBackend_SaveProfile_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	_, err := backend.SaveProfile(context.Background(), &SaveProfileRequest{Name: "Asha Verma"})

	assert.Error(t, err)
}

func TestBackend_SubmitQuiz_RequiresCreatedStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "created", status: http.StatusCreated, wantErr: nil},
		{name: "ok is not enough", status: http.StatusOK, wantErr: ErrNotCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/submit-quiz", r.URL.Path)
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
			}))
			defer server.Close()

			backend := NewBackend(server.URL)
			err := backend.SubmitQuiz(context.Background(), &SubmitQuizRequest{
				UserID:  "u-123",
				Answers: map[string]string{StoredQuestions[0]: "Daily"},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBackend_SendDataToAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-data-to-ai/u-123", r.URL.Path)
		json.NewEncoder(w).Encode(AIResponse{RiskScore: 0.72, Message: "High Risk Detected: 0.72"})
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	response, err := backend.SendDataToAI(context.Background(), "u-123")

	require.NoError(t, err)
	assert.InDelta(t, 0.72, response.RiskScore, 0.0001)
}

func TestBackend_GetAlerts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-alerts/u-123", r.URL.Path)
		json.NewEncoder(w).Encode(AlertsResponse{Alerts: []Alert{
			{UserID: "u-123", Message: "High Risk Detected: 0.72"},
		}})
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	alerts, err := backend.GetAlerts(context.Background(), "u-123")

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "High Risk Detected: 0.72", alerts[0].Message)
}

func TestBackend_SetReminder(t *testing.T) {
	var received SetReminderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/set-reminder", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{"message": "Reminder saved"})
	}))
	defer server.Close()

	backend := NewBackend(server.URL)
	err := backend.SetReminder(context.Background(), &SetReminderRequest{
		RemindMe: true,
		Times:    []string{"10:00 AM", "1:05 PM"},
	})

	require.NoError(t, err)
	assert.True(t, received.RemindMe)
	assert.Equal(t, []string{"10:00 AM", "1:05 PM"}, received.Times)
}
