package services

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

func testSensorData() *SensorData {
	return &SensorData{
		UserID:      "u-123",
		AirQuality:  152,
		PM25:        88.4,
		SO2Level:    12.1,
		NO2Level:    30.6,
		CO2Level:    410,
		Humidity:    68,
		Temperature: 31.4,
	}
}

func testQuizResponses() []QuizResponse {
	answers := []string{"Daily", "Dust", "Cold air", "Yes", "Frequently"}
	responses := make([]QuizResponse, len(StoredQuestions))
	for i, question := range StoredQuestions {
		responses[i] = QuizResponse{UserID: "u-123", Question: question, Answer: answers[i]}
	}
	return responses
}

func TestBuildPayload(t *testing.T) {
	payload, err := BuildPayload(testSensorData(), testQuizResponses())
	require.NoError(t, err)

	assert.Equal(t, 152, payload["AQI"])
	assert.Equal(t, 88.4, payload["PM2.5"])
	assert.Equal(t, 12.1, payload["SO2 level"])
	assert.Equal(t, 30.6, payload["NO2 level"])
	assert.Equal(t, float64(410), payload["CO2 level"])
	assert.Equal(t, float64(68), payload["Humidity"])
	assert.Equal(t, 31.4, payload["Temperature"])

	assert.Equal(t, "Daily", payload["Asthma Symptoms Frequency"])
	assert.Equal(t, "Dust", payload["Triggers"])
	assert.Equal(t, "Cold air", payload["Weather Sensitivity"])
	assert.Equal(t, "Yes", payload["Poor Air Quality Exposure"])
	assert.Equal(t, "Frequently", payload["Night Breathing Difficulty"])

	assert.Len(t, payload, 12)
}

func TestBuildPayload_RequiresFullAnswerSet(t *testing.T) {
	responses := testQuizResponses()

	_, err := BuildPayload(testSensorData(), responses[:3])
	assert.Error(t, err)
}

func TestInferenceService_Predict(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(map[string]float64{"asthma_risk_score": 0.82})
	}))
	defer server.Close()

	service := NewInferenceService(server.URL)
	score, err := service.Predict(context.Background(), testSensorData(), testQuizResponses())

	require.NoError(t, err)
	assert.InDelta(t, 0.82, score, 0.0001)
	assert.Equal(t, "Daily", received["Asthma Symptoms Frequency"])
	assert.Len(t, received, 12)
}

func TestInferenceService_Predict_ModelFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewInferenceService(server.URL)
	_, err := service.Predict(context.Background(), testSensorData(), testQuizResponses())

	assert.Error(t, err)
}

func TestInferenceService_Predict_MissingScoreReadsAsZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	service := NewInferenceService(server.URL)
	score, err := service.Predict(context.Background(), testSensorData(), testQuizResponses())

	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Less(t, score, HighRiskThreshold)
}
