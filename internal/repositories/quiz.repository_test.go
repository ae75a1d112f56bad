package repositories

import (
	"context"
	"fmt"
	"testing"

	"hridayavayu/internal/database"
	. "hridayavayu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newQuizTestDB opens an in-memory sqlite database. Cache clients stay
// nil, so every cache read is a miss.
func newQuizTestDB(t *testing.T) database.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&QuizResponse{}))
	return database.DB{SQL: gormDB}
}

func TestBuildResponses_KeepsStoredQuestionOrder(t *testing.T) {
	// Answers arrive as an unordered map; the persisted rows must follow
	// StoredQuestions order.
	answers := map[string]string{
		StoredQuestions[4]: "Frequently",
		StoredQuestions[0]: "Daily",
		StoredQuestions[2]: "Cold air",
	}

	responses := buildResponses("u-123", answers)

	require.Len(t, responses, 3)
	assert.Equal(t, StoredQuestions[0], responses[0].Question)
	assert.Equal(t, StoredQuestions[2], responses[1].Question)
	assert.Equal(t, StoredQuestions[4], responses[2].Question)
	for _, response := range responses {
		assert.Equal(t, "u-123", response.UserID)
	}
}

func TestBuildResponses_IgnoresUnknownQuestions(t *testing.T) {
	answers := map[string]string{
		StoredQuestions[0]:   "Daily",
		"What is your name?": "Asha",
		"Favorite color?":    "Blue",
	}

	responses := buildResponses("u-123", answers)

	require.Len(t, responses, 1)
	assert.Equal(t, StoredQuestions[0], responses[0].Question)
	assert.Equal(t, "Daily", responses[0].Answer)
}

func TestBuildResponses_EmptyAnswers(t *testing.T) {
	assert.Empty(t, buildResponses("u-123", nil))
	assert.Empty(t, buildResponses("u-123", map[string]string{}))
}

func TestQuizRepository_ReplaceForUser_OverwritesPreviousSubmission(t *testing.T) {
	repo := NewQuiz(newQuizTestDB(t))
	ctx := context.Background()

	first := map[string]string{
		StoredQuestions[0]: "Daily",
		StoredQuestions[1]: "Dust",
		StoredQuestions[4]: "Frequently",
	}
	require.NoError(t, repo.ReplaceForUser(ctx, "u-123", first))

	second := map[string]string{
		StoredQuestions[0]: "Less than once a month",
		StoredQuestions[4]: "Never",
	}
	require.NoError(t, repo.ReplaceForUser(ctx, "u-123", second))

	responses, err := repo.GetOrderedForUser(ctx, "u-123")
	require.NoError(t, err)
	require.Len(t, responses, 2, "the first submission is gone")
	assert.Equal(t, StoredQuestions[0], responses[0].Question)
	assert.Equal(t, "Less than once a month", responses[0].Answer)
	assert.Equal(t, StoredQuestions[4], responses[1].Question)
	assert.Equal(t, "Never", responses[1].Answer)
}

func TestQuizRepository_ReplaceForUser_LeavesOtherUsersUntouched(t *testing.T) {
	repo := NewQuiz(newQuizTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceForUser(ctx, "u-1", map[string]string{StoredQuestions[0]: "Daily"}))
	require.NoError(t, repo.ReplaceForUser(ctx, "u-2", map[string]string{StoredQuestions[0]: "Never"}))

	require.NoError(t, repo.ReplaceForUser(ctx, "u-1", map[string]string{StoredQuestions[0]: "Frequently (Weekly)"}))

	responses, err := repo.GetOrderedForUser(ctx, "u-2")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Never", responses[0].Answer)
}

func TestQuizRepository_ReplaceForUser_EmptySetClearsResponses(t *testing.T) {
	repo := NewQuiz(newQuizTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceForUser(ctx, "u-123", map[string]string{StoredQuestions[0]: "Daily"}))
	require.NoError(t, repo.ReplaceForUser(ctx, "u-123", map[string]string{}))

	responses, err := repo.GetOrderedForUser(ctx, "u-123")
	require.NoError(t, err)
	assert.Empty(t, responses)
}
