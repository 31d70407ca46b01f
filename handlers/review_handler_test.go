package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewUpdatesAggregates(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learnerA := createUser(t, "a@example.com", "learner", true)
	learnerB := createUser(t, "b@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	resp, _ := doRequest(t, app, "POST", "/api/reviews", map[string]any{
		"skill_id":    skill.ID,
		"reviewee_id": teacher.ID,
		"rating":      5,
		"comment":     "Great teacher",
	}, authToken(t, learnerA))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var updated models.Skill
	require.NoError(t, database.DB.First(&updated, "id = ?", skill.ID).Error)
	assert.InDelta(t, 5.0, updated.Rating, 0.001)
	assert.Equal(t, 1, updated.TotalReviews)

	resp, _ = doRequest(t, app, "POST", "/api/reviews", map[string]any{
		"skill_id":    skill.ID,
		"reviewee_id": teacher.ID,
		"rating":      2,
	}, authToken(t, learnerB))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, database.DB.First(&updated, "id = ?", skill.ID).Error)
	assert.InDelta(t, 3.5, updated.Rating, 0.001)
	assert.Equal(t, 2, updated.TotalReviews)

	var reviewedTeacher models.User
	require.NoError(t, database.DB.First(&reviewedTeacher, "id = ?", teacher.ID).Error)
	assert.InDelta(t, 3.5, reviewedTeacher.Rating, 0.001)
	assert.Equal(t, 2, reviewedTeacher.TotalReviews)
}

// A review without a reviewee rates the skill only: the row stores a null
// reviewee and no user aggregate moves.
func TestCreateReviewWithoutReviewee(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	resp, body := doRequest(t, app, "POST", "/api/reviews", map[string]any{
		"skill_id": skill.ID,
		"rating":   4,
	}, authToken(t, learner))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataField(body)
	assert.Nil(t, data["reviewee_id"])
	assert.Equal(t, float64(learner.ID), data["reviewer_id"])

	var review models.Review
	require.NoError(t, database.DB.Where("skill_id = ?", skill.ID).First(&review).Error)
	assert.Nil(t, review.RevieweeID)

	var updatedSkill models.Skill
	require.NoError(t, database.DB.First(&updatedSkill, "id = ?", skill.ID).Error)
	assert.InDelta(t, 4.0, updatedSkill.Rating, 0.001)
	assert.Equal(t, 1, updatedSkill.TotalReviews)

	var updatedTeacher models.User
	require.NoError(t, database.DB.First(&updatedTeacher, "id = ?", teacher.ID).Error)
	assert.Zero(t, updatedTeacher.Rating)
	assert.Zero(t, updatedTeacher.TotalReviews)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	resp, body := doRequest(t, app, "POST", "/api/reviews", map[string]any{
		"skill_id": skill.ID,
		"rating":   6,
	}, authToken(t, learner))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errs := errorsField(body)
	require.Contains(t, errs, "rating")
	messages, _ := errs["rating"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "Rating must be between 1 and 5", messages[0])
}

func TestCreateReviewUnknownSkill(t *testing.T) {
	app := setupApp(t)
	learner := createUser(t, "learner@example.com", "learner", true)

	resp, body := doRequest(t, app, "POST", "/api/reviews", map[string]any{
		"skill_id": 999,
		"rating":   4,
	}, authToken(t, learner))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, errorsField(body), "skill_id")
}

func TestGetSkillReviews(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	for i := 1; i <= 3; i++ {
		review := &models.Review{
			SkillID:    skill.ID,
			ReviewerID: learner.ID,
			RevieweeID: &teacher.ID,
			Rating:     i,
		}
		require.NoError(t, database.DB.Create(review).Error)
	}

	resp, body := doRequest(t, app, "GET", fmt.Sprintf("/api/reviews/skill/%d", skill.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items, _ := body["data"].([]any)
	assert.Len(t, items, 3)

	pagination, _ := body["pagination"].(map[string]any)
	assert.Equal(t, float64(3), pagination["total"])

	resp, _ = doRequest(t, app, "GET", "/api/reviews/skill/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A zero per_page falls back to the default page size.
	resp, body = doRequest(t, app, "GET", fmt.Sprintf("/api/reviews/skill/%d?per_page=0", skill.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ = body["data"].([]any)
	assert.Len(t, items, 3)
}

func TestGetUserReviews(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	review := &models.Review{
		SkillID:    skill.ID,
		ReviewerID: learner.ID,
		RevieweeID: &teacher.ID,
		Rating:     5,
	}
	require.NoError(t, database.DB.Create(review).Error)

	resp, body := doRequest(t, app, "GET", fmt.Sprintf("/api/reviews/user/%d", teacher.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ := body["data"].([]any)
	assert.Len(t, items, 1)

	resp, _ = doRequest(t, app, "GET", "/api/reviews/user/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
