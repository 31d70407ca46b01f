package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExchangeEndDateBeforeStartDate(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	resp, body := doRequest(t, app, "POST", "/api/exchanges", map[string]any{
		"skill_id":   skill.ID,
		"start_date": "2026-09-10",
		"end_date":   "2026-09-05",
	}, authToken(t, learner))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errs := errorsField(body)
	require.Contains(t, errs, "end_date")
	messages, _ := errs["end_date"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "End date must be after start date", messages[0])

	// Nothing was written.
	var count int64
	database.DB.Model(&models.Exchange{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateExchange(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	resp, body := doRequest(t, app, "POST", "/api/exchanges", map[string]any{
		"skill_id":   skill.ID,
		"start_date": "2026-09-05",
		"end_date":   "2026-09-10",
		"notes":      "Weekday evenings preferred",
	}, authToken(t, learner))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataField(body)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(learner.ID), data["learner_id"])
	assert.Equal(t, float64(teacher.ID), data["teacher_id"])
}

func TestCreateExchangeUnknownSkill(t *testing.T) {
	app := setupApp(t)
	learner := createUser(t, "learner@example.com", "learner", true)

	resp, body := doRequest(t, app, "POST", "/api/exchanges", map[string]any{
		"skill_id":   999,
		"start_date": "2026-09-05",
		"end_date":   "2026-09-10",
	}, authToken(t, learner))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, errorsField(body), "skill_id")
}

func TestAcceptExchangeTeacherOnly(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)
	exchange := createExchange(t, skill, learner, models.ExchangePending)

	resp, body := doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/accept", exchange.ID), nil, authToken(t, learner))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Only teacher can accept exchange", body["message"])

	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/accept", exchange.ID), nil, authToken(t, teacher))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "accepted", dataField(body)["status"])

	// Accepting twice is rejected.
	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/accept", exchange.ID), nil, authToken(t, teacher))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only pending exchanges can be accepted", body["message"])
}

func TestCompleteExchangeRequiresAccepted(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)
	exchange := createExchange(t, skill, learner, models.ExchangePending)

	resp, body := doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/complete", exchange.ID), nil, authToken(t, teacher))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only accepted exchanges can be completed", body["message"])

	require.NoError(t, database.DB.Model(exchange).Update("status", models.ExchangeAccepted).Error)

	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/complete", exchange.ID), nil, authToken(t, learner))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/complete", exchange.ID), nil, authToken(t, teacher))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", dataField(body)["status"])
}

func TestCancelExchange(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	outsider := createUser(t, "outsider@example.com", "learner", true)
	skill := createSkill(t, teacher, category)
	exchange := createExchange(t, skill, learner, models.ExchangeAccepted)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/cancel", exchange.ID), nil, authToken(t, outsider))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Either participant can cancel a non-terminal exchange.
	resp, body := doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/cancel", exchange.ID), nil, authToken(t, learner))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", dataField(body)["status"])

	// Terminal states are absorbing.
	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/api/exchanges/%d/cancel", exchange.ID), nil, authToken(t, teacher))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Completed or cancelled exchanges cannot be cancelled", body["message"])
}

func TestGetExchangeParticipantOnly(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	outsider := createUser(t, "outsider@example.com", "learner", true)
	skill := createSkill(t, teacher, category)
	exchange := createExchange(t, skill, learner, models.ExchangePending)

	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/api/exchanges/%d", exchange.ID), nil, authToken(t, outsider))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := doRequest(t, app, "GET", fmt.Sprintf("/api/exchanges/%d", exchange.ID), nil, authToken(t, learner))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(exchange.ID), dataField(body)["id"])
}

func TestGetMyExchangesBothDirections(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	user := createUser(t, "both@example.com", "both", true)
	other := createUser(t, "other@example.com", "both", true)
	ownSkill := createSkill(t, user, category)
	otherSkill := createSkill(t, other, category)

	// user teaches one exchange and learns in another.
	createExchange(t, ownSkill, other, models.ExchangePending)
	createExchange(t, otherSkill, user, models.ExchangeAccepted)

	resp, body := doRequest(t, app, "GET", "/api/exchanges", nil, authToken(t, user))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := dataField(body)
	learnerExchanges, _ := data["learner_exchanges"].([]any)
	teacherExchanges, _ := data["teacher_exchanges"].([]any)
	assert.Len(t, learnerExchanges, 1)
	assert.Len(t, teacherExchanges, 1)

	pagination, _ := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["learner_total"])
	assert.Equal(t, float64(1), pagination["teacher_total"])
}

func TestCreateExchangeAcceptsRFC3339Dates(t *testing.T) {
	app := setupApp(t)
	category := createCategory(t)
	teacher := createUser(t, "teacher@example.com", "teacher", true)
	learner := createUser(t, "learner@example.com", "learner", true)
	skill := createSkill(t, teacher, category)

	start := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	end := time.Now().Add(48 * time.Hour).Format(time.RFC3339)

	resp, _ := doRequest(t, app, "POST", "/api/exchanges", map[string]any{
		"skill_id":   skill.ID,
		"start_date": start,
		"end_date":   end,
	}, authToken(t, learner))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
