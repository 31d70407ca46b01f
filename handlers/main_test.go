package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "password123"

var dbCounter atomic.Int64

// setupApp wires a fresh app against a fresh named in-memory database so
// rate limiter and table state never bleed between tests.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Skill{},
		&models.Exchange{},
		&models.Message{},
		&models.Review{},
		&models.Bookmark{},
		&models.AccessToken{},
		&models.PasswordResetToken{},
		&models.Certificate{},
	))
	database.DB = db

	app := fiber.New()
	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.SkillRoutes(app)
	routes.ExchangeRoutes(app)
	routes.MessagingRoutes(app)
	routes.ReviewRoutes(app)
	routes.BookmarkRoutes(app)
	routes.UploadRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string, verified bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
		Status:   "active",
	}
	if verified {
		now := time.Now()
		user.EmailVerifiedAt = &now
	}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

// authToken mints a bearer token for user the same way login does.
func authToken(t *testing.T, user *models.User) string {
	t.Helper()
	jti := uuid.New().String()
	require.NoError(t, database.DB.Create(&models.AccessToken{JTI: jti, UserID: user.ID}).Error)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"jti":     jti,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func createCategory(t *testing.T) *models.Category {
	t.Helper()
	category := &models.Category{Name: "Programming", Description: "Programming skills", Icon: "💻"}
	require.NoError(t, database.DB.Create(category).Error)
	return category
}

func createSkill(t *testing.T, teacher *models.User, category *models.Category) *models.Skill {
	t.Helper()
	skill := &models.Skill{
		TeacherID:   teacher.ID,
		CategoryID:  category.ID,
		Title:       "Go for Beginners",
		Description: "An introduction to Go",
		Level:       "beginner",
		Duration:    "4 weeks",
		MaxStudents: 5,
	}
	require.NoError(t, database.DB.Create(skill).Error)
	return skill
}

func createExchange(t *testing.T, skill *models.Skill, learner *models.User, status string) *models.Exchange {
	t.Helper()
	exchange := &models.Exchange{
		SkillID:   skill.ID,
		LearnerID: learner.ID,
		TeacherID: skill.TeacherID,
		Status:    status,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	}
	require.NoError(t, database.DB.Create(exchange).Error)
	return exchange
}

// doRequest performs a JSON request and decodes the envelope.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func dataField(body map[string]any) map[string]any {
	data, _ := body["data"].(map[string]any)
	return data
}

func errorsField(body map[string]any) map[string]any {
	errs, _ := body["errors"].(map[string]any)
	return errs
}
