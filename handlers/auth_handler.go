package handlers

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/mwangiben/skill_share/configs"
	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/notifications"
	"github.com/mwangiben/skill_share/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// authUserID extracts the authenticated user's id from the verified JWT.
func authUserID(c *fiber.Ctx) uint {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := claims["user_id"].(float64)
	return uint(id)
}

func authTokenJTI(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	jti, _ := claims["jti"].(string)
	return jti
}

func emailVerificationHash(email string) string {
	sum := sha1.Sum([]byte(email))
	return hex.EncodeToString(sum[:])
}

func queueVerificationEmail(user *models.User) {
	appURL := config.Config("APP_URL")
	link := fmt.Sprintf("%s/api/email/verify/%d/%s", appURL, user.ID, emailVerificationHash(user.Email))

	notifications.Enqueue(notifications.Email{
		ToName:  user.Name,
		ToEmail: user.Email,
		Subject: "Verify Email Address - Skill Share",
		HTML: fmt.Sprintf(
			"<h1>Welcome to Skill Share!</h1><p>Please verify your email address by clicking the link below.</p><p><a href='%s'>Verify Email</a></p><p>If you did not create an account, no further action is required.</p>",
			link,
		),
	})
}

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,min=2,max=255"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role" validate:"required,oneof=learner teacher both"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  map[string][]string{"email": {"This email is already registered."}},
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
		Status:   "active",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Registration failed: " + err.Error()})
	}

	queueVerificationEmail(&user)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful! Please check your email to verify your account.",
		"data": fiber.Map{
			"user_id":              user.ID,
			"email":                user.Email,
			"role":                 user.Role,
			"pending_verification": true,
		},
	})
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid email or password"})
	}

	if !user.HasVerifiedEmail() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":    false,
			"message":    "Please verify your email before logging in",
			"unverified": true,
			"data":       fiber.Map{"email": user.Email},
		})
	}

	jti := uuid.New().String()
	if err := database.DB.Create(&models.AccessToken{JTI: jti, UserID: user.ID}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create token"})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"jti":     jti,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged in successfully",
		"data": fiber.Map{
			"user": fiber.Map{
				"id":         user.ID,
				"name":       user.Name,
				"email":      user.Email,
				"role":       user.Role,
				"avatar_url": user.AvatarURL,
				"rating":     user.Rating,
			},
			"token": t,
		},
	})
}

func LogoutUser(c *fiber.Ctx) error {
	jti := authTokenJTI(c)
	if err := database.DB.Where("jti = ?", jti).Delete(&models.AccessToken{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Logout failed"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func Me(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", authUserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to get user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"role":           user.Role,
			"status":         user.Status,
			"bio":            user.Bio,
			"avatar_url":     user.AvatarURL,
			"rating":         user.Rating,
			"total_reviews":  user.TotalReviews,
			"email_verified": user.HasVerifiedEmail(),
		},
	})
}
