package controllers

import (
	"errors"

	"dishashakti/backend/config"
	"dishashakti/backend/middleware"
	"dishashakti/backend/models"
	"dishashakti/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

type EnrollRequest struct {
	CourseID uint `json:"courseId"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile without the password
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Error fetching user profile: "+err.Error())
	}

	return c.JSON(userPayload(user))
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Adds a course to the authenticated user's completed set (idempotent)
// @Tags users
// @Accept json
// @Produce json
// @Param input body EnrollRequest true "Course to enroll in"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)

	var input EnrollRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Error updating profile: "+err.Error())
	}

	// The course ID is not checked against the courses table; dangling
	// references are accepted.
	if user.CompleteCourse(input.CourseID) {
		if err := uc.DB.Save(&user).Error; err != nil {
			return utils.InternalServerError(c, "Error updating profile: "+err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    userPayload(user),
	})
}

// userPayload renders a user without sensitive fields.
func userPayload(user models.User) fiber.Map {
	return fiber.Map{
		"id":                       user.ID,
		"name":                     user.Name,
		"email":                    user.Email,
		"role":                     user.Role,
		"phone":                    user.Phone,
		"address":                  user.Address,
		"financial_literacy_level": user.FinancialLiteracyLevel,
		"tech_skills":              user.TechSkills,
		"job_preferences":          user.JobPreferences,
		"progress":                 user.Progress,
		"courses_completed":        user.CoursesCompleted,
		"created_at":               user.CreatedAt,
	}
}
