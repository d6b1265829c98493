package controllers

import (
	"errors"
	"strconv"

	"dishashakti/backend/config"
	"dishashakti/backend/models"
	"dishashakti/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

type ModuleInput struct {
	Title      string `json:"title" validate:"required"`
	ContentURL string `json:"content_url" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=video text quiz"`
}

type CreateCourseRequest struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Category    string        `json:"category" validate:"required,oneof=finance tech"`
	Level       string        `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Modules     []ModuleInput `json:"modules" validate:"dive"`
}

// ListCourses godoc
// @Summary List courses
// @Description Returns all courses with their modules
// @Tags courses
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Preload("Modules", orderedModules).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Error fetching courses: "+err.Error())
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, coursePayload(course))
	}

	return c.JSON(result)
}

// GetCourse godoc
// @Summary Get a single course
// @Description Returns one course by ID with its modules
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Modules", orderedModules).First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Error fetching course: "+err.Error())
	}

	return c.JSON(coursePayload(course))
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course with its modules; admin role required
// @Tags courses
// @Accept json
// @Produce json
// @Param input body CreateCourseRequest true "Course data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if fieldErrors := utils.ValidateStruct(input); fieldErrors != nil {
		return utils.InternalServerError(c, utils.ValidationMessage(fieldErrors))
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       input.Level,
	}
	for i, m := range input.Modules {
		course.Modules = append(course.Modules, models.Module{
			Title:         m.Title,
			ContentURL:    m.ContentURL,
			Type:          m.Type,
			SequenceOrder: i,
		})
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Error creating course: "+err.Error())
	}

	return utils.Created(c, fiber.Map{
		"message": "Course created successfully",
		"course":  coursePayload(course),
	})
}

func orderedModules(db *gorm.DB) *gorm.DB {
	return db.Order("sequence_order")
}

func coursePayload(course models.Course) fiber.Map {
	modules := make([]fiber.Map, 0, len(course.Modules))
	for _, m := range course.Modules {
		modules = append(modules, fiber.Map{
			"id":          m.ID,
			"title":       m.Title,
			"content_url": m.ContentURL,
			"type":        m.Type,
		})
	}

	return fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"category":    course.Category,
		"level":       course.Level,
		"modules":     modules,
	}
}
