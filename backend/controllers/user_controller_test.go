package controllers_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"dishashakti/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetProfile(t *testing.T) {
	user := createUser(t, "Gita", "gita@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "gita@example.com", "password123")

	var result map[string]interface{}
	resp := doRequest(t, "GET", "/api/profile", nil, token, &result)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(user.ID), result["id"])
	assert.Equal(t, "Gita", result["name"])
	assert.Equal(t, "gita@example.com", result["email"])
	assert.Equal(t, models.RoleLearner, result["role"])
	assert.NotContains(t, result, "password")
	assert.NotContains(t, result, "password_hash")
}

func TestGetProfileMissingToken(t *testing.T) {
	resp := doRequest(t, "GET", "/api/profile", nil, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfileTamperedToken(t *testing.T) {
	createUser(t, "Uma", "uma@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "uma@example.com", "password123")

	tampered := token[:len(token)-2] + "xx"
	resp := doRequest(t, "GET", "/api/profile", nil, tampered, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetProfileExpiredToken(t *testing.T) {
	user := createUser(t, "Sita", "sita@example.com", "password123", models.RoleLearner)

	resp := doRequest(t, "GET", "/api/profile", nil, expiredToken(t, user), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetProfileDeletedUser(t *testing.T) {
	user := createUser(t, "Gone", "gone@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "gone@example.com", "password123")

	assert.NoError(t, db.Unscoped().Delete(&user).Error)

	resp := doRequest(t, "GET", "/api/profile", nil, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnrollIdempotent(t *testing.T) {
	createUser(t, "Devi", "devi@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "devi@example.com", "password123")

	course := models.Course{Title: "Budgeting Basics", Category: "finance", Level: "beginner"}
	assert.NoError(t, db.Create(&course).Error)

	var result map[string]interface{}
	resp := doRequest(t, "PUT", "/api/profile", map[string]interface{}{
		"courseId": course.ID,
	}, token, &result)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := result["user"].(map[string]interface{})
	completed := user["courses_completed"].([]interface{})
	assert.Len(t, completed, 1)
	assert.Equal(t, float64(course.ID), completed[0])

	// Enrolling again must not add a second entry
	resp = doRequest(t, "PUT", "/api/profile", map[string]interface{}{
		"courseId": course.ID,
	}, token, &result)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	user = result["user"].(map[string]interface{})
	completed = user["courses_completed"].([]interface{})
	assert.Len(t, completed, 1)
}

func TestEnrollDanglingCourseAccepted(t *testing.T) {
	createUser(t, "Mala", "mala@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "mala@example.com", "password123")

	// No existence check on the course ID
	var result map[string]interface{}
	resp := doRequest(t, "PUT", "/api/profile", map[string]interface{}{
		"courseId": 999999,
	}, token, &result)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := result["user"].(map[string]interface{})
	completed := user["courses_completed"].([]interface{})
	assert.Len(t, completed, 1)
}

func TestProtectedEndpointsRejectBadTokens(t *testing.T) {
	user := createUser(t, "Tara", "tara@example.com", "password123", models.RoleAdmin)

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/api/profile"},
		{"PUT", "/api/profile"},
		{"POST", "/api/courses"},
	}

	for _, ep := range protected {
		resp := doRequest(t, ep.method, ep.path, map[string]interface{}{}, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
			fmt.Sprintf("%s %s without token", ep.method, ep.path))

		resp = doRequest(t, ep.method, ep.path, map[string]interface{}{}, "not.a.token", nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode,
			fmt.Sprintf("%s %s with tampered token", ep.method, ep.path))

		resp = doRequest(t, ep.method, ep.path, map[string]interface{}{}, expiredToken(t, user), nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode,
			fmt.Sprintf("%s %s with expired token", ep.method, ep.path))
	}
}

// Full walkthrough: register, login, read profile, enroll twice.
func TestRegisterLoginEnrollScenario(t *testing.T) {
	resp := doRequest(t, "POST", "/api/register", map[string]string{
		"name":     "A",
		"email":    "a@x.com",
		"password": "p1",
	}, "", nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	token := loginToken(t, "a@x.com", "p1")

	var profile map[string]interface{}
	resp = doRequest(t, "GET", "/api/profile", nil, token, &profile)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "A", profile["name"])
	assert.Equal(t, "a@x.com", profile["email"])
	assert.Empty(t, profile["courses_completed"])

	course := models.Course{Title: "Intro to Spreadsheets", Category: "tech", Level: "beginner"}
	assert.NoError(t, db.Create(&course).Error)

	var result map[string]interface{}
	resp = doRequest(t, "PUT", "/api/profile", map[string]interface{}{"courseId": course.ID}, token, &result)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	completed := result["user"].(map[string]interface{})["courses_completed"].([]interface{})
	assert.Equal(t, []interface{}{float64(course.ID)}, completed)

	resp = doRequest(t, "PUT", "/api/profile", map[string]interface{}{"courseId": course.ID}, token, &result)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	completed = result["user"].(map[string]interface{})["courses_completed"].([]interface{})
	assert.Equal(t, []interface{}{float64(course.ID)}, completed)
}

func TestProfileBodyNeverContainsPassword(t *testing.T) {
	createUser(t, "Veda", "veda@example.com", "password123", models.RoleLearner)
	token := loginToken(t, "veda@example.com", "password123")

	resp := doRequest(t, "GET", "/api/profile", nil, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(body)), "password")
}
