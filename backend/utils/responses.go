package utils

import "github.com/gofiber/fiber/v2"

// Message sends a JSON body of the shape {"message": ...} with the given
// status. Every error path in the API uses this shape.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// Created sends a 201 response.
func Created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// BadRequest sends a 400 response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 response.
func Forbidden(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 response.
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 response.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}
