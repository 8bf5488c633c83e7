package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the API routes under api.
func Register(api fiber.Router, analyzeHandler *AnalyzeHandler, skillsHandler *SkillsHandler) {
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/skills", skillsHandler.HandleListSkills)
}

// ErrorHandler renders every unhandled error as {"error", "code"} JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
