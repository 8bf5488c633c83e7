package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

type SkillsHandler struct {
	analyzer services.Analyzer
}

func NewSkillsHandler(analyzer services.Analyzer) *SkillsHandler {
	return &SkillsHandler{
		analyzer: analyzer,
	}
}

// HandleListSkills handles GET /skills
func (h *SkillsHandler) HandleListSkills(c *fiber.Ctx) error {
	skills := h.analyzer.Skills()
	return c.JSON(models.SkillsResponse{
		Skills: skills,
		Count:  len(skills),
	})
}
