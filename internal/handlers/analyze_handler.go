package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/ats-checker/internal/models"
	"alfredoptarigan/ats-checker/internal/services"
)

// ResumeField is the multipart form field carrying the uploaded résumé.
const ResumeField = "resume"

type AnalyzeHandler struct {
	analyzer    services.Analyzer
	maxFileSize int64
	log         logrus.FieldLogger
}

func NewAnalyzeHandler(
	analyzer services.Analyzer,
	maxFileSize int64,
	log logrus.FieldLogger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(ResumeField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Upload a resume (PDF/DOCX) in the '%s' field", ResumeField),
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	format, err := services.ParseFormat(fileHeader.Filename)
	if err != nil {
		h.log.WithField("filename", fileHeader.Filename).Warn("⚠️  Rejected unsupported upload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF and DOCX supported!",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), fileHeader.Filename, format, data)
	if err != nil {
		if errors.Is(err, services.ErrParseFailure) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("Could not read %s: the file looks damaged or is not a valid %s document", fileHeader.Filename, format),
			})
		}
		return err
	}

	return c.JSON(models.NewAnalysisResponse(analysis))
}
