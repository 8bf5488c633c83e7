package services

import "errors"

var (
	// ErrUnsupportedFormat is returned when a document is neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrParseFailure is returned when a PDF or DOCX cannot be parsed.
	ErrParseFailure = errors.New("failed to parse document")

	// ErrSkillStore is returned when the skills file cannot be created or read.
	ErrSkillStore = errors.New("skill store unavailable")
)
