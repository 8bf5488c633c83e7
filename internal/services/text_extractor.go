package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/sirupsen/logrus"
)

// DocumentFormat identifies how an uploaded document is parsed.
type DocumentFormat int

const (
	FormatUnknown DocumentFormat = iota
	FormatPDF
	FormatDOCX
)

func (f DocumentFormat) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// ParseFormat resolves the document format from the filename suffix.
func ParseFormat(filename string) (DocumentFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q (only PDF and DOCX are supported)", ErrUnsupportedFormat, ext)
	}
}

type TextExtractor interface {
	Extract(format DocumentFormat, data []byte) (string, error)
}

type textExtractor struct {
	log logrus.FieldLogger
}

func NewTextExtractor(log logrus.FieldLogger) TextExtractor {
	return &textExtractor{
		log: log,
	}
}

// Extract returns the lowercased plain text of the document.
// Pages or paragraphs without extractable text contribute nothing.
func (e *textExtractor) Extract(format DocumentFormat, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch format {
	case FormatPDF:
		text, err = e.extractPDF(data)
	case FormatDOCX:
		text, err = e.extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		e.log.WithField("format", format.String()).Warn("⚠️  No text content found in document")
	}

	return strings.ToLower(text), nil
}

func (e *textExtractor) extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf: %v", ErrParseFailure, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %w", ErrParseFailure, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := plainText(page)
		if err != nil {
			e.log.WithError(err).WithField("page", pageIndex).Warn("⚠️  Skipping unreadable PDF page")
			continue
		}
		if pageText == "" {
			continue
		}

		textBuilder.WriteString(pageText)
	}

	return textBuilder.String(), nil
}

// plainText isolates a single page so a broken content stream only costs that page.
func plainText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page content: %v", r)
		}
	}()

	return page.GetPlainText(nil)
}

func (e *textExtractor) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %w", ErrParseFailure, err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: docx body: %w", ErrParseFailure, err)
	}

	return strings.Join(paragraphs, " "), nil
}

// docxHidden lists containers whose text does not belong to the host paragraph.
// Word writes each text box twice, once per mc:AlternateContent branch.
var docxHidden = map[string]bool{
	"AlternateContent": true,
	"Fallback":         true,
	"drawing":          true,
	"pict":             true,
	"object":           true,
	"txbxContent":      true,
}

// docxParagraphs returns the run text of each body-level w:p in document order.
// Paragraphs nested in tables, text boxes and similar containers are not included.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack       []string
		paragraphs  []string
		current     strings.Builder
		inParagraph bool
		inText      bool
		hidden      int
	)

	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if name == "p" && !inParagraph && parent() == "body" {
				inParagraph = true
				current.Reset()
			} else if inParagraph && docxHidden[name] {
				hidden++
			} else if inParagraph && hidden == 0 {
				switch name {
				case "t":
					inText = true
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}
			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if docxHidden[t.Name.Local] && hidden > 0 {
				hidden--
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph && parent() == "body" {
					paragraphs = append(paragraphs, current.String())
					inParagraph = false
				}
			}

		case xml.CharData:
			if inParagraph && inText && hidden == 0 {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
