package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ssudhiravinesh/blindsight/internal/extract"
)

// minPDFTextChars is the minimum extracted text length for a PDF to be
// considered text-based rather than a scanned image
const minPDFTextChars = 50

// pdfText extracts plain text from a PDF document, page by page
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", ErrPDFEncrypted
		}

		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var pages []string

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	text := extract.CleanText(strings.Join(pages, "\n\n"))
	if len(text) < minPDFTextChars {
		return "", ErrPDFNoText
	}

	return text, nil
}
