package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types we decode beyond plain text.
const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
)

// Decode converts resume file bytes to plain text based on content type.
// Unknown content types are treated as text, mirroring how the upload
// pipeline falls back to the raw response body.
func Decode(contentType string, data []byte) (string, error) {
	switch {
	case strings.Contains(contentType, mimePDF):
		return decodePDF(data)
	case strings.Contains(contentType, mimeDocx):
		return decodeDocx(data)
	case strings.Contains(contentType, mimeHTML):
		return DecodeHTML(string(data))
	default:
		return string(data), nil
	}
}

// DecodeFile reads a local resume file and decodes it by extension.
// Used by the CLI, where there is no content-type header to go on.
func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return decodePDF(data)
	case ".docx":
		return decodeDocx(data)
	case ".html", ".htm":
		return DecodeHTML(string(data))
	default:
		return string(data), nil
	}
}

// decodePDF extracts plain text from a PDF, page by page. Pages that fail
// to decode are skipped; a resume with a few unreadable pages still yields
// signal from the rest.
func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// decodeDocx extracts the document content from a DOCX file.
func decodeDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags removes the WordprocessingML markup around the text runs,
// inserting line breaks at paragraph boundaries.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// DecodeHTML strips an HTML document down to its visible body text.
// Script, style, and navigation chrome are removed first.
func DecodeHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}
