package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	in := "Line one   with spaces\t\nLine two  \r\n\r\n\r\n\r\nLine three"
	out := CleanText(in)

	assert.Equal(t, "Line one with spaces\nLine two\n\nLine three", out)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\n  "))
}

func TestDecode_PlainText(t *testing.T) {
	text, err := Decode("text/plain; charset=utf-8", []byte("my resume"))
	require.NoError(t, err)
	assert.Equal(t, "my resume", text)
}

func TestDecode_UnknownTypeFallsBackToRaw(t *testing.T) {
	text, err := Decode("application/octet-stream", []byte("raw bytes"))
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", text)
}

func TestDecodeHTML(t *testing.T) {
	html := `<html><head><style>.x{}</style></head><body>
		<nav>Menu</nav>
		<p>Senior Engineer at Acme Corp</p>
		<script>alert(1)</script>
	</body></html>`

	text, err := DecodeHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer at Acme Corp")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "Menu")
}

func TestDecode_InvalidPDF(t *testing.T) {
	_, err := Decode("application/pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p><w:p><w:r><w:t>Acme Corp</w:t></w:r></w:p>`
	text := stripDocxTags(content)

	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "Acme Corp")
	assert.NotContains(t, text, "<w:")
	// Paragraphs become separate lines.
	assert.Contains(t, text, "Software Engineer\n")
}

func TestDecodeFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain resume text"), 0o600))

	text, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestFetchResume_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("5 years of experience with React  \n\n\n\nat Acme Corp"))
	}))
	defer srv.Close()

	resume, err := FetchResume(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "5 years of experience with React\n\nat Acme Corp", resume.Text)
	assert.Positive(t, resume.RawLength)
}

func TestFetchResume_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchResume(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestFetchResume_InvalidURL(t *testing.T) {
	_, err := FetchResume(context.Background(), "not-a-url", nil)
	assert.Error(t, err)
}

func TestFetchResume_UndecodableBinaryYieldsEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("definitely not a pdf"))
	}))
	defer srv.Close()

	resume, err := FetchResume(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "", resume.Text)
	assert.True(t, strings.Contains(resume.ContentType, "pdf"))
}
