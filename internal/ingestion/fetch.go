// Package ingestion turns an uploaded resume into plain text ready for
// profile extraction. It fetches the file over HTTP and decodes PDF, DOCX,
// HTML, and plain-text content; binary decoding failures degrade to empty
// text rather than blocking the caller.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout for resume fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerGPT/1.0)"

// MaxResumeBytes caps how much of a resume we will download, matching the
// upload limit enforced at the client.
const MaxResumeBytes = 5 << 20

// Resume holds the fetched and decoded content of one uploaded resume.
type Resume struct {
	URL         string
	ContentType string
	Text        string
	RawLength   int
}

// Error represents an error while fetching or decoding a resume.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("resume fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FetchResume downloads a resume file and decodes it to plain text based on
// the response content type. The returned text is cleaned but not yet
// analyzed; callers hand it to the extraction package.
func FetchResume(ctx context.Context, urlStr string, opts *Options) (*Resume, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResumeBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	contentType := resp.Header.Get("Content-Type")
	text, err := Decode(contentType, body)
	if err != nil {
		// A resume we fetched but cannot decode is "no signal", not a
		// hard failure; the extractor handles empty text.
		text = ""
	}

	return &Resume{
		URL:         urlStr,
		ContentType: contentType,
		Text:        CleanText(text),
		RawLength:   len(body),
	}, nil
}
