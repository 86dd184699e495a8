package security

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// File upload limits, shared with the upload handlers.
const (
	MaxFileSize    = 10 * 1024 * 1024 // 10MB
	MaxFiles       = 10
	MaxFilenameLen = 255
)

// AllowedImageTypes lists the accepted upload MIME types, in the order they
// are reported back to the client on rejection.
var AllowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

var allowedImageType = map[string]bool{}

func init() {
	for _, t := range AllowedImageTypes {
		allowedImageType[t] = true
	}
}

// privateHostPatterns match loopback, private and link-local hosts. This is
// an SSRF guard for fetched image URLs, not general IP validation.
var privateHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^localhost$`),
	regexp.MustCompile(`^127\.`),
	regexp.MustCompile(`^10\.`),
	regexp.MustCompile(`^172\.(1[6-9]|2[0-9]|3[0-1])\.`),
	regexp.MustCompile(`^192\.168\.`),
	regexp.MustCompile(`^169\.254\.`),
	regexp.MustCompile(`^::1$`),
	regexp.MustCompile(`^fc00:`),
	regexp.MustCompile(`^fe80:`),
}

var apiKeyCharset = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileInfo describes an uploaded file for validation without holding its
// contents.
type FileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// ValidateImageFile checks type, size and filename length of one upload.
func ValidateImageFile(f FileInfo) error {
	if !allowedImageType[f.MimeType] {
		return fmt.Errorf(
			"invalid file type. Allowed types: %s",
			strings.Join(AllowedImageTypes, ", "),
		)
	}

	if f.Size > MaxFileSize {
		return fmt.Errorf(
			"file size exceeds maximum allowed size of %dMB",
			MaxFileSize/1024/1024,
		)
	}

	if len(f.Name) > MaxFilenameLen {
		return errors.New("file name is too long")
	}

	return nil
}

// ValidateImageFiles checks a batch of uploads, stopping at the first
// invalid file.
func ValidateImageFiles(files []FileInfo) error {
	if len(files) == 0 {
		return errors.New("no files provided")
	}

	if len(files) > MaxFiles {
		return fmt.Errorf("maximum %d files allowed", MaxFiles)
	}

	for _, f := range files {
		if err := ValidateImageFile(f); err != nil {
			return err
		}
	}

	return nil
}

// ValidateImageURL rejects anything that is not an absolute http(s) URL, and
// any URL whose host falls in a loopback/private/link-local range.
func ValidateImageURL(raw string) error {
	if raw == "" {
		return errors.New("URL is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return errors.New("invalid URL format")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("only HTTP and HTTPS protocols are allowed")
	}

	hostname := strings.ToLower(parsed.Hostname())
	for _, pattern := range privateHostPatterns {
		if pattern.MatchString(hostname) {
			return errors.New("private IP addresses are not allowed")
		}
	}

	return nil
}

// ValidateAPIKey checks the format of an external API key before it is ever
// sent upstream.
func ValidateAPIKey(key string) error {
	trimmed := strings.TrimSpace(key)

	if trimmed == "" {
		return errors.New("API key is required")
	}

	if len(trimmed) < 20 {
		return errors.New("API key is too short")
	}

	if len(trimmed) > 200 {
		return errors.New("API key is too long")
	}

	if !apiKeyCharset.MatchString(trimmed) {
		return errors.New("API key contains invalid characters")
	}

	return nil
}
