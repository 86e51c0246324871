package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxPostLength    = 10000
	maxCommentLength = 2000
	maxImageBytes    = 5 * 1024 * 1024
)

var groupSlugRegex = regexp.MustCompile(`^[a-z0-9-]{1,30}$`)

// PostForm carries user input for creating or editing a post.
type PostForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

// Validate returns field errors keyed by field name. An empty map means
// the form is valid. The group slug itself is checked for shape only;
// existence is the caller's concern.
func (f PostForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "this field is required"
	} else if len(f.Text) > maxPostLength {
		errs["text"] = fmt.Sprintf("must not exceed %d characters", maxPostLength)
	}
	if f.Group != "" && !groupSlugRegex.MatchString(f.Group) {
		errs["group"] = "invalid group slug"
	}
	return errs
}

// CommentForm carries user input for commenting on a post. The post and
// author are never part of the form; the server binds them itself.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}

func (f CommentForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "this field is required"
	} else if len(f.Text) > maxCommentLength {
		errs["text"] = fmt.Sprintf("must not exceed %d characters", maxCommentLength)
	}
	return errs
}

// ValidateGroupSlug checks the URL-facing slug of a group.
func ValidateGroupSlug(slug string) error {
	if !groupSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 1-30 characters and contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ValidateImageUpload checks an uploaded image's declared content type and
// size, returning the canonical file extension for storage.
func ValidateImageUpload(contentType string, size int64) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	if size <= 0 {
		return "", fmt.Errorf("empty upload")
	}
	if size > maxImageBytes {
		return "", fmt.Errorf("image must not exceed %d bytes", maxImageBytes)
	}
	return ext, nil
}
