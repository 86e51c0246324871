package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFormValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		form      PostForm
		wantField string
	}{
		{"Valid", PostForm{Text: "hello world"}, ""},
		{"Valid With Group", PostForm{Text: "hello", Group: "cats"}, ""},
		{"Empty Text", PostForm{Text: ""}, "text"},
		{"Whitespace Only", PostForm{Text: "   \n\t"}, "text"},
		{"Too Long", PostForm{Text: strings.Repeat("a", 10001)}, "text"},
		{"Bad Group Slug", PostForm{Text: "ok", Group: "Not A Slug"}, "group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestCommentFormValidate(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CommentForm{Text: "nice post"}.Validate())
	assert.Contains(t, CommentForm{Text: ""}.Validate(), "text")
	assert.Contains(t, CommentForm{Text: strings.Repeat("b", 2001)}.Validate(), "text")
}

func TestValidateGroupSlug(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateGroupSlug("cats"))
	assert.NoError(t, ValidateGroupSlug("go-lang-2"))
	assert.Error(t, ValidateGroupSlug(""))
	assert.Error(t, ValidateGroupSlug("Has Upper"))
	assert.Error(t, ValidateGroupSlug("under_score"))
	assert.Error(t, ValidateGroupSlug(strings.Repeat("s", 31)))
}

func TestValidateImageUpload(t *testing.T) {
	t.Parallel()

	ext, err := ValidateImageUpload("image/jpeg", 1024)
	assert.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	ext, err = ValidateImageUpload("IMAGE/PNG", 1024)
	assert.NoError(t, err)
	assert.Equal(t, ".png", ext)

	_, err = ValidateImageUpload("application/pdf", 1024)
	assert.Error(t, err)

	_, err = ValidateImageUpload("image/jpeg", 0)
	assert.Error(t, err)

	_, err = ValidateImageUpload("image/jpeg", 6*1024*1024)
	assert.Error(t, err)
}

func TestValidateUsernameReservedRoutes(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("regular_user"))
	assert.Error(t, ValidateUsername("new"))
	assert.Error(t, ValidateUsername("follow"))
	assert.Error(t, ValidateUsername("group"))
	assert.Error(t, ValidateUsername("auth"))
}
