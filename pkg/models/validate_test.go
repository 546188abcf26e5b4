package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kutbudev/agri-api/pkg/models"
)

func TestValidateNewPost(t *testing.T) {
	longTitle := strings.Repeat("t", models.TitleMaxLen+1)
	longSummary := strings.Repeat("s", models.SummaryMaxLen+1)

	tests := []struct {
		name    string
		title   string
		content string
		summary string
		fields  []string
	}{
		{"valid", "Title", "Content", "Summary", nil},
		{"valid at limits", strings.Repeat("t", models.TitleMaxLen), "c", strings.Repeat("s", models.SummaryMaxLen), nil},
		// Limits count characters, not bytes.
		{"valid multibyte at limits", strings.Repeat("é", models.TitleMaxLen), "c", strings.Repeat("漢", models.SummaryMaxLen), nil},
		{"long multibyte title", strings.Repeat("é", models.TitleMaxLen+1), "c", "Summary", []string{"title"}},
		{"empty title", "  ", "Content", "Summary", []string{"title"}},
		{"long title", longTitle, "Content", "Summary", []string{"title"}},
		{"empty content", "Title", " \n ", "Summary", []string{"content"}},
		{"empty summary", "Title", "Content", "", []string{"summary"}},
		{"long summary", "Title", "Content", longSummary, []string{"summary"}},
		{"all invalid", "", "", "", []string{"title", "content", "summary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := models.ValidateNewPost(tt.title, tt.content, tt.summary)
			if len(tt.fields) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidatePostPatch(t *testing.T) {
	longTitle := strings.Repeat("t", models.TitleMaxLen+1)

	// Blank means "no change", so blanks are not a violation here.
	blank := ""
	assert.Nil(t, models.ValidatePostPatch(&blank, &blank))
	assert.Nil(t, models.ValidatePostPatch(nil, nil))

	errs := models.ValidatePostPatch(&longTitle, nil)
	assert.Contains(t, errs, "title")

	multibyteAtLimit := strings.Repeat("é", models.TitleMaxLen)
	assert.Nil(t, models.ValidatePostPatch(&multibyteAtLimit, nil))
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		username string
		password string
		fields   []string
	}{
		{"valid", "a@x.com", "a", "secret123", nil},
		{"empty email", "", "a", "secret123", []string{"email"}},
		{"no at sign", "ax.com", "a", "secret123", []string{"email"}},
		{"at sign first", "@x.com", "a", "secret123", []string{"email"}},
		{"at sign last", "a@", "a", "secret123", []string{"email"}},
		{"empty username", "a@x.com", "  ", "secret123", []string{"username"}},
		{"short password", "a@x.com", "a", "short", []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := models.ValidateRegistration(tt.email, tt.username, tt.password)
			if len(tt.fields) == 0 {
				assert.Nil(t, errs)
				return
			}
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}
