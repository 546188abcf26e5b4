package models

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// FieldErrors maps a field name to the constraint it violated.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// ValidateNewPost checks the required fields of a create request.
// Returns nil when everything passes.
func ValidateNewPost(title, content, summary string) FieldErrors {
	errs := FieldErrors{}

	title = strings.TrimSpace(title)
	if title == "" {
		errs["title"] = "must not be empty"
	} else if utf8.RuneCountInString(title) > TitleMaxLen {
		errs["title"] = fmt.Sprintf("must be at most %d characters", TitleMaxLen)
	}

	if strings.TrimSpace(content) == "" {
		errs["content"] = "must not be empty"
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		errs["summary"] = "must not be empty"
	} else if utf8.RuneCountInString(summary) > SummaryMaxLen {
		errs["summary"] = fmt.Sprintf("must be at most %d characters", SummaryMaxLen)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidatePostPatch checks the optional fields of an edit request.
// Only length limits apply: blank values mean "leave unchanged" and are
// therefore not an error here.
func ValidatePostPatch(title, summary *string) FieldErrors {
	errs := FieldErrors{}

	if title != nil && utf8.RuneCountInString(strings.TrimSpace(*title)) > TitleMaxLen {
		errs["title"] = fmt.Sprintf("must be at most %d characters", TitleMaxLen)
	}
	if summary != nil && utf8.RuneCountInString(strings.TrimSpace(*summary)) > SummaryMaxLen {
		errs["summary"] = fmt.Sprintf("must be at most %d characters", SummaryMaxLen)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateRegistration checks a registration request.
func ValidateRegistration(email, username, password string) FieldErrors {
	errs := FieldErrors{}

	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "must not be empty"
	} else if at := strings.Index(email, "@"); at < 1 || at == len(email)-1 {
		errs["email"] = "must be a valid email address"
	}

	if strings.TrimSpace(username) == "" {
		errs["username"] = "must not be empty"
	}

	if len(password) < 8 {
		errs["password"] = "must be at least 8 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
