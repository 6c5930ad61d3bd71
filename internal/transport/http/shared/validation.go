package shared

import (
	"net/http"
	"slices"
	"strings"

	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
)

// ValidationIssue is one entry of details.fields in a validation_error.
type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator gathers issues from decoding, struct validation and ad hoc
// checks so a request is rejected once with all of them.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Add(field, reason string) {
	reason = strings.TrimSpace(reason)
	if v == nil || reason == "" {
		return
	}
	issue := ValidationIssue{Field: strings.TrimSpace(field), Reason: reason}
	if slices.Contains(v.issues, issue) {
		return
	}
	v.issues = append(v.issues, issue)
}

func (v *Validator) Merge(issues ...ValidationIssue) {
	for _, issue := range issues {
		v.Add(issue.Field, issue.Reason)
	}
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

// Issues returns the collected issues ordered by field, then reason.
func (v *Validator) Issues() []ValidationIssue {
	if !v.HasIssues() {
		return nil
	}
	out := slices.Clone(v.issues)
	slices.SortStableFunc(out, func(a, b ValidationIssue) int {
		if c := strings.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return strings.Compare(a.Reason, b.Reason)
	})
	return out
}

// Reject writes the validation_error response when there is anything to
// report and tells the caller to stop.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "payload validation failed",
		map[string]any{"fields": issues}, requestID)
}
