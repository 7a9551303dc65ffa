package domain

import (
	"strings"
	"time"
)

// FormMeta carries the fields shared by every stored form record. The id is
// assigned by the store on insert; facility and createdBy never change after
// creation.
type FormMeta struct {
	ID        string    `json:"id,omitempty"`
	Facility  string    `json:"facility"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the shared fields to the generic store implementations.
func (m *FormMeta) Meta() *FormMeta { return m }

// Rule is one declared validation check for a form field. Each form type
// enumerates its rules in a fixed order so the field list and constraints are
// statically readable instead of scattered through handler code.
type Rule struct {
	Field   string
	Message string
	OK      func() bool
}

// Violations evaluates every rule and collects the messages of the failing
// ones. Submission handlers report only the first message to the caller.
func Violations(rules []Rule) []string {
	var out []string
	for _, r := range rules {
		if !r.OK() {
			out = append(out, r.Message)
		}
	}
	return out
}

func notEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func optionalOneOf(s string, allowed []string) bool {
	return s == "" || oneOf(s, allowed)
}

// isDate reports whether s is a plain ISO calendar date (YYYY-MM-DD).
func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func optionalDate(s string) bool {
	return s == "" || isDate(s)
}

func optionalRange(v *int, lo, hi int) bool {
	return v == nil || (*v >= lo && *v <= hi)
}

func optionalMin(v *int, lo int) bool {
	return v == nil || *v >= lo
}
