package registration

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMask replaces the password in a submission summary.
const PasswordMask = "********"

// bcrypt only uses the first 72 bytes and rejects longer input outright.
const bcryptMaxInput = 72

func hashInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxInput {
		b = b[:bcryptMaxInput]
	}
	return b
}

// SummaryEntry is one line of a submission summary.
type SummaryEntry struct {
	Field FieldName `json:"field"`
	Label string    `json:"label"`
	Value string    `json:"value"`
}

// Submission is the immutable record of a successfully submitted form.
// The raw password is not kept: the summary shows PasswordMask and the
// bcrypt hash is stored instead.
type Submission struct {
	Entries      []SummaryEntry `json:"entries"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	PasswordHash []byte         `json:"-"`
}

func newSubmission(fields Fields, at time.Time, cost int) (*Submission, error) {
	hash, err := bcrypt.GenerateFromPassword(hashInput(fields.Get(Password)), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	entries := make([]SummaryEntry, 0, len(AllFields))
	for _, name := range AllFields {
		value := fields.Get(name)
		if name == Password {
			value = PasswordMask
		}
		entries = append(entries, SummaryEntry{Field: name, Label: name.Label(), Value: value})
	}

	return &Submission{
		Entries:      entries,
		SubmittedAt:  at,
		PasswordHash: hash,
	}, nil
}

// Value returns the summary value of name, or "" if absent.
func (s *Submission) Value(name FieldName) string {
	for _, e := range s.Entries {
		if e.Field == name {
			return e.Value
		}
	}
	return ""
}

// CheckPassword reports whether password matches the submitted one.
func (s *Submission) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(s.PasswordHash, hashInput(password)) == nil
}
