package analysis

import (
	"context"

	"github.com/resumeiq/resumeiq/internal/extract"
)

type contactsStep struct{}

// NewContactsStep collects emails and links found in the resume text.
func NewContactsStep() Step {
	return &contactsStep{}
}

func (s *contactsStep) Name() string { return "contacts" }

func (s *contactsStep) IsEnabled() bool { return true }

func (s *contactsStep) Disable(string) {}

func (s *contactsStep) Run(_ context.Context, doc *Document, report *Report) error {
	report.Contacts = extract.FindContacts(doc.Text)
	return nil
}
