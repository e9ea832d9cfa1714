package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumeiq/resumeiq/internal/roles"
)

type roleStep struct {
	role    string
	catalog roles.Catalog

	disabled bool
	reason   string
}

// NewRoleStep scores the resume bullets against the named role. An empty
// role name disables the step.
func NewRoleStep(role string, catalog roles.Catalog) Step {
	step := &roleStep{role: strings.TrimSpace(role), catalog: catalog}
	if step.role == "" {
		step.Disable("no target role configured")
	}
	return step
}

func (s *roleStep) Name() string { return "role_match" }

func (s *roleStep) IsEnabled() bool { return !s.disabled }

func (s *roleStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *roleStep) Run(_ context.Context, doc *Document, report *Report) error {
	def, ok := s.catalog.Find(s.role)
	if !ok {
		return fmt.Errorf("unknown role %q (known roles: %s)", s.role, strings.Join(s.catalog.Names(), ", "))
	}

	match := &RoleMatch{
		Role:    s.role,
		Score:   roles.MeanScore(doc.Bullets, def),
		Bullets: len(doc.Bullets),
	}

	for _, bullet := range doc.Bullets {
		if score := roles.Score(bullet, def); score > match.BestScore {
			match.BestScore = score
		}
	}

	report.RoleMatch = match
	return nil
}
