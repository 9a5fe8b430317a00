package services

import (
	"strings"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
)

type RegistrationStep string

const (
	StepRole    RegistrationStep = "role"
	StepPlan    RegistrationStep = "plan"
	StepDetails RegistrationStep = "details"
)

const (
	DefaultRegistrationRole = models.RoleStudent
	DefaultRegistrationPlan = policy.TierProfessional
)

// RegistrationFlow is the state of the sign-up wizard.
type RegistrationFlow struct {
	Step RegistrationStep `json:"step"`
	Role string           `json:"role"`
	Plan policy.Tier      `json:"plan,omitempty"`
}

// NewRegistrationFlow builds the starting state from the ?role= and ?plan=
// query parameters. Unrecognised values fall back to the defaults. A valid
// plan parameter means the plan was already chosen, so the flow opens on
// the details step.
func NewRegistrationFlow(roleParam, planParam string) RegistrationFlow {
	f := RegistrationFlow{Step: StepRole, Role: ParseRole(roleParam), Plan: DefaultRegistrationPlan}

	if t, ok := policy.ParseTier(planParam); ok {
		f.Plan = t
		f.Step = StepDetails
	}
	if f.Role == models.RoleInterviewer {
		f.Plan = ""
	}
	return f
}

// ParseRole accepts the two self-service roles and falls back to student.
func ParseRole(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.RoleInterviewer:
		return models.RoleInterviewer
	case models.RoleStudent:
		return models.RoleStudent
	}
	return DefaultRegistrationRole
}

// WithRole switches the role chosen on the first step.
func (f RegistrationFlow) WithRole(role string) RegistrationFlow {
	f.Role = ParseRole(role)
	if f.Role == models.RoleInterviewer {
		f.Plan = ""
	} else if f.Plan == "" {
		f.Plan = DefaultRegistrationPlan
	}
	return f
}

func (f RegistrationFlow) Next() RegistrationFlow {
	switch f.Step {
	case StepRole:
		if f.Role == models.RoleInterviewer {
			f.Step = StepDetails
		} else {
			f.Step = StepPlan
		}
	case StepPlan:
		f.Step = StepDetails
	}
	return f
}

// Previous walks back one step. Interviewers never see the plan step in
// either direction.
func (f RegistrationFlow) Previous() RegistrationFlow {
	switch f.Step {
	case StepDetails:
		if f.Role == models.RoleInterviewer {
			f.Step = StepRole
		} else {
			f.Step = StepPlan
		}
	case StepPlan:
		f.Step = StepRole
	}
	return f
}

// StoredPlan is the plan label persisted on the new user.
func (f RegistrationFlow) StoredPlan() string {
	if f.Role == models.RoleInterviewer {
		return string(policy.TierFree)
	}
	return string(policy.Resolve(string(f.Plan)))
}
