package services

import (
	"testing"

	"github.com/anjiri1684/mockprep/models"
	"github.com/anjiri1684/mockprep/policy"
)

func TestNewRegistrationFlow(t *testing.T) {
	tests := []struct {
		role, plan string
		want       RegistrationFlow
	}{
		{"", "", RegistrationFlow{Step: StepRole, Role: models.RoleStudent, Plan: policy.TierProfessional}},
		{"admin", "gold", RegistrationFlow{Step: StepRole, Role: models.RoleStudent, Plan: policy.TierProfessional}},
		{"student", "Basic", RegistrationFlow{Step: StepDetails, Role: models.RoleStudent, Plan: policy.TierBasic}},
		{"interviewer", "", RegistrationFlow{Step: StepRole, Role: models.RoleInterviewer}},
		{"interviewer", "enterprise", RegistrationFlow{Step: StepDetails, Role: models.RoleInterviewer}},
	}
	for _, tt := range tests {
		if got := NewRegistrationFlow(tt.role, tt.plan); got != tt.want {
			t.Errorf("NewRegistrationFlow(%q, %q) = %+v, want %+v", tt.role, tt.plan, got, tt.want)
		}
	}
}

func TestRegistrationSteps(t *testing.T) {
	student := NewRegistrationFlow("student", "")
	if s := student.Next(); s.Step != StepPlan {
		t.Errorf("student role -> %s, want plan", s.Step)
	}
	if s := student.Next().Next(); s.Step != StepDetails {
		t.Errorf("student plan -> %s, want details", s.Step)
	}
	if s := student.Next().Next().Next(); s.Step != StepDetails {
		t.Errorf("details is the last step, got %s", s.Step)
	}
	if s := student.Next().Next().Previous(); s.Step != StepPlan {
		t.Errorf("student details back -> %s, want plan", s.Step)
	}
	if s := student.Previous(); s.Step != StepRole {
		t.Errorf("role is the first step, got %s", s.Step)
	}

	interviewer := student.WithRole("interviewer")
	if s := interviewer.Next(); s.Step != StepDetails {
		t.Errorf("interviewer role -> %s, want details", s.Step)
	}
	if s := interviewer.Next().Previous(); s.Step != StepRole {
		t.Errorf("interviewer details back -> %s, want role", s.Step)
	}
	if interviewer.StoredPlan() != string(policy.TierFree) {
		t.Errorf("interviewer plan = %q, want free", interviewer.StoredPlan())
	}
	if back := interviewer.WithRole("student"); back.Plan != DefaultRegistrationPlan {
		t.Errorf("switching back to student should restore the default plan, got %q", back.Plan)
	}
}
