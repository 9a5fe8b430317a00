package policy

import "time"

const (
	SectionMetrics  = "metrics"
	SectionMoments  = "moments"
	SectionInsights = "insights"
)

const AnalysisInterval = 3000 * time.Millisecond

// Unlimited marks a capability without an upper bound.
const Unlimited = -1

type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type AnalysisCapability struct {
	Realtime         bool          `json:"realtime"`
	Sections         []string      `json:"sections"`
	KeyMomentLimit   int           `json:"key_moment_limit"`
	GenerateMoments  bool          `json:"generate_moments"`
	FillerWords      bool          `json:"filler_words"`
	EmotionalTone    bool          `json:"emotional_tone"`
	UpdateInterval   time.Duration `json:"-"`
	UpdateIntervalMS int64         `json:"update_interval_ms"`
	Notice           *Notice       `json:"notice,omitempty"`
}

type TrainerCapability struct {
	Available        bool     `json:"available"`
	Message          string   `json:"message"`
	Options          []string `json:"options"`
	HumanTrainer     bool     `json:"human_trainer"`
	TrainerDashboard bool     `json:"trainer_dashboard"`
	Badge            string   `json:"badge"`
	CTA              string   `json:"cta,omitempty"`
	Notice           *Notice  `json:"notice,omitempty"`
}

type DashboardCapability struct {
	Badge               string `json:"badge"`
	CTA                 string `json:"cta,omitempty"`
	CompanySpecificPrep bool   `json:"company_specific_prep"`
	PriorityScheduling  bool   `json:"priority_scheduling"`
	PersonalizedTopics  bool   `json:"personalized_topics"`
}

type Capability struct {
	Tier                  Tier                `json:"tier"`
	Analysis              AnalysisCapability  `json:"analysis"`
	Trainer               TrainerCapability   `json:"trainer"`
	Dashboard             DashboardCapability `json:"dashboard"`
	MonthlyInterviewQuota int                 `json:"monthly_interview_quota"`
}

// ShowsSection reports whether the analysis panel renders the named tab.
func (a AnalysisCapability) ShowsSection(name string) bool {
	for _, s := range a.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Capabilities is total over Tier: anything unrecognised is treated as free.
func Capabilities(t Tier) Capability {
	switch t {
	case TierBasic:
		return Capability{
			Tier: TierBasic,
			Analysis: AnalysisCapability{
				Realtime:       true,
				Sections:       []string{SectionMetrics, SectionMoments},
				KeyMomentLimit: 2,
				UpdateInterval: AnalysisInterval,
				Notice: &Notice{
					Title:   "Basic Plan Limitations",
					Message: "You have access to basic metrics only. Upgrade to Professional for advanced analysis.",
				},
			},
			Trainer: TrainerCapability{
				Available: true,
				Message:   "Limited trainer assistance available (1 session)",
				Options:   []string{"AI Trainer Chat"},
				Badge:     TierBasic.Label(),
				CTA:       "Upgrade for Human Trainer",
			},
			Dashboard: DashboardCapability{
				Badge: TierBasic.Label(),
				CTA:   "Upgrade to Professional for AI-powered analysis",
			},
			MonthlyInterviewQuota: 2,
		}.withInterval()
	case TierProfessional:
		return Capability{
			Tier: TierProfessional,
			Analysis: AnalysisCapability{
				Realtime:        true,
				Sections:        []string{SectionMetrics, SectionMoments, SectionInsights},
				KeyMomentLimit:  Unlimited,
				GenerateMoments: true,
				FillerWords:     true,
				UpdateInterval:  AnalysisInterval,
			},
			Trainer: TrainerCapability{
				Available:        true,
				Message:          "Personal trainer assistance available",
				Options:          []string{"AI Trainer Chat", "Schedule 30-min Session", "Email Consultation"},
				HumanTrainer:     true,
				TrainerDashboard: true,
				Badge:            TierProfessional.Label(),
			},
			Dashboard: DashboardCapability{
				Badge:              TierProfessional.Label(),
				CTA:                "Upgrade to Enterprise for company-specific preparation",
				PersonalizedTopics: true,
			},
			MonthlyInterviewQuota: 5,
		}.withInterval()
	case TierEnterprise:
		return Capability{
			Tier: TierEnterprise,
			Analysis: AnalysisCapability{
				Realtime:        true,
				Sections:        []string{SectionMetrics, SectionMoments, SectionInsights},
				KeyMomentLimit:  Unlimited,
				GenerateMoments: true,
				FillerWords:     true,
				EmotionalTone:   true,
				UpdateInterval:  AnalysisInterval,
			},
			Trainer: TrainerCapability{
				Available: true,
				Message:   "Premium trainer assistance available",
				Options: []string{
					"AI Trainer Chat",
					"Schedule 60-min Session",
					"Email Consultation",
					"Phone Call",
					"Immediate Assistance",
				},
				HumanTrainer:     true,
				TrainerDashboard: true,
				Badge:            TierEnterprise.Label(),
				CTA:              "Request Human Trainer",
			},
			Dashboard: DashboardCapability{
				Badge:               TierEnterprise.Label(),
				CompanySpecificPrep: true,
				PriorityScheduling:  true,
				PersonalizedTopics:  true,
			},
			MonthlyInterviewQuota: 5,
		}.withInterval()
	}

	return Capability{
		Tier: TierFree,
		Analysis: AnalysisCapability{
			Sections: []string{},
			Notice: &Notice{
				Title:   "Upgrade Required",
				Message: "Real-time interview analysis is available on Basic plan and above.",
			},
		},
		Trainer: TrainerCapability{
			Available: false,
			Message:   "Upgrade to Basic or higher plan to connect with trainers",
			Options:   []string{},
			Badge:     TierFree.Label(),
			CTA:       "Upgrade your plan",
			Notice: &Notice{
				Title:   "Free Plan Limitations",
				Message: "You're on the Free plan with basic AI trainer capabilities. Upgrade your plan for human trainer assistance and personalized feedback.",
			},
		},
		Dashboard: DashboardCapability{
			Badge: TierFree.Label(),
			CTA:   "View Plans",
		},
		MonthlyInterviewQuota: 1,
	}
}

func (c Capability) withInterval() Capability {
	c.Analysis.UpdateIntervalMS = c.Analysis.UpdateInterval.Milliseconds()
	return c
}

// VisibleMoments clamps n to the tier's key moment limit.
func (a AnalysisCapability) VisibleMoments(n int) int {
	if !a.Realtime {
		return 0
	}
	if a.KeyMomentLimit == Unlimited || n < a.KeyMomentLimit {
		return n
	}
	return a.KeyMomentLimit
}
