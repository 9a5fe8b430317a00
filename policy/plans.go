package policy

import (
	"strconv"
	"strings"
)

type Billing string

const (
	BillingMonthly   Billing = "monthly"
	BillingQuarterly Billing = "quarterly"
)

// ParseBilling falls back to monthly for anything it does not recognise.
func ParseBilling(s string) Billing {
	if Billing(strings.ToLower(strings.TrimSpace(s))) == BillingQuarterly {
		return BillingQuarterly
	}
	return BillingMonthly
}

// Months returns the length of a billing period.
func (b Billing) Months() int {
	if b == BillingQuarterly {
		return 3
	}
	return 1
}

type PlanPrice struct {
	Billing    Billing `json:"billing"`
	AmountINR  int     `json:"amount_inr"`
	Duration   string  `json:"duration"`
	Interviews string  `json:"interviews"`
	SavingsINR int     `json:"savings_inr"`
	Savings    string  `json:"savings"`
}

type Plan struct {
	Tier           Tier      `json:"tier"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          PlanPrice `json:"price"`
	Features       []string  `json:"features"`
	NotIncluded    []string  `json:"not_included"`
	Recommended    bool      `json:"recommended"`
	InterviewQuota int       `json:"interview_quota"`
}

type planEntry struct {
	name, description     string
	monthly, quarterly    int
	monthlyInterviews     string
	quarterlyInterviews   string
	duration              [2]string
	features, notIncluded []string
	recommended           bool
}

var catalog = map[Tier]planEntry{
	TierFree: {
		name:                "Free Plan",
		description:         "Basic interview practice",
		monthlyInterviews:   "1 AI mock interview per month",
		quarterlyInterviews: "1 AI mock interview per month",
		duration:            [2]string{"Unlimited", "Unlimited"},
		features: []string{
			"AI-powered mock interviews",
			"Basic feedback reports",
			"Limited question bank",
			"Community forum access",
		},
		notIncluded: []string{"Human interview feedback", "Personal interview trainer", "Company-specific preparation"},
	},
	TierBasic: {
		name:                "Basic Plan",
		description:         "For casual interview practice",
		monthly:             500,
		quarterly:           1350,
		monthlyInterviews:   "2 mock interviews",
		quarterlyInterviews: "6 mock interviews",
		duration:            [2]string{"1 Month", "3 Months"},
		features: []string{
			"Basic feedback reports",
			"Interview recording access",
			"Community forum access",
			"Standard question bank",
			"Limited trainer assistance",
		},
		notIncluded: []string{"Dedicated personal interview trainer", "AI-powered analysis", "Company-specific preparation"},
	},
	TierProfessional: {
		name:                "Professional Plan",
		description:         "Dedicated interview coaching experience",
		monthly:             2000,
		quarterly:           5000,
		monthlyInterviews:   "5 mock interviews",
		quarterlyInterviews: "15 mock interviews",
		duration:            [2]string{"1 Month", "3 Months"},
		features: []string{
			"Personal interview trainer assigned",
			"Comprehensive feedback with AI-powered analysis",
			"Performance improvement tracking",
			"Interview recordings with annotations",
			"Extended question bank with solutions",
			"Priority email support",
			"Post-interview trainer consultations",
		},
		notIncluded: []string{"Company-specific preparation", "Custom interview question bank"},
		recommended: true,
	},
	TierEnterprise: {
		name:                "Enterprise Plan",
		description:         "Premium company-specific preparation",
		monthly:             5000,
		quarterly:           12000,
		monthlyInterviews:   "5 company-specific interviews",
		quarterlyInterviews: "15 company-specific interviews",
		duration:            [2]string{"1 Month", "3 Months"},
		features: []string{
			"Everything in Professional Plan",
			"Elite personal trainer with experience at target companies",
			"Company-specific interview preparation",
			"Custom interview question bank based on real company questions",
			"Advanced performance analytics",
			"Priority scheduling with interviewers",
			"Dedicated account manager",
			"Unlimited trainer consultations",
		},
		notIncluded: []string{},
	},
}

// Plans lists every tier in ascending order priced for the given billing cycle.
func Plans(b Billing) []Plan {
	plans := make([]Plan, 0, len(AllTiers))
	for _, t := range AllTiers {
		plans = append(plans, PlanFor(t, b))
	}
	return plans
}

func PlanFor(t Tier, b Billing) Plan {
	e, ok := catalog[t]
	if !ok {
		t = TierFree
		e = catalog[TierFree]
	}

	price := PlanPrice{Billing: b, AmountINR: e.monthly, Duration: e.duration[0], Interviews: e.monthlyInterviews}
	if b == BillingQuarterly {
		price.AmountINR = e.quarterly
		price.Duration = e.duration[1]
		price.Interviews = e.quarterlyInterviews
		price.SavingsINR = e.monthly*3 - e.quarterly
	}
	switch {
	case t == TierFree:
		price.Savings = "Always Free"
	case price.SavingsINR > 0:
		price.Savings = "Save ₹" + formatINR(price.SavingsINR)
	default:
		price.Savings = "No savings"
	}

	return Plan{
		Tier:           t,
		Name:           e.name,
		Description:    e.description,
		Price:          price,
		Features:       e.features,
		NotIncluded:    e.notIncluded,
		Recommended:    e.recommended,
		InterviewQuota: Capabilities(t).MonthlyInterviewQuota * b.Months(),
	}
}

// formatINR groups thousands the way the pricing page prints them.
func formatINR(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var out []byte
	for i, r := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			out = append(out, ',')
		}
		out = append(out, byte(r))
	}
	return string(out) + "," + tail
}
