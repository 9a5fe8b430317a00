package policy

import "strings"

type Tier string

const (
	TierFree         Tier = "free"
	TierBasic        Tier = "basic"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

var AllTiers = []Tier{TierFree, TierBasic, TierProfessional, TierEnterprise}

// ParseTier reports whether s names a known tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TierFree, TierBasic, TierProfessional, TierEnterprise:
		return t, true
	}
	return TierFree, false
}

// Resolve maps a stored plan label to a tier. Unknown or empty labels
// resolve to TierFree so that no feature is ever unlocked by a bad record.
func Resolve(s string) Tier {
	t, _ := ParseTier(s)
	return t
}

func (t Tier) rank() int {
	switch t {
	case TierBasic:
		return 1
	case TierProfessional:
		return 2
	case TierEnterprise:
		return 3
	}
	return 0
}

// AtLeast reports whether t is the same as or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.rank() >= other.rank()
}

func (t Tier) Label() string {
	switch t {
	case TierBasic:
		return "Basic Plan"
	case TierProfessional:
		return "Professional Plan"
	case TierEnterprise:
		return "Enterprise Plan"
	}
	return "Free Plan"
}
