package store

import (
	"strings"

	"github.com/anjiri1684/mockprep/models"
)

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterCompanies matches query against the company name. An empty query
// keeps everything.
func FilterCompanies(companies []models.Company, query string) []models.Company {
	query = strings.TrimSpace(query)
	out := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if query == "" || contains(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}

func FilterInterviewers(interviewers []models.InterviewerProfile, f InterviewerFilter) []models.InterviewerProfile {
	query := strings.TrimSpace(f.Query)
	out := make([]models.InterviewerProfile, 0, len(interviewers))
	for _, iv := range interviewers {
		matchesSearch := query == "" ||
			contains(iv.User.FullName, query) ||
			contains(iv.Company, query) ||
			contains(strings.Join(iv.Specialization, ", "), query)
		matchesCompany := f.Company == "" || iv.Company == f.Company
		matchesRole := f.Role == "" || contains(iv.Title, f.Role)

		if matchesSearch && matchesCompany && matchesRole {
			out = append(out, iv)
		}
	}
	return out
}

// FilterPracticeQuestions keeps a question when it matches the query and
// every set facet. Tags match when the question carries any of them.
func FilterPracticeQuestions(questions []models.PracticeQuestion, f PracticeFilter) []models.PracticeQuestion {
	query := strings.TrimSpace(f.Query)
	out := make([]models.PracticeQuestion, 0, len(questions))
	for _, q := range questions {
		matchesSearch := query == "" ||
			contains(q.Question, query) ||
			contains(q.Description, query) ||
			contains(q.Category, query)
		matchesCategory := f.Category == "" || q.Category == f.Category
		matchesDifficulty := f.Difficulty == "" || q.Difficulty == f.Difficulty
		matchesCompany := f.Company == "" || q.Company == f.Company

		if matchesSearch && matchesCategory && matchesDifficulty && matchesCompany && hasAnyTag(q.Tags, f.Tags) {
			out = append(out, q)
		}
	}
	return out
}

func hasAnyTag(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
