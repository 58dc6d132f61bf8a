package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Scoring categories.
const (
	CategoryKeywords   = "keywords"
	CategoryStructure  = "structure"
	CategoryContacts   = "contacts"
	CategoryExperience = "experience"
)

// categoryOrder fixes the summation order so float rounding can never vary
// between runs.
var categoryOrder = []string{CategoryKeywords, CategoryStructure, CategoryContacts, CategoryExperience}

const maxMissingReported = 10

// scoreKeywords matches every requirement against the flattened lowercase
// resume text. The score is computed over the full requirement list; only
// the reported missing list is capped at 10 entries. An empty requirement
// list is a vacuous match.
func scoreKeywords(resume ParsedResume, req VacancyRequirements) (int, []string, []string) {
	all := req.all()
	if len(all) == 0 {
		return 100, []string{}, []string{}
	}

	lower := strings.ToLower(flatten(resume.RawText))
	matched := make([]string, 0, len(all))
	missing := make([]string, 0, len(all))
	for _, requirement := range all {
		if strings.Contains(lower, strings.ToLower(requirement)) {
			matched = append(matched, requirement)
		} else {
			missing = append(missing, requirement)
		}
	}

	score := int(float64(len(matched)) / float64(len(all)) * 100)
	if score > 100 {
		score = 100
	}
	if len(missing) > maxMissingReported {
		missing = missing[:maxMissingReported]
	}
	return score, matched, missing
}

// scoreStructure rewards the three core sections, a contacts section, and
// text that is split into more than 5 lines.
func scoreStructure(resume ParsedResume) int {
	found := 0
	for _, section := range []string{SectionExperience, SectionEducation, SectionSkills} {
		if containsString(resume.Sections, section) {
			found++
		}
	}

	score := float64(found) / 3 * 70
	if containsString(resume.Sections, SectionContacts) {
		score += 15
	}
	if len(strings.Split(resume.RawText, "\n")) > 5 {
		score += 15
	}
	if int(score) > 100 {
		return 100
	}
	return int(score)
}

// scoreContacts: email 40, phone 40, name 20.
func scoreContacts(resume ParsedResume) int {
	score := 0
	if resume.Email != "" {
		score += 40
	}
	if resume.Phone != "" {
		score += 40
	}
	if resume.Name != "" {
		score += 20
	}
	if score > 100 {
		return 100
	}
	return score
}

// scoreExperience is 0 whenever the experience span is empty. Otherwise a
// base of 40 plus a length bonus and a capped relevance bonus for technical
// requirements mentioned in the span body.
func scoreExperience(resume ParsedResume, req VacancyRequirements) int {
	if resume.Experience == "" {
		return 0
	}

	score := 40
	switch n := utf8.RuneCountInString(resume.Experience); {
	case n > 200:
		score += 30
	case n > 100:
		score += 20
	case n > 50:
		score += 10
	}

	lower := strings.ToLower(resume.Experience)
	relevant := 0
	for _, skill := range req.TechnicalSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			relevant++
		}
	}
	if relevant > 0 {
		bonus := relevant * 5
		if bonus > 30 {
			bonus = 30
		}
		score += bonus
	}

	if score > 100 {
		return 100
	}
	return score
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
