package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const maxMinedKeywords = 20

var (
	wordRe         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	cyrillicWordRe = regexp.MustCompile(`^[а-яё]{3,}$`)
)

// VacancyRequirements is the target keyword set derived from a job posting.
// Computed fresh per call, never stored.
type VacancyRequirements struct {
	TechnicalSkills []string
	SoftSkills      []string
	Keywords        []string
}

// all returns technical + soft + mined requirements as one list. Duplicates
// across the three lists are intentionally kept; the keyword score is
// computed against the full list.
func (r VacancyRequirements) all() []string {
	out := make([]string, 0, len(r.TechnicalSkills)+len(r.SoftSkills)+len(r.Keywords))
	out = append(out, r.TechnicalSkills...)
	out = append(out, r.SoftSkills...)
	out = append(out, r.Keywords...)
	return out
}

// extractRequirements combines the fixed skill vocabulary with
// frequency-mined free-text keywords from the vacancy text.
func extractRequirements(text string) VacancyRequirements {
	lower := strings.ToLower(flatten(normalizeLines(text)))

	tech := make([]string, 0, 8)
	for _, skill := range itSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			tech = append(tech, skill)
		}
	}

	soft := make([]string, 0, 4)
	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			soft = append(soft, skill)
		}
	}

	return VacancyRequirements{
		TechnicalSkills: tech,
		SoftSkills:      soft,
		Keywords:        mineKeywords(lower),
	}
}

// mineKeywords selects the most frequent Cyrillic word runs (length >= 3)
// that occur more than once, up to 20, with frequency ties broken by
// first-seen order. Latin-script terms are deliberately not mined; they
// enter scoring only through the fixed vocabulary.
func mineKeywords(lower string) []string {
	counts := make(map[string]int)
	var order []string
	for _, token := range wordRe.FindAllString(lower, -1) {
		if !cyrillicWordRe.MatchString(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	keywords := make([]string, 0, maxMinedKeywords)
	for _, word := range order {
		if len(keywords) == maxMinedKeywords {
			break
		}
		if counts[word] > 1 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
