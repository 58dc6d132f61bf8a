package analyzer

import (
	"regexp"
	"strings"
)

var (
	nameRe  = regexp.MustCompile(`^([А-ЯЁ][а-яё]+(?:\s+[А-ЯЁ][а-яё]+){1,2})(?:\s|$)`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Russian phone number patterns, tried in strict priority order:
	// +7-prefixed mobile, 8-prefixed equivalent, bare grouped digits.
	// The first pattern that matches anywhere wins, regardless of position.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+7[\s\-()]*\d{3}[\s\-()]*\d{3}[\s\-]*\d{2}[\s\-]*\d{2}`),
		regexp.MustCompile(`8[\s\-()]*\d{3}[\s\-()]*\d{3}[\s\-]*\d{2}[\s\-]*\d{2}`),
		regexp.MustCompile(`\d{3}[\s\-()]*\d{3}[\s\-]*\d{2}[\s\-]*\d{2}`),
	}
)

// ParsedResume holds the structured fields extracted from one resume.
// Every field derives purely from the normalized source text; nothing is
// ever written back. Skills and Sections are always fresh non-nil slices.
type ParsedResume struct {
	Name       string
	Email      string
	Phone      string
	Position   string
	Skills     []string
	Experience string
	Education  string
	Sections   []string
	RawText    string
}

// parseResume runs every extraction rule over the normalized text.
func parseResume(text string) ParsedResume {
	raw := normalizeLines(text)
	lines := strings.Split(raw, "\n")
	flat := flatten(raw)
	flatLower := strings.ToLower(flat)

	return ParsedResume{
		Name:       extractName(lines),
		Email:      extractEmail(flat),
		Phone:      extractPhone(flat),
		Position:   extractPosition(lines),
		Skills:     extractSkills(flatLower),
		Experience: extractSectionSpan(lines, SectionExperience),
		Education:  extractSectionSpan(lines, SectionEducation),
		Sections:   detectSections(flatLower),
		RawText:    raw,
	}
}

// extractName scans the first 5 lines for 2-3 capitalized Cyrillic words.
func extractName(lines []string) string {
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if m := nameRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractPosition scans the first 10 lines for a position keyword and
// returns the trimmed text after the first colon on that line.
func extractPosition(lines []string) string {
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, keyword := range positionKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if _, after, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(after)
			}
		}
	}
	return ""
}

// extractSkills returns the vocabulary entries present in the text,
// deduplicated, in vocabulary scan order.
func extractSkills(textLower string) []string {
	found := make([]string, 0, 8)
	seen := make(map[string]bool)
	for _, vocab := range [][]string{itSkills, softSkills} {
		for _, skill := range vocab {
			if seen[skill] || !strings.Contains(textLower, strings.ToLower(skill)) {
				continue
			}
			seen[skill] = true
			found = append(found, skill)
		}
	}
	return found
}

// detectSections reports which of the five fixed categories are present,
// in the fixed category order. Each category appears at most once.
func detectSections(textLower string) []string {
	found := make([]string, 0, len(sectionOrder))
	for _, section := range sectionOrder {
		for _, keyword := range sectionKeywords[section] {
			if strings.Contains(textLower, keyword) {
				found = append(found, section)
				break
			}
		}
	}
	return found
}

// extractSectionSpan collects the body of the given section with a small
// outside/inside state machine over the line sequence. The header line
// itself is discarded; the span closes, unconsumed, on the first line that
// matches a keyword of a different section; non-blank body lines are joined
// with newlines. A section that never opens yields an empty span; one that
// never closes extends to the end of the text.
func extractSectionSpan(lines []string, section string) string {
	var body []string
	inside := false
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if matchesSection(lower, section) {
			inside = true
			continue
		}
		if inside && matchesOtherSection(lower, section) {
			break
		}
		if inside && strings.TrimSpace(line) != "" {
			body = append(body, line)
		}
	}
	return strings.Join(body, "\n")
}

func matchesSection(lowerLine, section string) bool {
	for _, keyword := range sectionKeywords[section] {
		if strings.Contains(lowerLine, keyword) {
			return true
		}
	}
	return false
}

func matchesOtherSection(lowerLine, section string) bool {
	for _, other := range sectionOrder {
		if other == section {
			continue
		}
		if matchesSection(lowerLine, other) {
			return true
		}
	}
	return false
}
