package analyzer

import (
	"math"
	"strings"
	"testing"
)

func TestWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, w := range New().Weights() {
		total += w
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("weights must sum to 1.0, got %v", total)
	}
}

func TestScoreContactsFull(t *testing.T) {
	resume := ParsedResume{Name: "Иван Иванов", Email: "ivan@example.com", Phone: "+7 123 456 78 90"}
	if got := scoreContacts(resume); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreContactsPartial(t *testing.T) {
	resume := ParsedResume{Name: "Иван Иванов", Email: "ivan@example.com"}
	if got := scoreContacts(resume); got != 60 {
		t.Fatalf("expected 60 (name 20 + email 40), got %d", got)
	}
}

func TestScoreContactsEmpty(t *testing.T) {
	if got := scoreContacts(ParsedResume{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScoreStructureFull(t *testing.T) {
	resume := ParsedResume{
		Sections: []string{SectionExperience, SectionEducation, SectionSkills, SectionContacts},
		RawText:  "Строка 1\nСтрока 2\nСтрока 3\nСтрока 4\nСтрока 5\nСтрока 6",
	}
	if got := scoreStructure(resume); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreStructurePartial(t *testing.T) {
	resume := ParsedResume{
		Sections: []string{SectionExperience},
		RawText:  "одна строка",
	}
	// 1/3 of 70, truncated after summation.
	if got := scoreStructure(resume); got != 23 {
		t.Fatalf("expected 23, got %d", got)
	}
}

func TestScoreExperienceEmptySpan(t *testing.T) {
	req := VacancyRequirements{TechnicalSkills: []string{"python", "django"}}
	if got := scoreExperience(ParsedResume{}, req); got != 0 {
		t.Fatalf("empty span must always score 0, got %d", got)
	}
}

func TestScoreExperienceLengthAndRelevance(t *testing.T) {
	body := strings.Repeat("разработка сервисов ", 12) + "на python и django"
	resume := ParsedResume{Experience: body}
	req := VacancyRequirements{TechnicalSkills: []string{"python", "django", "kafka"}}

	// base 40 + length bonus 30 (>200 chars) + relevance 2*5.
	if got := scoreExperience(resume, req); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
}

func TestScoreExperienceShortBody(t *testing.T) {
	resume := ParsedResume{Experience: "писал код"}
	if got := scoreExperience(resume, VacancyRequirements{}); got != 40 {
		t.Fatalf("expected base 40, got %d", got)
	}
}

func TestScoreKeywordsVacuous(t *testing.T) {
	score, matched, missing := scoreKeywords(ParsedResume{RawText: "что угодно"}, VacancyRequirements{})
	if score != 100 || len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("empty requirements must be a vacuous match, got %d %v %v", score, matched, missing)
	}
}

func TestScoreKeywordsMissingCap(t *testing.T) {
	keywords := []string{
		"первое", "второе", "третье", "четвертое", "пятое", "шестое",
		"седьмое", "восьмое", "девятое", "десятое", "одиннадцатое",
		"двенадцатое", "тринадцатое", "четырнадцатое", "пятнадцатое",
	}
	resume := ParsedResume{RawText: "резюме без единого совпадения"}
	score, matched, missing := scoreKeywords(resume, VacancyRequirements{Keywords: keywords})

	if score != 0 {
		t.Fatalf("score must be computed over the full set, got %d", score)
	}
	if len(matched) != 0 {
		t.Fatalf("expected no matches, got %v", matched)
	}
	if len(missing) != maxMissingReported {
		t.Fatalf("missing list must be capped at %d, got %d", maxMissingReported, len(missing))
	}
}

func TestScoreKeywordsPartial(t *testing.T) {
	resume := ParsedResume{RawText: "Опыт с Python и Django"}
	req := VacancyRequirements{TechnicalSkills: []string{"python", "django", "kafka"}}
	score, matched, missing := scoreKeywords(resume, req)

	if score != 66 {
		t.Fatalf("expected floor(2/3*100)=66, got %d", score)
	}
	if len(matched) != 2 || len(missing) != 1 {
		t.Fatalf("unexpected lists: %v %v", matched, missing)
	}
}

func TestOverallScoreTruncates(t *testing.T) {
	a := New()
	breakdown := map[string]int{
		CategoryKeywords:   66,
		CategoryStructure:  23,
		CategoryContacts:   60,
		CategoryExperience: 40,
	}
	// 26.4 + 6.9 + 9 + 6 = 48.3 -> 48.
	if got := a.overall(breakdown); got != 48 {
		t.Fatalf("expected 48, got %d", got)
	}

	for _, sub := range []map[string]int{
		{CategoryKeywords: 0, CategoryStructure: 0, CategoryContacts: 0, CategoryExperience: 0},
		{CategoryKeywords: 100, CategoryStructure: 100, CategoryContacts: 100, CategoryExperience: 100},
	} {
		got := a.overall(sub)
		if got < 0 || got > 100 {
			t.Fatalf("overall must stay within [0,100], got %d", got)
		}
	}
}
