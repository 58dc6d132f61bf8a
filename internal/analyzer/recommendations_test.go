package analyzer

import (
	"strings"
	"testing"
)

func goodBreakdown() map[string]int {
	return map[string]int{
		CategoryKeywords:   90,
		CategoryStructure:  90,
		CategoryContacts:   100,
		CategoryExperience: 80,
	}
}

func TestKeywordRecommendationTriggered(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryKeywords] = 50
	missing := []string{"python", "django", "postgresql", "docker", "linux", "kafka", "redis"}

	recs := generateRecommendations(breakdown, fullResume(), missing)
	if len(recs) != 1 {
		t.Fatalf("expected one recommendation, got %v", recs)
	}
	rec := recs[0]
	if rec.Type != RecommendationCritical {
		t.Fatalf("expected critical, got %q", rec.Type)
	}
	if !strings.Contains(rec.Description, "7") {
		t.Fatalf("description must name the missing count: %q", rec.Description)
	}
	if strings.Count(rec.Example, ",") != 4 {
		t.Fatalf("example must list at most 5 keywords: %q", rec.Example)
	}
}

func TestKeywordRecommendationNeedsMissing(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryKeywords] = 50

	recs := generateRecommendations(breakdown, fullResume(), nil)
	if len(recs) != 1 || recs[0].Title != "Отличная работа!" {
		t.Fatalf("no missing keywords means no keyword recommendation, got %v", recs)
	}
}

func TestStructureRecommendationNamesAbsentSections(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryStructure] = 40

	resume := fullResume()
	resume.Sections = []string{SectionExperience}

	recs := generateRecommendations(breakdown, resume, nil)
	if len(recs) != 1 || recs[0].Type != RecommendationWarning {
		t.Fatalf("expected one warning, got %v", recs)
	}
	desc := recs[0].Description
	if !strings.Contains(desc, "образование") || !strings.Contains(desc, "навыки") {
		t.Fatalf("expected absent sections named: %q", desc)
	}
	if strings.Contains(desc, "опыт работы") {
		t.Fatalf("present section must not be reported: %q", desc)
	}
}

func TestContactRecommendationNamesAbsentContacts(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryContacts] = 40

	resume := fullResume()
	resume.Phone = ""
	resume.Name = ""

	recs := generateRecommendations(breakdown, resume, nil)
	if len(recs) != 1 || recs[0].Type != RecommendationCritical {
		t.Fatalf("expected one critical, got %v", recs)
	}
	desc := recs[0].Description
	if !strings.Contains(desc, "телефон") || !strings.Contains(desc, "ФИО") || strings.Contains(desc, "email") {
		t.Fatalf("unexpected contact list: %q", desc)
	}
}

func TestExperienceRecommendationEmptySpan(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryExperience] = 0

	resume := fullResume()
	resume.Experience = ""

	recs := generateRecommendations(breakdown, resume, nil)
	if len(recs) != 1 || recs[0].Type != RecommendationWarning {
		t.Fatalf("expected one warning, got %v", recs)
	}
}

func TestExperienceRecommendationShortBody(t *testing.T) {
	breakdown := goodBreakdown()
	breakdown[CategoryExperience] = 50

	resume := fullResume()
	resume.Experience = "писал код"

	recs := generateRecommendations(breakdown, resume, nil)
	if len(recs) != 1 || recs[0].Type != RecommendationImprovement {
		t.Fatalf("expected one improvement, got %v", recs)
	}
	if recs[0].Title != "Расширьте описание опыта" {
		t.Fatalf("unexpected title %q", recs[0].Title)
	}
}

func TestFallbackRecommendation(t *testing.T) {
	recs := generateRecommendations(goodBreakdown(), fullResume(), nil)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one fallback, got %v", recs)
	}
	if recs[0].Type != RecommendationImprovement || recs[0].Title != "Отличная работа!" {
		t.Fatalf("unexpected fallback: %+v", recs[0])
	}
}

func TestRecommendationsCoOccur(t *testing.T) {
	breakdown := map[string]int{
		CategoryKeywords:   10,
		CategoryStructure:  10,
		CategoryContacts:   10,
		CategoryExperience: 10,
	}
	recs := generateRecommendations(breakdown, ParsedResume{}, []string{"python"})
	if len(recs) != 4 {
		t.Fatalf("all four triggers must fire independently, got %d: %v", len(recs), recs)
	}
	// Generation order: keywords, structure, contacts, experience.
	wantTypes := []string{RecommendationCritical, RecommendationWarning, RecommendationCritical, RecommendationWarning}
	for i, want := range wantTypes {
		if recs[i].Type != want {
			t.Fatalf("rec %d: expected %q, got %q", i, want, recs[i].Type)
		}
	}
}

func fullResume() ParsedResume {
	return ParsedResume{
		Name:       "Иван Иванов",
		Email:      "ivan@example.com",
		Phone:      "+7 123 456 78 90",
		Skills:     []string{"python"},
		Experience: strings.Repeat("разработка и поддержка сервисов ", 5),
		Sections:   []string{SectionExperience, SectionEducation, SectionSkills, SectionContacts},
		RawText:    "Иван Иванов",
	}
}
