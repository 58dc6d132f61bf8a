package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Recommendation kinds.
const (
	RecommendationCritical    = "critical"
	RecommendationWarning     = "warning"
	RecommendationImprovement = "improvement"
)

// Recommendation is a single piece of prioritized guidance. Generated once,
// never mutated.
type Recommendation struct {
	Type        string
	Title       string
	Description string
	Example     string
}

const maxExampleKeywords = 5

// generateRecommendations evaluates the threshold-triggered mappers in fixed
// order: keywords, structure, contacts, experience. Triggers are independent
// and never suppress each other. When nothing fires, a single fallback entry
// praises the resume.
func generateRecommendations(breakdown map[string]int, resume ParsedResume, missing []string) []Recommendation {
	recs := make([]Recommendation, 0, 4)
	mappers := []func() []Recommendation{
		func() []Recommendation { return keywordRecommendations(breakdown[CategoryKeywords], missing) },
		func() []Recommendation { return structureRecommendations(breakdown[CategoryStructure], resume) },
		func() []Recommendation { return contactRecommendations(breakdown[CategoryContacts], resume) },
		func() []Recommendation { return experienceRecommendations(breakdown[CategoryExperience], resume) },
	}
	for _, mapper := range mappers {
		recs = append(recs, mapper()...)
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:        RecommendationImprovement,
			Title:       "Отличная работа!",
			Description: "Ваше резюме хорошо оптимизировано для ATS систем",
			Example:     "Продолжайте обновлять резюме актуальными навыками и достижениями",
		})
	}
	return recs
}

func keywordRecommendations(score int, missing []string) []Recommendation {
	if score >= 70 || len(missing) == 0 {
		return nil
	}
	examples := missing
	if len(examples) > maxExampleKeywords {
		examples = examples[:maxExampleKeywords]
	}
	return []Recommendation{{
		Type:        RecommendationCritical,
		Title:       "Добавьте ключевые слова из вакансии",
		Description: fmt.Sprintf("Ваше резюме не содержит %d важных ключевых слов. ATS системы ищут точные совпадения.", len(missing)),
		Example:     fmt.Sprintf("Добавьте: %s", strings.Join(examples, ", ")),
	}}
}

func structureRecommendations(score int, resume ParsedResume) []Recommendation {
	if score >= 70 {
		return nil
	}
	var absent []string
	if !containsString(resume.Sections, SectionExperience) {
		absent = append(absent, "опыт работы")
	}
	if !containsString(resume.Sections, SectionEducation) {
		absent = append(absent, "образование")
	}
	if !containsString(resume.Sections, SectionSkills) {
		absent = append(absent, "навыки")
	}
	if len(absent) == 0 {
		return nil
	}
	return []Recommendation{{
		Type:        RecommendationWarning,
		Title:       "Добавьте стандартные разделы",
		Description: fmt.Sprintf("ATS системы ожидают стандартную структуру резюме. Отсутствуют разделы: %s", strings.Join(absent, ", ")),
		Example:     `Используйте заголовки: "Опыт работы", "Образование", "Ключевые навыки"`,
	}}
}

func contactRecommendations(score int, resume ParsedResume) []Recommendation {
	if score >= 80 {
		return nil
	}
	var absent []string
	if resume.Email == "" {
		absent = append(absent, "email")
	}
	if resume.Phone == "" {
		absent = append(absent, "телефон")
	}
	if resume.Name == "" {
		absent = append(absent, "ФИО")
	}
	if len(absent) == 0 {
		return nil
	}
	return []Recommendation{{
		Type:        RecommendationCritical,
		Title:       "Добавьте контактную информацию",
		Description: fmt.Sprintf("Отсутствуют важные контактные данные: %s", strings.Join(absent, ", ")),
		Example:     "Укажите ФИО, телефон и email в начале резюме",
	}}
}

func experienceRecommendations(score int, resume ParsedResume) []Recommendation {
	if score >= 60 {
		return nil
	}
	if resume.Experience == "" {
		return []Recommendation{{
			Type:        RecommendationWarning,
			Title:       "Детально опишите опыт работы",
			Description: "Раздел опыта работы отсутствует или слишком краткий",
			Example:     "Укажите компании, должности, период работы и основные обязанности",
		}}
	}
	if utf8.RuneCountInString(resume.Experience) < 100 {
		return []Recommendation{{
			Type:        RecommendationImprovement,
			Title:       "Расширьте описание опыта",
			Description: "Описание опыта работы слишком краткое для эффективного анализа ATS",
			Example:     "Добавьте конкретные достижения, проекты и используемые технологии",
		}}
	}
	return nil
}
