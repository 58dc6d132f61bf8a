package analyzer

// Section categories recognized in a resume.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionContacts   = "contacts"
	SectionAbout      = "about"
)

// sectionOrder fixes the category order for reporting and for the span
// state machine's "other section" checks.
var sectionOrder = []string{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionContacts,
	SectionAbout,
}

// sectionKeywords holds the Russian header phrases that mark each section.
// A category is present when any of its phrases occurs as a substring.
var sectionKeywords = map[string][]string{
	SectionExperience: {"опыт работы", "опыт", "карьера", "работа", "трудовая деятельность", "профессиональный опыт"},
	SectionEducation:  {"образование", "учеба", "обучение", "квалификация"},
	SectionSkills:     {"навыки", "ключевые навыки", "технологии", "компетенции", "умения", "профессиональные навыки"},
	SectionContacts:   {"контакты", "контактная информация", "связь", "контактные данные"},
	SectionAbout:      {"о себе", "обо мне", "личная информация", "краткая информация", "резюме"},
}

// itSkills lists technical terms common on the Russian IT market.
var itSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js", "express",
	"django", "flask", "spring", "hibernate", "sql", "postgresql", "mysql", "mongodb",
	"redis", "docker", "kubernetes", "aws", "azure", "git", "jenkins", "ci/cd",
	"html", "css", "typescript", "php", "laravel", "symfony", "c++", "c#", ".net",
	"go", "rust", "scala", "kotlin", "swift", "flutter", "react native", "android",
	"ios", "linux", "windows", "macos", "nginx", "apache", "elasticsearch", "kafka",
}

// softSkills lists soft-skill phrases in Russian.
var softSkills = []string{
	"коммуникация", "командная работа", "лидерство", "управление проектами",
	"аналитическое мышление", "решение проблем", "креативность", "инициативность",
	"адаптивность", "обучаемость", "стрессоустойчивость", "внимательность к деталям",
}

// positionKeywords mark a line that states the desired position.
var positionKeywords = []string{"должность", "позиция", "специальность", "профессия", "цель"}
