package analyzer

import "errors"

var (
	// ErrEmptyResume reports resume text that is empty or all-whitespace.
	ErrEmptyResume = errors.New("файл резюме пустой или не содержит текста")
	// ErrEmptyVacancy reports vacancy text that is empty or all-whitespace.
	ErrEmptyVacancy = errors.New("файл вакансии пустой или не содержит текста")
)
