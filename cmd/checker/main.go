// Command checker analyzes a resume against a vacancy from the command line
// and prints a single JSON object to stdout, for use by a parent process.
//
// Usage:
//
//	checker <resumePath> <vacancyPath> <resumeType> <vacancyType> <resumeName> <vacancyName>
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-checker/internal/analyzer"
	"resume-checker/internal/extract"
)

type errorResult struct {
	Error string `json:"error"`
}

func main() {
	if len(os.Args) != 7 {
		printJSON(errorResult{Error: "Критическая ошибка: неверное количество аргументов"})
		os.Exit(1)
	}

	resumePath, vacancyPath := os.Args[1], os.Args[2]
	resumeType, vacancyType := os.Args[3], os.Args[4]
	resumeName, vacancyName := os.Args[5], os.Args[6]

	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Ошибка чтения файла %s: %v", resumePath, err)})
		os.Exit(1)
	}
	vacancyData, err := os.ReadFile(vacancyPath)
	if err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Ошибка чтения файла %s: %v", vacancyPath, err)})
		os.Exit(1)
	}

	if err := extract.Validate(resumeData, resumeType, resumeName); err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Ошибка в файле резюме: %v", err)})
		return
	}
	if err := extract.Validate(vacancyData, vacancyType, vacancyName); err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Ошибка в файле вакансии: %v", err)})
		return
	}

	resumeText, err := extract.FromBytes(resumeData, resumeType, resumeName)
	if err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Не удалось обработать файл резюме: %v", err)})
		return
	}
	vacancyText, err := extract.FromBytes(vacancyData, vacancyType, vacancyName)
	if err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Не удалось обработать файл вакансии: %v", err)})
		return
	}

	result, err := analyzer.New().Analyze(resumeText, vacancyText)
	if err != nil {
		printJSON(errorResult{Error: fmt.Sprintf("Ошибка при анализе: %v", err)})
		return
	}

	printJSON(result.Report())
}

func printJSON(payload any) {
	out, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf(`{"error":"Критическая ошибка: %v"}`+"\n", err)
		return
	}
	fmt.Println(string(out))
}
