// Package analyzer scores how well a resume matches a job posting and how
// well it would parse in Russian-market ATS systems. The whole engine is a
// pure, stateless function of its two text inputs: it performs no I/O, holds
// no cross-call state, and its vocabulary tables are read-only, so concurrent
// calls need no coordination.
package analyzer

import "strings"

const totalSectionsExpected = 4

// Analyzer runs the full analysis pipeline. Weights are fixed at
// construction and sum to 1.0.
type Analyzer struct {
	weights map[string]float64
}

// New builds an Analyzer with the standard category weights.
func New() *Analyzer {
	return &Analyzer{
		weights: map[string]float64{
			CategoryKeywords:   0.40,
			CategoryStructure:  0.30,
			CategoryContacts:   0.15,
			CategoryExperience: 0.15,
		},
	}
}

// Weights exposes a copy of the category weights.
func (a *Analyzer) Weights() map[string]float64 {
	out := make(map[string]float64, len(a.weights))
	for k, v := range a.weights {
		out[k] = v
	}
	return out
}

// Analyze parses the resume, extracts requirements from the vacancy, scores
// the four categories, and assembles the immutable result. Empty or
// all-whitespace input is rejected before any extraction runs.
func (a *Analyzer) Analyze(resumeText, vacancyText string) (*AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}
	if strings.TrimSpace(vacancyText) == "" {
		return nil, ErrEmptyVacancy
	}

	resume := parseResume(resumeText)
	requirements := extractRequirements(vacancyText)

	keywordsScore, matched, missing := scoreKeywords(resume, requirements)
	breakdown := map[string]int{
		CategoryKeywords:   keywordsScore,
		CategoryStructure:  scoreStructure(resume),
		CategoryContacts:   scoreContacts(resume),
		CategoryExperience: scoreExperience(resume, requirements),
	}
	score := a.overall(breakdown)

	return &AnalysisResult{
		Score:           score,
		Breakdown:       breakdown,
		Recommendations: generateRecommendations(breakdown, resume, missing),
		ParsedResume:    resume,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		ATSCompatibility: ATSCompatibility{
			ParsingSuccess:        true,
			StandardSectionsFound: len(resume.Sections),
			TotalSectionsExpected: totalSectionsExpected,
			RussianATSFriendly:    score >= 60,
		},
	}, nil
}

// overall is the weighted sum of the sub-scores, truncated to an integer.
// Summation follows categoryOrder so the result is bit-stable.
func (a *Analyzer) overall(breakdown map[string]int) int {
	var total float64
	for _, category := range categoryOrder {
		total += float64(breakdown[category]) * a.weights[category]
	}
	return int(total)
}
