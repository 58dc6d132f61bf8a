package analyzer

// AnalysisResult is the complete outcome of one analysis call.
type AnalysisResult struct {
	Score            int
	Breakdown        map[string]int
	Recommendations  []Recommendation
	ParsedResume     ParsedResume
	MatchedKeywords  []string
	MissingKeywords  []string
	ATSCompatibility ATSCompatibility
}

// ATSCompatibility summarizes how the resume would fare in automated
// screening.
type ATSCompatibility struct {
	ParsingSuccess        bool `json:"parsingSuccess"`
	StandardSectionsFound int  `json:"standardSectionsFound"`
	TotalSectionsExpected int  `json:"totalSectionsExpected"`
	RussianATSFriendly    bool `json:"russianAtsFriendly"`
}

// Report is the external JSON representation of an AnalysisResult.
type Report struct {
	Score            int                    `json:"score"`
	Breakdown        map[string]int         `json:"breakdown"`
	Recommendations  []RecommendationReport `json:"recommendations"`
	ParsedResume     ParsedResumeReport     `json:"parsedResume"`
	MatchedKeywords  []string               `json:"matchedKeywords"`
	MissingKeywords  []string               `json:"missingKeywords"`
	ATSCompatibility ATSCompatibility       `json:"atsCompatibility"`
}

// RecommendationReport is the wire form of a Recommendation. Example is null
// when absent.
type RecommendationReport struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Example     *string `json:"example"`
}

// ParsedResumeReport is the wire form of a ParsedResume. Optional fields are
// null when absent; experience and education are truncated to their first
// 500 characters in this representation only.
type ParsedResumeReport struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Position   *string  `json:"position"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Sections   []string `json:"sections"`
}

const reportSpanLimit = 500

// Report converts the result to its external representation.
func (r *AnalysisResult) Report() Report {
	recs := make([]RecommendationReport, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		recs = append(recs, RecommendationReport{
			Type:        rec.Type,
			Title:       rec.Title,
			Description: rec.Description,
			Example:     optional(rec.Example),
		})
	}

	return Report{
		Score:           r.Score,
		Breakdown:       r.Breakdown,
		Recommendations: recs,
		ParsedResume: ParsedResumeReport{
			Name:       optional(r.ParsedResume.Name),
			Email:      optional(r.ParsedResume.Email),
			Phone:      optional(r.ParsedResume.Phone),
			Position:   optional(r.ParsedResume.Position),
			Skills:     r.ParsedResume.Skills,
			Experience: truncateRunes(r.ParsedResume.Experience, reportSpanLimit),
			Education:  truncateRunes(r.ParsedResume.Education, reportSpanLimit),
			Sections:   r.ParsedResume.Sections,
		},
		MatchedKeywords:  r.MatchedKeywords,
		MissingKeywords:  r.MissingKeywords,
		ATSCompatibility: r.ATSCompatibility,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
