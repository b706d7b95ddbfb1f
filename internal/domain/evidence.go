package domain

// Evidence confidence grades.
const (
	ConfidenceHigh     = "high"
	ConfidenceModerate = "moderate"
	ConfidenceLimited  = "limited"
)

// EvidenceCitation points at a published study or guideline backing an
// answer.
type EvidenceCitation struct {
	Title     string `json:"title"`
	Journal   string `json:"journal"`
	Year      int    `json:"year"`
	DOI       string `json:"doi"`
	Relevance string `json:"relevance"`
}

// EvidenceResponse is a canned answer to a clinical question.
type EvidenceResponse struct {
	Answer           string             `json:"answer"`
	Citations        []EvidenceCitation `json:"citations"`
	Confidence       string             `json:"confidence"`
	RelatedQuestions []string           `json:"related_questions"`
}
