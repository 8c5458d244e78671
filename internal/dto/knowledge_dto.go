package dto

type LearnFactRequest struct {
	Subject      string `json:"subject" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Fact         string `json:"fact" validate:"required"`
}

type LearnFactResponse struct {
	Subject      string `json:"subject"`
	Relationship string `json:"relationship"`
	Fact         string `json:"fact"`
	Outcome      string `json:"outcome"`
}

type QueryFactsResponse struct {
	Subject      string   `json:"subject"`
	Relationship string   `json:"relationship"`
	Facts        []string `json:"facts"`
}

type SubjectFactItem struct {
	Relationship string `json:"relationship"`
	Fact         string `json:"fact"`
	Source       string `json:"source"`
	IsImmutable  bool   `json:"is_immutable"`
}

type SubjectFactsResponse struct {
	Subject string            `json:"subject"`
	Facts   []SubjectFactItem `json:"facts"`
}
