package dto

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type KnowledgeSource struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

type AskResponse struct {
	Answer  string            `json:"answer"`
	Sources []KnowledgeSource `json:"sources"`
}

type AnalyzeResponse struct {
	Summary         string `json:"summary"`
	Recommendations string `json:"recommendations"`
}

type AdviceResponse struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
}
