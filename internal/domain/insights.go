package domain

// InsightsContext is the aggregated data handed to the LLM.
type InsightsContext struct {
	History SleepStatsResponse `json:"history"`
	Recent  SleepStatsResponse `json:"recent"`
}

// LLMInsightsOutput is the structured JSON the LLM must return.
type LLMInsightsOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description LLM-generated, non-medical sleep habit insights.
type InsightsResponse struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
	// Model used for generation
	Model string `json:"model" example:"gpt-4o-mini"`
}
