package models

// Part is a single piece of content. Only text parts are used.
type Part struct {
	Text string `json:"text"`
}

// Content groups the parts of one turn
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the JSON envelope POSTed to generateContent
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// NewTextRequest wraps a raw prompt in the provider envelope:
// {"contents":[{"parts":[{"text":prompt}]}]}
func NewTextRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

// Candidate is one generated response
type Candidate struct {
	Text         string
	FinishReason string
}

// GenerateContentResponse is the parsed generateContent reply
type GenerateContentResponse struct {
	Candidates   []Candidate
	ModelVersion string
}

// Text returns the first candidate's text
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Text
}

// FinishReason returns the first candidate's finish reason
func (r *GenerateContentResponse) FinishReason() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].FinishReason
}
