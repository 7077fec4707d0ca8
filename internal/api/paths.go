// Package api provides the Generative Language API client implementation.
package api

// GJSON paths for extracting values from generateContent responses.
const (
	// PathCandidateText is the single field the conversation needs:
	// candidates[0].content.parts[0].text
	PathCandidateText = "candidates.0.content.parts.0.text"

	PathCandidates   = "candidates"
	PathModelVersion = "modelVersion"
	PathBlockReason  = "promptFeedback.blockReason"

	// Candidate paths (relative to candidate object)
	PathCandText         = "content.parts.0.text"
	PathCandFinishReason = "finishReason"

	// Error envelope paths for non-2xx responses
	PathErrorMessage = "error.message"
	PathErrorStatus  = "error.status"
)
