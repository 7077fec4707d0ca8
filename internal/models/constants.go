// Package models contains data types and constants for the Generative Language API.
package models

import "strings"

// Endpoints for the Generative Language API
const (
	EndpointBase = "https://generativelanguage.googleapis.com/v1beta"

	// MethodGenerateContent is appended to the model resource path
	MethodGenerateContent = ":generateContent"

	UserAgent = "emailai/0.1"
)

// Model represents a content-generation model exposed by the API
type Model struct {
	Name        string
	Description string
}

// Available models
var (
	ModelGeminiPro = Model{
		Name:        "gemini-pro",
		Description: "Text generation (default)",
	}

	ModelGemini15Flash = Model{
		Name:        "gemini-1.5-flash",
		Description: "Fast, lower latency",
	}

	ModelGemini15Pro = Model{
		Name:        "gemini-1.5-pro",
		Description: "Higher quality, slower",
	}

	// DefaultModel is the model used when nothing else is configured
	DefaultModel = ModelGeminiPro
)

// AllModels returns a list of all known models
func AllModels() []Model {
	return []Model{ModelGeminiPro, ModelGemini15Flash, ModelGemini15Pro}
}

// ModelFromName returns a Model by its name.
// Unknown names are passed through so newer models can be used without a release.
func ModelFromName(name string) Model {
	name = strings.TrimPrefix(strings.TrimSpace(name), "models/")
	if name == "" {
		return DefaultModel
	}
	for _, m := range AllModels() {
		if m.Name == name {
			return m
		}
	}
	return Model{Name: name}
}

// GenerateContentURL builds the generateContent URL for a model, without the API key
func GenerateContentURL(endpoint string, model Model) string {
	if endpoint == "" {
		endpoint = EndpointBase
	}
	return strings.TrimRight(endpoint, "/") + "/models/" + model.Name + MethodGenerateContent
}

// DefaultHeaders returns the default headers for generateContent requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   UserAgent,
	}
}
