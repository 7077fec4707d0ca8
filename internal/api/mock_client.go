package api

import (
	"sync"

	"github.com/diogo/emailai/internal/models"
)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	// Mock return values
	Model              models.Model
	GenerateContentVal *models.GenerateContentResponse
	GenerateContentErr error

	// Release, when set, makes GenerateContent block until it is closed or
	// receives a value. Started is signalled when a call begins.
	Release chan struct{}
	Started chan struct{}

	mu         sync.Mutex
	calls      int
	lastPrompt string
}

var _ ClientInterface = (*MockClient)(nil)

// NewMockClient returns a mock that answers every prompt with text
func NewMockClient(text string) *MockClient {
	return &MockClient{
		Model: models.DefaultModel,
		GenerateContentVal: &models.GenerateContentResponse{
			Candidates: []models.Candidate{{Text: text, FinishReason: "STOP"}},
		},
	}
}

// NewFailingMockClient returns a mock whose every call fails with err
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{Model: models.DefaultModel, GenerateContentErr: err}
}

func (m *MockClient) GenerateContent(prompt string) (*models.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls++
	m.lastPrompt = prompt
	m.mu.Unlock()

	if m.Started != nil {
		m.Started <- struct{}{}
	}
	if m.Release != nil {
		<-m.Release
	}

	if m.GenerateContentErr != nil {
		return nil, m.GenerateContentErr
	}
	return m.GenerateContentVal, nil
}

func (m *MockClient) GetModel() models.Model {
	return m.Model
}

// Calls returns how many times GenerateContent was invoked
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastPrompt returns the prompt of the most recent call
func (m *MockClient) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}
