package api

import (
	"fmt"
	"strings"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/emailai/internal/errors"
	"github.com/diogo/emailai/internal/models"
)

// ClientInterface is what the conversation controller needs from a client
type ClientInterface interface {
	GenerateContent(prompt string) (*models.GenerateContentResponse, error)
	GetModel() models.Model
}

// Client talks to the Generative Language generateContent endpoint
type Client struct {
	httpClient tls_client.HttpClient
	apiKey     string
	model      models.Model
	endpoint   string
}

var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the model used for generation
func WithModel(model models.Model) ClientOption {
	return func(c *Client) {
		if model.Name != "" {
			c.model = model
		}
	}
}

// WithEndpoint overrides the API base URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithHTTPClient injects the HTTP client, mainly for tests
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client. The API key is required.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, apierrors.ErrNoAPIKey
	}

	client := &Client{
		apiKey:   apiKey,
		model:    models.DefaultModel,
		endpoint: models.EndpointBase,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// A submission is a single best-effort attempt: no client-side timeout.
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(0),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// GetModel returns the generation model
func (c *Client) GetModel() models.Model {
	return c.model
}
