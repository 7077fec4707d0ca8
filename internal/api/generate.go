package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/emailai/internal/errors"
	"github.com/diogo/emailai/internal/models"
)

// maxErrorBody limits how much of a failed response is kept for diagnostics
const maxErrorBody = 4096

// GenerateContent sends a prompt to the model and returns the parsed response.
// It makes exactly one attempt.
func (c *Client) GenerateContent(prompt string) (*models.GenerateContentResponse, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	model := c.GetModel()
	endpoint := models.GenerateContentURL(c.endpoint, model)

	payload, err := buildPayload(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.requestURL(endpoint), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkErrorWithEndpoint("generate content", endpoint, redactError(err, c.apiKey))
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, errorMessage(errorBody, resp.StatusCode), string(errorBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkErrorWithEndpoint("read response", endpoint, err)
	}

	return parseResponse(body)
}

// requestURL appends the API key as the "key" query parameter
func (c *Client) requestURL(endpoint string) string {
	return endpoint + "?key=" + url.QueryEscape(c.apiKey)
}

// buildPayload wraps the raw prompt in the generateContent envelope
func buildPayload(prompt string) ([]byte, error) {
	return json.Marshal(models.NewTextRequest(prompt))
}

// parseResponse extracts candidates from a generateContent response body
func parseResponse(body []byte) (*models.GenerateContentResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)

	text := parsed.Get(PathCandidateText)
	if !text.Exists() {
		if reason := parsed.Get(PathBlockReason).String(); reason != "" {
			return nil, apierrors.NewParseError("prompt blocked: "+reason, PathBlockReason)
		}
		return nil, apierrors.NewParseError("no text in response", PathCandidateText)
	}
	if text.Type != gjson.String {
		return nil, apierrors.NewParseError("candidate text is not a string", PathCandidateText)
	}

	var candidates []models.Candidate
	parsed.Get(PathCandidates).ForEach(func(_, cand gjson.Result) bool {
		candidates = append(candidates, models.Candidate{
			Text:         cand.Get(PathCandText).String(),
			FinishReason: cand.Get(PathCandFinishReason).String(),
		})
		return true
	})

	return &models.GenerateContentResponse{
		Candidates:   candidates,
		ModelVersion: parsed.Get(PathModelVersion).String(),
	}, nil
}

// errorMessage pulls the provider's error.message out of a failed response
func errorMessage(body []byte, status int) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, PathErrorMessage).String(); msg != "" {
			if st := gjson.GetBytes(body, PathErrorStatus).String(); st != "" {
				return st + ": " + msg
			}
			return msg
		}
	}
	return fmt.Sprintf("generate content failed (%s)", http.StatusText(status))
}

// redactError hides the API key if the transport echoed the request URL.
// The URL carries the query-escaped key, so both spellings are replaced.
func redactError(err error, apiKey string) error {
	if err == nil || apiKey == "" {
		return err
	}
	escaped := url.QueryEscape(apiKey)
	msg := err.Error()
	if !strings.Contains(msg, apiKey) && !strings.Contains(msg, escaped) {
		return err
	}
	return errors.New(strings.NewReplacer(escaped, "***", apiKey, "***").Replace(msg))
}
