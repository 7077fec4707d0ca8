package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diogo/emailai/internal/api"
	apierrors "github.com/diogo/emailai/internal/errors"
	"github.com/diogo/emailai/internal/models"
)

// FallbackAnswer is shown in the answer slot when a request fails
const FallbackAnswer = "Sorry - Something went wrong. Please try again!"

var (
	// ErrEmptyInput is returned when the text is empty after trimming
	ErrEmptyInput = errors.New("input is empty")
	// ErrBusy is returned while a request is outstanding
	ErrBusy = errors.New("a request is already in progress")
)

// State is the transient UI state owned by the controller
type State struct {
	Input  string // input buffer
	Busy   bool   // a request is outstanding
	Answer string // single-slot answer display
}

// Turn is a submission that has been accepted but not yet settled
type Turn struct {
	ID       string
	Question models.Message
	Started  time.Time
}

// Outcome is the settled result of a Turn
type Outcome struct {
	TurnID   string
	Answer   string // text shown in the answer slot
	Appended bool   // an answer message was added to the conversation
	Err      error  // diagnostic only, never needed to render the outcome
	Duration time.Duration
}

// OK reports whether the turn produced an answer message
func (o Outcome) OK() bool {
	return o.Appended
}

// Controller owns the conversation and serializes requests with a busy flag.
// All methods are safe for concurrent use; at most one request is ever
// outstanding.
type Controller struct {
	client api.ClientInterface
	logger zerolog.Logger

	mu    sync.Mutex
	conv  Conversation
	state State
	turn  *Turn
}

// ControllerOption configures a Controller
type ControllerOption func(*Controller)

// WithLogger sets the logger used for failed requests
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller bound to a generation client
func NewController(client api.ClientInterface, opts ...ControllerOption) *Controller {
	c := &Controller{
		client: client,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetInput replaces the input buffer
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Input = text
}

// Input returns the input buffer
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Input
}

// Begin accepts a submission: it appends the question, clears the input
// buffer and marks the controller busy. The request itself is made by
// Complete.
func (c *Controller) Begin(text string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Busy {
		return nil, ErrBusy
	}

	turn := &Turn{
		ID:       uuid.NewString(),
		Question: models.NewQuestion(text),
		Started:  time.Now(),
	}

	c.conv.append(turn.Question)
	c.state.Input = ""
	c.state.Busy = true
	c.turn = turn

	c.logger.Debug().
		Str("turn_id", turn.ID).
		Int("prompt_len", len(text)).
		Msg("submission accepted")

	return turn, nil
}

// Complete performs the request for an accepted turn and settles it.
// The busy flag is always cleared, whatever the result.
func (c *Controller) Complete(turn *Turn) Outcome {
	if turn == nil {
		return Outcome{Err: errors.New("nil turn")}
	}

	c.mu.Lock()
	if c.turn != turn {
		c.mu.Unlock()
		return Outcome{TurnID: turn.ID, Err: errors.New("turn is not outstanding")}
	}
	c.mu.Unlock()

	resp, err := c.client.GenerateContent(turn.Question.Content)

	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := Outcome{TurnID: turn.ID, Duration: time.Since(turn.Started)}

	if err != nil {
		outcome.Err = err
		outcome.Answer = FallbackAnswer
		ev := c.logger.Error().
			Err(err).
			Str("turn_id", turn.ID).
			Str("model", c.client.GetModel().Name).
			Int("status", apierrors.GetHTTPStatus(err)).
			Bool("network", apierrors.IsNetworkError(err)).
			Bool("parse", apierrors.IsParseError(err)).
			Dur("duration", outcome.Duration)
		if body := apierrors.GetResponseBody(err); body != "" {
			ev = ev.Str("response_body", body)
		}
		ev.Msg("generate content failed")
	} else {
		answer := models.NewAnswer(resp.Text())
		c.conv.append(answer)
		outcome.Answer = answer.Content
		outcome.Appended = true
		c.logger.Debug().
			Str("turn_id", turn.ID).
			Str("finish_reason", resp.FinishReason()).
			Dur("duration", outcome.Duration).
			Msg("answer received")
	}

	c.state.Answer = outcome.Answer
	c.state.Busy = false
	c.turn = nil

	return outcome
}

// Submit is Begin followed by Complete. It blocks until the request settles.
// Empty input and submissions while busy are rejected without a request.
func (c *Controller) Submit(text string) (Outcome, error) {
	turn, err := c.Begin(text)
	if err != nil {
		return Outcome{}, err
	}
	return c.Complete(turn), nil
}

// SubmitInput submits the current input buffer
func (c *Controller) SubmitInput() (Outcome, error) {
	return c.Submit(c.Input())
}

// Busy reports whether a request is outstanding
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Busy
}

// Answer returns the content of the answer slot
func (c *Controller) Answer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Answer
}

// State returns a snapshot of the transient state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns a copy of the conversation
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.Messages()
}

// Len returns the number of messages in the conversation
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.Len()
}

// ModelName returns the name of the model answering questions
func (c *Controller) ModelName() string {
	return c.client.GetModel().Name
}
