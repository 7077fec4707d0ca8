// Package chat implements the conversation controller: it owns the message
// history and the busy flag, and mediates every exchange with the
// content-generation client.
package chat

import "github.com/diogo/emailai/internal/models"

// Conversation is an ordered, append-only list of messages.
// It is not safe for concurrent use; the Controller guards it.
type Conversation struct {
	messages []models.Message
}

func (c *Conversation) append(msg models.Message) {
	c.messages = append(c.messages, msg)
}

// Len returns the number of messages
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages returns a copy of the messages in insertion order
func (c *Conversation) Messages() []models.Message {
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}
