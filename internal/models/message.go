package models

// Role identifies who produced a Message
type Role string

const (
	RoleQuestion Role = "question"
	RoleAnswer   Role = "answer"
)

// Message is one turn of the conversation. It is never mutated after creation.
type Message struct {
	Role    Role
	Content string
}

// NewQuestion creates a question message holding the literal user input
func NewQuestion(content string) Message {
	return Message{Role: RoleQuestion, Content: content}
}

// NewAnswer creates an answer message
func NewAnswer(content string) Message {
	return Message{Role: RoleAnswer, Content: content}
}

// IsQuestion reports whether the message was typed by the user
func (m Message) IsQuestion() bool {
	return m.Role == RoleQuestion
}
