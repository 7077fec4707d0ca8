// Command emailai drafts emails with the Gemini generateContent API.
package main

import "github.com/diogo/emailai/internal/commands"

func main() {
	commands.Execute()
}
