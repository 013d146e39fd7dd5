// Package ai contains the interpretation client for the readings LLM.
package ai

import "context"

// Interpreter produces a free-text reading interpretation from a system
// prompt and a composed user message.
type Interpreter interface {
	Interpret(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
