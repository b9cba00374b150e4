// Package ai wraps the text-completion providers used by the chat assistant.
package ai

import (
	"context"
	"strings"
)

// SystemPrompt frames every completion.
const SystemPrompt = "You are an expert agricultural AI assistant for the Agro Smart application. " +
	"Provide helpful, accurate, and concise advice on crop planning, soil health, irrigation, fertilizers, " +
	"and weather-related farming decisions. Keep your tone professional and encouraging for farmers."

type Client interface {
	// Complete returns the model's reply to message. kbContext, when not
	// empty, is reference material the reply may draw on.
	Complete(ctx context.Context, systemPrompt, message, kbContext string) (string, error)
	Name() string
}

func renderUserPrompt(message, kbContext string) string {
	kbContext = strings.TrimSpace(kbContext)
	if kbContext == "" {
		return message
	}
	var b strings.Builder
	b.WriteString(message)
	b.WriteString("\n\nReference notes (use only if relevant, do not quote at length):\n")
	b.WriteString(kbContext)
	return b.String()
}
