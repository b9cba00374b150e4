package service

import "context"

const (
	ReplyUnavailable = "Sorry, I'm having trouble connecting right now. Please check your connection."
	ReplyEmpty       = "I'm sorry, I couldn't process that. Please try again."
)

type Source struct {
	Title     string `json:"title"`
	SourceURL string `json:"source_url,omitempty"`
}

type Reply struct {
	Reply    string   `json:"reply"`
	Degraded bool     `json:"degraded"`
	Sources  []Source `json:"sources"`
}

type ChatService interface {
	Reply(ctx context.Context, message string) (Reply, error)
}
