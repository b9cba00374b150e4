package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/h809829-coder/agrosmart/pkg/ai"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/chat/service"
	kbservice "github.com/h809829-coder/agrosmart/pkg/kb/service"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

const (
	kbTopK       = 3
	kbMaxContext = 6000
	maxMessage   = 4000
)

type kbSearcher interface {
	Search(ctx context.Context, query string, k int) ([]kbservice.Hit, error)
}

type ChatSvc struct {
	llm ai.Client
	kb  kbSearcher
}

// New wires the assistant. kb may be nil.
func New(llm ai.Client, kb kbSearcher) *ChatSvc { return &ChatSvc{llm: llm, kb: kb} }

func (s *ChatSvc) Reply(ctx context.Context, message string) (service.Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return service.Reply{}, apperr.Wrap(apperr.ErrInvalidInput, "message is required")
	}
	if len([]rune(message)) > maxMessage {
		return service.Reply{}, apperr.Wrapf(apperr.ErrInvalidInput, "message must be at most %d characters", maxMessage)
	}

	kbCtx, sources := s.lookup(ctx, message)

	text, err := s.llm.Complete(ctx, ai.SystemPrompt, message, kbCtx)
	if err != nil {
		logger.Warn(ctx, "chat completion failed", zap.String("provider", s.llm.Name()), zap.Error(err))
		return service.Reply{Reply: service.ReplyUnavailable, Degraded: true, Sources: []service.Source{}}, nil
	}
	if strings.TrimSpace(text) == "" {
		text = service.ReplyEmpty
	}
	return service.Reply{Reply: text, Sources: sources}, nil
}

// lookup gathers knowledge-base context. Failures only cost the context.
func (s *ChatSvc) lookup(ctx context.Context, message string) (string, []service.Source) {
	sources := []service.Source{}
	if s.kb == nil {
		return "", sources
	}
	hits, err := s.kb.Search(ctx, message, kbTopK)
	if err != nil {
		logger.Warnf(ctx, "chat: kb search failed: %v", err)
		return "", sources
	}

	var b strings.Builder
	seen := map[uint]bool{}
	for _, h := range hits {
		if b.Len() > kbMaxContext {
			break
		}
		b.WriteString("\n---\n")
		b.WriteString(h.Text)
		if !seen[h.DocID] {
			seen[h.DocID] = true
			sources = append(sources, service.Source{Title: h.DocTitle, SourceURL: h.SourceURL})
		}
	}
	return b.String(), sources
}
