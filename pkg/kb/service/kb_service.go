package service

import (
	"context"

	"github.com/h809829-coder/agrosmart/entities"
)

type IngestInput struct {
	Title     string
	Tags      string
	Text      string
	SourceURL string
}

// Hit is a search result with its document's metadata attached.
type Hit struct {
	ChunkID   uint   `json:"chunk_id"`
	DocID     uint   `json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	Score     int    `json:"score"`
	DocTitle  string `json:"doc_title,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

type KBService interface {
	Ingest(ctx context.Context, in IngestInput) (*entities.KBDocument, int, error)
	// IngestURL fetches an allow-listed page and ingests its main text.
	// Empty title and tags fall back to the page's own title.
	IngestURL(ctx context.Context, rawURL, title, tags string) (*entities.KBDocument, int, error)
	Search(ctx context.Context, query string, k int) ([]Hit, error)
	ListDocs(ctx context.Context) ([]entities.KBDocument, error)
}
