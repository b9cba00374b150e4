package repository

import (
	"context"

	"github.com/h809829-coder/agrosmart/entities"
)

type KBRepository interface {
	// CreateDocument stores doc and its chunks atomically. Chunk DocIDs are
	// filled in from the new document.
	CreateDocument(ctx context.Context, doc *entities.KBDocument, chunks []entities.KBChunk) error
	ListDocs(ctx context.Context) ([]entities.KBDocument, error)
	AllChunks(ctx context.Context) ([]entities.KBChunk, error)
	DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.KBDocument, error)
}
