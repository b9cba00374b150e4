package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/kb/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &repo{db} }

func (r *repo) CreateDocument(ctx context.Context, doc *entities.KBDocument, chunks []entities.KBChunk) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		for i := range chunks {
			chunks[i].DocID = doc.DocID
		}
		return tx.CreateInBatches(&chunks, 100).Error
	})
	return apperr.Storage("kb.CreateDocument", err)
}

func (r *repo) ListDocs(ctx context.Context) ([]entities.KBDocument, error) {
	var ds []entities.KBDocument
	if err := r.db.WithContext(ctx).Order("doc_id DESC").Find(&ds).Error; err != nil {
		return nil, apperr.Storage("kb.ListDocs", err)
	}
	return ds, nil
}

func (r *repo) AllChunks(ctx context.Context) ([]entities.KBChunk, error) {
	var cs []entities.KBChunk
	if err := r.db.WithContext(ctx).Order("chunk_id ASC").Find(&cs).Error; err != nil {
		return nil, apperr.Storage("kb.AllChunks", err)
	}
	return cs, nil
}

func (r *repo) DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.KBDocument, error) {
	if len(ids) == 0 {
		return map[uint]entities.KBDocument{}, nil
	}
	var ds []entities.KBDocument
	if err := r.db.WithContext(ctx).Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, apperr.Storage("kb.DocsByIDs", err)
	}
	m := make(map[uint]entities.KBDocument, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
