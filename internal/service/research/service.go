package research

import (
	"context"
	"errors"
	"fmt"

	researchRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/research"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/research/models"
)

// Service manages research document metadata on the portal.
type Service struct {
	researchRepo ResearchRepository
	logger       Logger
}

// NewService creates a new research service instance.
func NewService(researchRepo ResearchRepository, logger Logger) *Service {
	return &Service{
		researchRepo: researchRepo,
		logger:       logger,
	}
}

// Create registers a new document.
func (s *Service) Create(ctx context.Context, req *models.CreateDocumentRequest) (*models.DocumentResponse, error) {
	s.logger.Info("Create: new document, title=%s", req.Title)

	doc, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid document: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.researchRepo.Create(ctx, doc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: document id=%d created", created.ID)
	return models.FromDomainDocument(created), nil
}

// List fetches documents. The public feed only sees published entries.
func (s *Service) List(ctx context.Context, publishedOnly bool) (*models.DocumentListResponse, error) {
	docs, err := s.researchRepo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDocumentList(docs), nil
}

// Delete removes a document record. The stored file is not touched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing document id=%d", id)

	if err := s.researchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, researchRepo.ErrDocumentNotFound) {
			s.logger.Warn("Delete: document id=%d not found", id)
			return ErrDocumentNotFound
		}
		s.logger.Error("Delete: repository error for document id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: document id=%d removed", id)
	return nil
}
