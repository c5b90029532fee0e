package research

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// ResearchRepository is the storage surface for research documents.
type ResearchRepository interface {
	Create(ctx context.Context, d *domain.ResearchDocument) (*domain.ResearchDocument, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.ResearchDocument, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
