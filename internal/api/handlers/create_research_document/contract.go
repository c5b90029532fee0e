package create_research_document

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/research/models"
)

type ResearchService interface {
	Create(ctx context.Context, req *models.CreateDocumentRequest) (*models.DocumentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
