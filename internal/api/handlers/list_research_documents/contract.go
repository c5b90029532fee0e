package list_research_documents

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/research/models"
)

type ResearchService interface {
	List(ctx context.Context, publishedOnly bool) (*models.DocumentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
