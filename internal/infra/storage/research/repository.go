package research

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/dbmetrics"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/psqlbuilder"
)

// DBExecutor is the query surface the repository needs.
type DBExecutor = dbmetrics.DBExecutor

var documentColumns = []string{
	"id",
	"title",
	"category",
	"summary",
	"file_url",
	"is_published",
	"published_at",
	"created_at",
	"updated_at",
}

// Repository persists research documents.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a research repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new document. published_at is set when the document is
// created already published.
func (r *Repository) Create(ctx context.Context, d *domain.ResearchDocument) (*domain.ResearchDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("research_documents").
		Columns("title", "category", "summary", "file_url", "is_published", "published_at")

	if d.IsPublished {
		insertBuilder = insertBuilder.Values(
			d.Title, d.Category, d.Summary, d.FileURL, d.IsPublished, squirrel.Expr("NOW()"))
	} else {
		insertBuilder = insertBuilder.Values(
			d.Title, d.Category, d.Summary, d.FileURL, d.IsPublished, nil)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, published_at, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.PublishedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// List fetches documents newest-first. With publishedOnly, drafts are
// omitted and ordering follows the publish timestamp.
func (r *Repository) List(ctx context.Context, publishedOnly bool) ([]*domain.ResearchDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(documentColumns...).
		From("research_documents")

	if publishedOnly {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_published": true}).
			OrderBy("published_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	documents := make([]*domain.ResearchDocument, 0)
	for rows.Next() {
		var d domain.ResearchDocument
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Category,
			&d.Summary,
			&d.FileURL,
			&d.IsPublished,
			&d.PublishedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		documents = append(documents, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return documents, nil
}

// Delete removes a document record. The stored file is managed elsewhere.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("research_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
