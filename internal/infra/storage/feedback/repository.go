package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/dbmetrics"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/psqlbuilder"
)

// DBExecutor is the query surface the repository needs.
type DBExecutor = dbmetrics.DBExecutor

// Repository persists reader feedback.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a feedback repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a feedback entry.
func (r *Repository) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("feedback").
		Columns("name", "email", "message", "rating").
		Values(f.Name, f.Email, f.Message, f.Rating).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time

	return f, nil
}

// List fetches all feedback entries, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "message", "rating", "created_at").
		From("feedback").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.Feedback, 0)
	for rows.Next() {
		var f domain.Feedback
		var createdAt sql.NullTime

		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Message, &f.Rating, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		f.CreatedAt = createdAt.Time
		entries = append(entries, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
