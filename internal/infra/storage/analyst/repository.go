package analyst

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

var analystColumns = []string{
	"id",
	"name",
	"title",
	"coverage",
	"email",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository persists analysts.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an analyst repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new analyst.
func (r *Repository) Create(ctx context.Context, a *domain.Analyst) (*domain.Analyst, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("analysts").
		Columns("name", "title", "coverage", "email", "is_active").
		Values(a.Name, a.Title, a.Coverage, a.Email, a.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID fetches one analyst.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Analyst, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(analystColumns...).
		From("analysts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAnalyst(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAnalystNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan analyst: %v", ErrScanRow, err)
	}

	return a, nil
}

// List fetches analysts ordered by name, optionally including inactive ones.
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Analyst, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(analystColumns...).
		From("analysts")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	analysts := make([]*domain.Analyst, 0)
	for rows.Next() {
		a, err := scanAnalyst(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		analysts = append(analysts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return analysts, nil
}

// Update rewrites an analyst's profile fields.
func (r *Repository) Update(ctx context.Context, id int64, a *domain.Analyst) (*domain.Analyst, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("analysts").
		Set("name", a.Name).
		Set("title", a.Title).
		Set("coverage", a.Coverage).
		Set("email", a.Email).
		Set("is_active", a.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrAnalystNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	a.ID = id
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalyst(row rowScanner) (*domain.Analyst, error) {
	var a domain.Analyst
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Title,
		&a.Coverage,
		&a.Email,
		&a.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}
