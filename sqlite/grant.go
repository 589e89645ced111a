package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/grantqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ grantqa.GrantService = (*GrantService)(nil)

// GrantService implements grantqa.GrantService using SQLite.
type GrantService struct {
	db *DB
}

// NewGrantService creates a new GrantService.
func NewGrantService(db *DB) *GrantService {
	return &GrantService{db: db}
}

// FindGrants retrieves grants matching the filter in insertion order.
func (s *GrantService) FindGrants(ctx context.Context, filter grantqa.GrantFilter) ([]*grantqa.Grant, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, details, link, category, subcategory, content_hash, created_at FROM grant_metadata WHERE 1=1")

	if filter.Keyword != nil {
		pattern := likePattern(*filter.Keyword)
		query.WriteString(` AND (name LIKE ? ESCAPE '\' OR details LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\' OR subcategory LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if filter.Category != nil {
		query.WriteString(" AND lower(category) = lower(?)")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY rowid ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []*grantqa.Grant
	for rows.Next() {
		var g grantqa.Grant
		var createdAt string

		if err := rows.Scan(&g.ID, &g.Name, &g.Details, &g.Link, &g.Category,
			&g.Subcategory, &g.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		if g.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		grants = append(grants, &g)
	}

	return grants, rows.Err()
}

// CreateGrant stores a new grant, assigning its ID, content hash and creation time.
func (s *GrantService) CreateGrant(ctx context.Context, grant *grantqa.Grant) error {
	if err := grant.Validate(); err != nil {
		return err
	}

	hash := hashGrant(grant)
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO grant_metadata (id, name, details, link, category, subcategory, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING
	`, id, grant.Name, grant.Details, grant.Link, grant.Category, grant.Subcategory,
		hash, createdAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return grantqa.Errorf(grantqa.ECONFLICT, "grant %q already exists", grant.Name)
	}

	grant.ID = id
	grant.ContentHash = hash
	grant.CreatedAt = createdAt
	return nil
}

// CountGrants returns the number of stored grants.
func (s *GrantService) CountGrants(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM grant_metadata").Scan(&n)
	return n, err
}
