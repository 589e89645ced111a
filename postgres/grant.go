package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/grantqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ grantqa.GrantService = (*GrantService)(nil)

// GrantService implements grantqa.GrantService using PostgreSQL.
type GrantService struct {
	db *DB
}

// NewGrantService creates a new GrantService.
func NewGrantService(db *DB) *GrantService {
	return &GrantService{db: db}
}

// FindGrants retrieves grants matching the filter.
// Rows come back in the server's default order.
func (s *GrantService) FindGrants(ctx context.Context, filter grantqa.GrantFilter) ([]*grantqa.Grant, error) {
	query, args := buildFindQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []*grantqa.Grant
	for rows.Next() {
		var g grantqa.Grant
		var details, category, subcategory sql.NullString

		if err := rows.Scan(&g.Name, &details, &g.Link, &category, &subcategory); err != nil {
			return nil, err
		}
		g.Details = details.String
		g.Category = category.String
		g.Subcategory = subcategory.String

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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (content_hash) DO NOTHING
	`, id, grant.Name, grant.Details, grant.Link, grant.Category, grant.Subcategory, hash, createdAt)
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

// buildFindQuery builds the SELECT for FindGrants with positional parameters.
func buildFindQuery(filter grantqa.GrantFilter) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, details, link, category, subcategory FROM grant_metadata WHERE true")

	if filter.Keyword != nil {
		args = append(args, likePattern(*filter.Keyword))
		n := len(args)
		fmt.Fprintf(&query, " AND (name ILIKE $%d OR details ILIKE $%d OR category ILIKE $%d OR subcategory ILIKE $%d)", n, n, n, n)
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		fmt.Fprintf(&query, " AND lower(category) = lower($%d)", len(args))
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	return query.String(), args
}

// likePattern returns an ILIKE pattern matching s anywhere, with wildcards in s escaped.
// Backslash is the default escape character in PostgreSQL.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// hashGrant computes the xxHash of a grant's content fields as a hex string.
func hashGrant(g *grantqa.Grant) string {
	content := strings.Join([]string{g.Name, g.Details, g.Link, g.Category, g.Subcategory}, "\x1f")
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
