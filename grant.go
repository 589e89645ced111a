package grantqa

import (
	"context"
	"time"
)

// DefaultCategory is the category used for grants that have none.
const DefaultCategory = "Other"

// SearchLimit is the maximum number of grants a question resolves to.
const SearchLimit = 5

// Grant represents a funding program record.
type Grant struct {
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string    `json:"name" yaml:"name"`
	Details     string    `json:"details" yaml:"details"`
	Link        string    `json:"link" yaml:"link"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory string    `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	ContentHash string    `json:"contentHash,omitempty" yaml:"-"`
	CreatedAt   time.Time `json:"createdAt,omitempty" yaml:"-"`
}

// Validate returns an error if the grant contains invalid fields.
func (g *Grant) Validate() error {
	if g.Name == "" {
		return Errorf(EINVALID, "grant name required")
	}
	if g.Link == "" {
		return Errorf(EINVALID, "grant link required")
	}
	return nil
}

// CategoryOrDefault returns the grant's category, or DefaultCategory if empty.
func (g *Grant) CategoryOrDefault() string {
	if g.Category == "" {
		return DefaultCategory
	}
	return g.Category
}

// GrantService represents a service for querying and loading grants.
type GrantService interface {
	// FindGrants retrieves grants matching the filter in store order.
	FindGrants(ctx context.Context, filter GrantFilter) ([]*Grant, error)

	// CreateGrant stores a new grant.
	// Returns ECONFLICT if an identical grant already exists.
	CreateGrant(ctx context.Context, grant *Grant) error

	// CountGrants returns the number of stored grants.
	CountGrants(ctx context.Context) (int, error)
}

// GrantFilter represents a filter for FindGrants.
type GrantFilter struct {
	// Keyword matches case-insensitively as a substring of the name,
	// details, category or subcategory.
	Keyword *string `json:"keyword"`

	// Category matches the category exactly, ignoring case.
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
