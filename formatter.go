package grantqa

import (
	"fmt"
	"strings"
)

// Separators used by FormatGrants. Downstream consumers parse the output,
// so these must not change.
const (
	categorySeparator = "\n\n---\n\n"
	grantSeparator    = "\n\n"
)

// grantGroup is a category and its grants in first-seen order.
type grantGroup struct {
	category string
	grants   []*Grant
}

// FormatGrants formats grants grouped by category.
// Categories appear in the order they are first seen and grants keep their
// input order within a category. Grants without a category are grouped
// under DefaultCategory.
func FormatGrants(grants []*Grant) string {
	if len(grants) == 0 {
		return ""
	}

	groups := groupByCategory(grants)

	blocks := make([]string, 0, len(groups))
	for _, group := range groups {
		entries := make([]string, 0, len(group.grants))
		for _, g := range group.grants {
			entries = append(entries, formatGrant(g))
		}
		blocks = append(blocks, "Category: "+group.category+"\n\n"+strings.Join(entries, grantSeparator))
	}

	return strings.Join(blocks, categorySeparator)
}

// FormatLink renders a URL as an HTML anchor opening in a new tab.
func FormatLink(url string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, url, url)
}

func groupByCategory(grants []*Grant) []*grantGroup {
	var groups []*grantGroup
	index := make(map[string]*grantGroup)
	for _, g := range grants {
		category := g.CategoryOrDefault()
		group, ok := index[category]
		if !ok {
			group = &grantGroup{category: category}
			index[category] = group
			groups = append(groups, group)
		}
		group.grants = append(group.grants, g)
	}
	return groups
}

func formatGrant(g *Grant) string {
	return strings.Join([]string{
		"Name: " + g.Name,
		"Details: " + g.Details,
		"Subcategory: " + g.Subcategory,
		"Link: " + FormatLink(g.Link),
	}, "\n")
}
