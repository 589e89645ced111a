package grantqa

import "strings"

// keywordTerm maps a lower-case needle to its canonical search form.
type keywordTerm struct {
	needle    string
	canonical string
}

// vocabulary is checked top to bottom. The first term found wins.
var vocabulary = []keywordTerm{
	{needle: "defi", canonical: "DeFi"},
	{needle: "ethereum", canonical: "Ethereum"},
	{needle: "polygon", canonical: "Polygon"},
	{needle: "aave", canonical: "Aave"},
	{needle: "uniswap", canonical: "Uniswap"},
	{needle: "solana", canonical: "Solana"},
}

// ExtractKeyword reduces a question to a single search term.
// It returns the canonical form of the first known term contained in the
// question, ignoring case. If no term matches, the question is returned
// unchanged.
func ExtractKeyword(question string) string {
	lower := strings.ToLower(question)
	for _, term := range vocabulary {
		if strings.Contains(lower, term.needle) {
			return term.canonical
		}
	}
	return question
}
