package grantqa

// Converter renders an answer containing HTML anchors as Markdown.
type Converter interface {
	// Convert transforms an answer into Markdown. Lines without markup are
	// passed through unchanged.
	Convert(answer string) (string, error)
}
