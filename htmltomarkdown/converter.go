// Package htmltomarkdown renders grant answers as Markdown using
// html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/grantqa"
)

// Ensure Converter implements grantqa.Converter at compile time.
var _ grantqa.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to render answers as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders an answer as Markdown. Answers are line oriented, so each
// line is converted separately and lines without markup are kept verbatim.
func (c *Converter) Convert(answer string) (string, error) {
	if strings.TrimSpace(answer) == "" {
		return "", grantqa.Errorf(grantqa.EINVALID, "empty answer")
	}

	lines := strings.Split(answer, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "<") {
			continue
		}
		md, err := c.conv.ConvertString(line)
		if err != nil {
			return "", err
		}
		lines[i] = strings.TrimSpace(md)
	}

	return strings.Join(lines, "\n"), nil
}
