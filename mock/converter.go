package mock

import "github.com/fwojciec/grantqa"

var _ grantqa.Converter = (*Converter)(nil)

// Converter is a mock implementation of grantqa.Converter.
type Converter struct {
	ConvertFn func(answer string) (string, error)
}

func (c *Converter) Convert(answer string) (string, error) {
	return c.ConvertFn(answer)
}
