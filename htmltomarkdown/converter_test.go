package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/grantqa"
	"github.com/fwojciec/grantqa/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts anchor to markdown link", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`See <a href="https://example.com/grants" target="_blank">Example Grants</a> for details.`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example Grants](https://example.com/grants)")
		assert.NotContains(t, md, "<a ")
	})

	t.Run("keeps plain lines and separators verbatim", func(t *testing.T) {
		t.Parallel()

		answer := "Category: Lending\n\nName: Aave Grants DAO\nSubcategory: \n" +
			`Link: <a href="https://aavegrants.org" target="_blank">https://aavegrants.org</a>` +
			"\n\n---\n\nCategory: DEX"

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(answer)

		require.NoError(t, err)
		assert.Contains(t, md, "Category: Lending\n\nName: Aave Grants DAO\nSubcategory: \n")
		assert.Contains(t, md, "\n\n---\n\nCategory: DEX")
		assert.Contains(t, md, "https://aavegrants.org")
		assert.NotContains(t, md, "<a ")
		assert.NotContains(t, md, "target=")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, grantqa.EINVALID, grantqa.ErrorCode(err))
	})
}
