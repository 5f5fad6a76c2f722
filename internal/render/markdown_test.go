package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	t.Run("joins blocks in order", func(t *testing.T) {
		doc := Compose(Block{Markdown: "one\n"}, Block{Markdown: "two\n"})
		assert.Equal(t, "one\ntwo\n", doc)
	})

	t.Run("skips empty blocks", func(t *testing.T) {
		doc := Compose(Block{}, Block{Markdown: "body\n"}, Block{})
		assert.Equal(t, "body\n", doc)
	})

	t.Run("empty input yields empty document", func(t *testing.T) {
		assert.Equal(t, "", Compose())
	})
}

func TestFooter(t *testing.T) {
	footer := Footer()
	assert.Contains(t, footer.Markdown, "[!NOTE]")
	assert.Contains(t, footer.Markdown, "auto-generated")
}
