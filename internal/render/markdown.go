package render

import "strings"

// Block is one rendered README fragment. Each section produces exactly one
// block; the block owns its trailing spacing.
type Block struct {
	Markdown string
}

// Compose joins section blocks in order into the final document. Empty
// blocks are skipped.
func Compose(blocks ...Block) string {
	var doc strings.Builder
	for _, b := range blocks {
		if b.Markdown == "" {
			continue
		}
		doc.WriteString(b.Markdown)
	}
	return doc.String()
}

// Footer is the closing credit note appended after all sections.
func Footer() Block {
	return Block{Markdown: "> [!NOTE]\n" +
		"> <p align=\"center\">This README is <b>auto-generated</b> on a daily schedule.</p>\n"}
}
