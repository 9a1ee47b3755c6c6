package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePatternMakesMetacharactersLiteral(t *testing.T) {
	// Underscores are common in filenames and must not act as
	// single-character wildcards.
	assert.Equal(t, `u1/my\_notes.pdf`, escapeLikePattern("u1/my_notes.pdf"))
	assert.Equal(t, `u1/100\%\_final.pdf`, escapeLikePattern("u1/100%_final.pdf"))
	assert.Equal(t, `dir\\file.pdf`, escapeLikePattern(`dir\file.pdf`))
	assert.Equal(t, "u1/plain-notes.pdf", escapeLikePattern("u1/plain-notes.pdf"))
}

func TestEscapeLikePatternBlocksMatchAllPath(t *testing.T) {
	// A caller-supplied "%" must not become a pattern matching every
	// stored URL.
	assert.Equal(t, `\%`, escapeLikePattern("%"))
}
