package agent

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinery/noughts-and-crosses-ai/game"
)

func TestHumanRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("nonsense\n4,1\n1\n 1 , 2 \n")
	var out strings.Builder
	h := NewHuman(in, &out)

	m, err := h.NextMove(game.New())
	require.NoError(t, err)
	assert.Equal(t, game.Move{Row: 1, Col: 2}, m)
	assert.Contains(t, out.String(), "Please enter a valid space")
}

func TestHumanRejectsOccupiedCell(t *testing.T) {
	b := game.New()
	b, err := b.Apply(game.Move{Row: 0, Col: 0})
	require.NoError(t, err)

	in := strings.NewReader("0,0\n0,1\n")
	var out strings.Builder
	h := NewHuman(in, &out)

	m, err := h.NextMove(b)
	require.NoError(t, err)
	assert.Equal(t, game.Move{Row: 0, Col: 1}, m)
	assert.Contains(t, out.String(), "Space must be empty.")
}

func TestHumanEOF(t *testing.T) {
	h := NewHuman(strings.NewReader(""), io.Discard)
	_, err := h.NextMove(game.New())
	assert.ErrorIs(t, err, io.EOF)
}
