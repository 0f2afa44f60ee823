package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzle-framework/pencil/pkg/pencil"
)

func TestLinesLayout(t *testing.T) {
	lines := Plain().Lines(pencil.NewBoard())
	require.Len(t, lines, GridLines)

	for lineno, line := range lines {
		switch {
		case lineno%12 == 11:
			assert.Equal(t, "===+===+===++===+===+===++===+===+===", line, "line %d", lineno)
		case lineno%4 == 3:
			assert.Equal(t, "---+---+---++---+---+---++---+---+---", line, "line %d", lineno)
		default:
			assert.Len(t, line, 37, "line %d", lineno)
		}
	}
}

func TestLinesOpenCells(t *testing.T) {
	lines := Plain().Lines(pencil.NewBoard())

	// every candidate shows at its fixed sub-position
	assert.Equal(t, "123|123|123||123|123|123||123|123|123", lines[0])
	assert.Equal(t, "456|456|456||456|456|456||456|456|456", lines[1])
	assert.Equal(t, "789|789|789||789|789|789||789|789|789", lines[2])
}

func TestLinesSolvedCells(t *testing.T) {
	board, err := pencil.Parse("123456789456789123789123456234567891567891234891234567345678912678912345912345678")
	require.NoError(t, err)

	lines := Plain().Lines(board)
	assert.Equal(t, "   |   |   ||   |   |   ||   |   |   ", lines[0])
	assert.Equal(t, " 1 | 2 | 3 || 4 | 5 | 6 || 7 | 8 | 9 ", lines[1])
	assert.Equal(t, " 9 | 1 | 2 || 3 | 4 | 5 || 6 | 7 | 8 ", lines[33])
}

func TestLinesPartialCandidates(t *testing.T) {
	board := pencil.NewBoard()
	for _, digit := range []int{2, 3, 4, 6, 7, 8, 9} {
		require.NoError(t, board.Remove(0, digit))
	}

	lines := Plain().Lines(board)
	assert.True(t, strings.HasPrefix(lines[0], "1  |"))
	assert.True(t, strings.HasPrefix(lines[1], " 5 |"))
	assert.True(t, strings.HasPrefix(lines[2], "   |"))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Plain().Write(&buf, pencil.NewBoard()))
	assert.Len(t, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), GridLines)
}
