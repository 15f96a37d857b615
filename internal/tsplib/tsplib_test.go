package tsplib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTSPLIB(t *testing.T) {
	input := `NAME: toy
COMMENT: unit test fixture
NODE_COORD_SECTION
1 0.0 0.0
2 1.0 0.0
3 0.0 1.0
EOF
`
	doc, err := ParseTSPLIB(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "toy", doc.Name)
	require.Len(t, doc.Cities, 3)
	require.Equal(t, 1.0, doc.Cities[1].X)
}

func TestParseTSPLIB_Empty(t *testing.T) {
	_, err := ParseTSPLIB(strings.NewReader("NAME: empty\nEOF\n"))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseFlat(t *testing.T) {
	input := "3\n0 0\n1 0\n0 1\n"
	doc, err := ParseFlat(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, doc.Cities, 3)
	require.Equal(t, 1.0, doc.Cities[1].X)
}

func TestParseFlat_TruncatedInput(t *testing.T) {
	_, err := ParseFlat(strings.NewReader("3\n0 0\n"))
	require.Error(t, err)
}
