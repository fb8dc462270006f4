package pdfreader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "a b c", CollapseWhitespace("  a\n\tb   c\r\n"))
	require.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestCSVCell(t *testing.T) {
	require.Equal(t, "a b", CSVCell("a\nb"))
	require.Equal(t, "a  b", CSVCell("a\r\nb"))
	require.Equal(t, "plain", CSVCell("plain"))
}
