package input_test

import (
	"aoc/pkg/input"
	"aoc/pkg/serrors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "trailing newline", in: "1\n2\n", want: []string{"1", "2"}},
		{name: "crlf and spaces", in: " a \r\nb\r\n\r\n", want: []string{"a", "b"}},
		{name: "blank lines dropped", in: "\n\nx\n\n\ny", want: []string{"x", "y"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, input.Lines(tc.in))
		})
	}
}

func TestBlocks(t *testing.T) {
	text := "abc\n\na\nb\nc\n\n\n\nab\nac\n"
	require.Equal(t, []string{"abc", "a\nb\nc", "ab\nac"}, input.Blocks(text))
	require.Empty(t, input.Blocks("\n\n"))
}

func TestParse(t *testing.T) {
	got, err := input.ParseLines("1721\n979\n366\n", strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{1721, 979, 366}, got)

	_, err = input.ParseLines("1\ntwo\n3", strconv.Atoi)
	require.ErrorIs(t, err, serrors.ErrMalformedInput)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Contains(t, err.Error(), `item 2 ("two")`)
}

func TestParseIsRepeatable(t *testing.T) {
	text := "3\n1\n2"
	first, err := input.ParseLines(text, strconv.Atoi)
	require.NoError(t, err)
	second, err := input.ParseLines(text, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := input.Path(dir, 4)
	require.Equal(t, filepath.Join(dir, "day-04", "input"), path)

	_, err := input.ReadFile(path)
	require.ErrorIs(t, err, serrors.ErrUnreadable)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o600))
	got, err := input.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\n", got)
}
