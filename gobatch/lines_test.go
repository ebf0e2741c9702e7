package gobatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"ABAB", []string{"ABAB"}},
		{"ABAB\n", []string{"ABAB"}},
		{"ABAB\nCDCD\n", []string{"ABAB", "CDCD"}},
		{"ABAB\r\nCDCD\r\n", []string{"ABAB", "CDCD"}},
		{"A\n\nB", []string{"A", "", "B"}},
		{"\n", []string{""}},
	}
	for _, tc := range cases {
		got, err := ReadLines(strings.NewReader(tc.in))
		require.NoError(t, err, "%q", tc.in)
		require.Equal(t, tc.want, got, "%q", tc.in)
	}
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("AB", 1<<20)
	got, err := ReadLines(strings.NewReader("X\n" + long + "\nY"))
	require.NoError(t, err)
	require.Equal(t, []string{"X", long, "Y"}, got)
}
