package move

import (
	"testing"

	"github.com/matryer/is"
)

type notationTestStruct struct {
	hex    int
	tile   int
	output string
}

var notationTests = []notationTestStruct{
	{9, 1, "h9:1"},
	{0, 9, "h0:9"},
	{18, 5, "h18:5"},
	{4, 3, "h4:3"},
}

func TestString(t *testing.T) {
	for _, tc := range notationTests {
		calc := New(tc.hex, tc.tile).String()
		if calc != tc.output {
			t.Errorf("For hex=%v tile=%v got %v, expected %v",
				tc.hex, tc.tile, calc, tc.output)
		}
	}
}

func TestParse(t *testing.T) {
	is := is.New(t)
	for _, tc := range notationTests {
		m, err := Parse(tc.output)
		is.NoErr(err)
		is.Equal(m, New(tc.hex, tc.tile))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	is := is.New(t)
	for _, bad := range []string{
		"", "9:5", "h:5", "h9", "h9:", "hx:5", "h9:x", "h19:5", "h-1:5",
		"h9:0", "h9:10",
	} {
		_, err := Parse(bad)
		is.True(err != nil) // garbage notation must not parse
	}
}

func TestNull(t *testing.T) {
	is := is.New(t)
	is.True(Null.IsNull())
	is.True(!New(0, 1).IsNull())
	is.Equal(Null.String(), "(none)")
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	is.True(New(9, 5).Equals(New(9, 5)))
	is.True(!New(9, 5).Equals(New(9, 6)))
	is.True(!New(9, 5).Equals(New(8, 5)))
}
