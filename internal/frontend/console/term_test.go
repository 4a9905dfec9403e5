package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tarnished/internal/frontend/console"
)

func newTestTerm(input string) (*console.Term, *bytes.Buffer) {
	var out bytes.Buffer
	return console.NewTerm(strings.NewReader(input), &out, false), &out
}

func TestTerm_ReadLine_LineEndings(t *testing.T) {
	term, _ := newTestTerm("one\ntwo\r\nthree\rfour")
	for _, want := range []string{"one", "two", "three", "four"} {
		got, err := term.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := term.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerm_ReadLine_DropsControlChars(t *testing.T) {
	term, _ := newTestTerm("a\x07b\tc\x1b\n")
	got, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ab\tc", got)
}

func TestTerm_Menu_ByNumberAndName(t *testing.T) {
	term, out := newTestTerm("2\nrest\n")
	opts := []string{"Show Stats", "Level Up", "Rest"}

	idx, err := term.Menu("Pick an action:", opts)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	idx, err = term.Menu("Pick an action:", opts)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	assert.Contains(t, out.String(), "  1. Show Stats")
	assert.Contains(t, out.String(), "Select [1-3]: ")
}

func TestTerm_Menu_InvalidReprompts(t *testing.T) {
	term, out := newTestTerm("0\n9\nbogus\n1\n")
	idx, err := term.Menu("Pick:", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid selection."))
}

func TestTerm_Menu_EOF(t *testing.T) {
	term, _ := newTestTerm("")
	_, err := term.Menu("Pick:", []string{"a"})
	assert.ErrorIs(t, err, io.EOF)
}

func TestTerm_YesNo(t *testing.T) {
	term, out := newTestTerm("maybe\nY\nno\n")
	yes, err := term.YesNo("Equip? ")
	require.NoError(t, err)
	assert.True(t, yes)
	yes, err = term.YesNo("Equip? ")
	require.NoError(t, err)
	assert.False(t, yes)
	assert.Contains(t, out.String(), "Please answer yes or no.")
}

func TestTerm_Int_Range(t *testing.T) {
	term, out := newTestTerm("4\nx\n 3 \n")
	n, err := term.Int("Players: ", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 1 to 3."))
}

func TestTerm_Text_RejectsBlank(t *testing.T) {
	term, _ := newTestTerm("   \n  Vyke \n")
	s, err := term.Text("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Vyke", s)
}

func TestTerm_WaitEnter(t *testing.T) {
	term, out := newTestTerm("\n")
	require.NoError(t, term.WaitEnter("Press 'ENTER' to continue..."))
	assert.Equal(t, "Press 'ENTER' to continue...", out.String())
}
