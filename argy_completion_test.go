package argy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionCandidates(t *testing.T) {
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong, TakesValue: true})
	a.AddArgument("v", Options{Prefix: PrefixShort})
	a.AddArgument("run", Options{Prefix: PrefixNone})
	require.NoError(t, a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort}))

	assert.Equal(t, []string{"--foo=", "-v", "run", "-f="}, a.CompletionCandidates())
}

func TestGenBashCompletion(t *testing.T) {
	a := New().SetAppName("mytool")
	a.AddArgument("foo", Options{Prefix: PrefixLong, TakesValue: true})
	a.AddArgument("v", Options{Prefix: PrefixShort})

	var buf bytes.Buffer
	require.NoError(t, a.GenBashCompletion(&buf))

	out := buf.String()
	assert.Contains(t, out, "# bash completion for mytool")
	assert.Contains(t, out, `compgen -W "--foo= -v" -- "$cur"`)
	assert.Contains(t, out, "complete -o default -F _mytool_completions mytool")
}

func TestGenZshCompletion(t *testing.T) {
	a := New().SetAppName("mytool")
	a.AddArgument("foo", Options{Prefix: PrefixLong, TakesValue: true})
	a.AddArgument("v", Options{Prefix: PrefixShort})
	a.AddArgument("run", Options{Prefix: PrefixNone})

	var buf bytes.Buffer
	require.NoError(t, a.GenZshCompletion(&buf))

	out := buf.String()
	assert.Contains(t, out, "#compdef mytool")
	assert.Contains(t, out, "spaced=('-v' 'run')")
	assert.Contains(t, out, "unspaced=('--foo=')")
	assert.Contains(t, out, "compdef _mytool mytool")
}

func TestCompletionRequiresAppName(t *testing.T) {
	a := New()

	var buf bytes.Buffer
	err := a.GenBashCompletion(&buf)
	var progErr *ProgrammingError
	assert.True(t, errors.As(err, &progErr))

	err = a.GenZshCompletion(&buf)
	assert.True(t, errors.As(err, &progErr))
	assert.Empty(t, buf.String())
}
