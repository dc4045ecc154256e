package argy

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/amterp/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCalled bool
	exitCode   int
}

// captureOutput redirects stdout, stderr and exit for the duration of the test
// and disables color so output can be compared verbatim.
func captureOutput(t *testing.T) *capture {
	t.Helper()
	t.Setenv("ARGY_COLOR", "never")

	prevNoColor := color.NoColor
	color.NoColor = true

	c := &capture{exitCode: -1}
	SetStdoutWriter(&c.stdout)
	SetStderrWriter(&c.stderr)
	SetExitFunc(func(code int) {
		c.exitCalled = true
		c.exitCode = code
	})

	t.Cleanup(func() {
		SetStdoutWriter(os.Stdout)
		SetStderrWriter(os.Stderr)
		SetExitFunc(os.Exit)
		color.NoColor = prevNoColor
	})
	return c
}

type call struct {
	name  string
	value *string
}

type recorder struct {
	calls []call
}

func (r *recorder) action(name string) Action {
	return func(value *string) {
		r.calls = append(r.calls, call{name: name, value: value})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestOrderedNamesFollowRegistrationOrder(t *testing.T) {
	c := captureOutput(t)
	a := New()

	names := []string{"zeta", "alpha", "mid", "b"}
	for _, name := range names {
		a.AddArgument(name, Options{Prefix: PrefixLong})
	}

	assert.Equal(t, names, a.OrderedNames())
	for _, name := range names {
		res, ok := a.Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, name, res.Name)
	}
	assert.Empty(t, c.stderr.String())
}

func TestLookupMissing(t *testing.T) {
	a := New()
	_, ok := a.Lookup("nope")
	assert.False(t, ok)
}

func TestLookupDefaultsDescription(t *testing.T) {
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixShort})

	res, ok := a.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, "No description", res.Description)
	assert.Equal(t, PrefixShort, res.Prefix)
	assert.False(t, res.IsAlias())
}

func TestOverwriteWarnsOnceAndReplacesRequired(t *testing.T) {
	c := captureOutput(t)
	a := New()

	a.AddArgument("foo", Options{Prefix: PrefixLong, Required: true})
	a.AddArgument("bar", Options{Prefix: PrefixLong})
	assert.Equal(t, []string{"foo"}, a.RequiredNames())

	a.AddArgument("foo", Options{Prefix: PrefixShort, Required: false})

	assert.Equal(t, "Argy warning: \"foo\" will be overwritten!\n", c.stderr.String())
	assert.Empty(t, a.RequiredNames())
	assert.Equal(t, []string{"bar", "foo"}, a.OrderedNames())

	res, _ := a.Lookup("foo")
	assert.Equal(t, PrefixShort, res.Prefix)
}

func TestOverwriteNonRequiredWithRequired(t *testing.T) {
	c := captureOutput(t)
	a := New()

	a.AddArgument("foo", Options{Prefix: PrefixLong})
	a.AddArgument("foo", Options{Prefix: PrefixLong, Required: true})

	assert.Equal(t, 1, strings.Count(c.stderr.String(), "will be overwritten"))
	assert.Equal(t, []string{"foo"}, a.RequiredNames())
	assert.Equal(t, []string{"foo"}, a.OrderedNames())
}

func TestAddAliasMissingTargetDoesNotMutate(t *testing.T) {
	c := captureOutput(t)
	a := New()
	a.AddArgument("f", Options{Prefix: PrefixLong, Required: true})

	err := a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort})

	assert.True(t, errors.Is(err, AliasTargetMissingErr))
	assert.Equal(t, "Cannot register an alias for an argument that doesn't exist!", err.Error())
	assert.Empty(t, c.stderr.String())
	assert.Equal(t, []string{"f"}, a.OrderedNames())
	assert.Equal(t, []string{"f"}, a.RequiredNames())
}

func TestAddAliasRejectsAliasTarget(t *testing.T) {
	captureOutput(t)
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong})
	require.NoError(t, a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort}))

	err := a.AddAlias("f", "g", AliasOptions{Prefix: PrefixShort})
	assert.True(t, errors.Is(err, AliasTargetMissingErr))
}

func TestAddAliasDescribesTarget(t *testing.T) {
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong, TakesValue: true})
	a.AddArgument("bar", Options{Prefix: PrefixNone})
	require.NoError(t, a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort}))
	require.NoError(t, a.AddAlias("bar", "b", AliasOptions{Prefix: PrefixLong}))

	f, ok := a.Lookup("f")
	require.True(t, ok)
	assert.Equal(t, `Alias to "--foo"`, f.Description)
	assert.Equal(t, "foo", f.Target)
	assert.Equal(t, PrefixShort, f.Prefix)
	assert.True(t, f.TakesValue)
	assert.True(t, f.IsAlias())

	b, _ := a.Lookup("b")
	assert.Equal(t, `Alias to "bar"`, b.Description)
	assert.False(t, b.TakesValue)
}

func TestAliasOverwriteClearsRequired(t *testing.T) {
	c := captureOutput(t)
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong})
	a.AddArgument("f", Options{Prefix: PrefixShort, Required: true})

	require.NoError(t, a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort}))

	assert.Equal(t, "Argy warning: \"f\" will be overwritten!\n", c.stderr.String())
	assert.Empty(t, a.RequiredNames())
	assert.Equal(t, []string{"foo", "f"}, a.OrderedNames())
}

func TestRequiredAliasJoinsRequiredSet(t *testing.T) {
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong})
	require.NoError(t, a.AddAlias("foo", "f", AliasOptions{Prefix: PrefixShort, Required: true}))

	assert.Equal(t, []string{"f"}, a.RequiredNames())
}

func TestBuildersRegister(t *testing.T) {
	a := New()
	rec := &recorder{}

	NewArgument("out").
		SetPrefix(PrefixShort).
		SetTakesValue(true).
		SetRequired(true).
		SetDescription("Output path").
		SetAction(rec.action("out")).
		Register(a)
	err := NewAlias("o", "out").SetPrefix(PrefixNone).Register(a)
	require.NoError(t, err)

	out, ok := a.Lookup("out")
	require.True(t, ok)
	assert.Equal(t, PrefixShort, out.Prefix)
	assert.True(t, out.TakesValue)
	assert.True(t, out.Required)
	assert.Equal(t, "Output path", out.Description)

	o, ok := a.Lookup("o")
	require.True(t, ok)
	assert.Equal(t, PrefixNone, o.Prefix)
	assert.Equal(t, "out", o.Target)

	o.Action(strPtr("x"))
	assert.Equal(t, []call{{name: "out", value: strPtr("x")}}, rec.calls)
}

func TestNewArgumentDefaultsToLongPrefix(t *testing.T) {
	assert.Equal(t, PrefixLong, NewArgument("x").Prefix)
	assert.Equal(t, PrefixLong, NewAlias("y", "x").Prefix)
}

func TestIndependentInstances(t *testing.T) {
	a := New()
	b := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong, Required: true})

	_, ok := b.Lookup("foo")
	assert.False(t, ok)
	assert.Empty(t, b.RequiredNames())
}

func TestPrefixString(t *testing.T) {
	assert.Equal(t, "--", PrefixLong.String())
	assert.Equal(t, "-", PrefixShort.String())
	assert.Equal(t, "", PrefixNone.String())
}

func TestAddAliasToItselfIsRejected(t *testing.T) {
	c := captureOutput(t)
	rec := &recorder{}
	a := New()
	a.AddArgument("foo", Options{Prefix: PrefixLong, Action: rec.action("foo")})

	err := a.AddAlias("foo", "foo", AliasOptions{Prefix: PrefixShort})

	assert.True(t, errors.Is(err, AliasTargetMissingErr))
	assert.Equal(t, `Cannot register "foo" as an alias of itself!`, err.Error())
	assert.Empty(t, c.stderr.String())

	res, ok := a.Lookup("foo")
	require.True(t, ok)
	assert.False(t, res.IsAlias())
	assert.NoError(t, a.ParseOrError([]string{"--foo"}))
	assert.Equal(t, []call{{name: "foo", value: nil}}, rec.calls)
}

func TestAppName(t *testing.T) {
	captureOutput(t)
	a := New()
	assert.Equal(t, "", a.AppName())

	a.SetAppName("mytool")
	assert.Equal(t, "mytool", a.AppName())
	assert.True(t, strings.HasPrefix(a.GenerateHelp(), "-- MYTOOL - HELP --"))
}
