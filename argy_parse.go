package argy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	// UnknownArgumentErr is wrapped when a token names nothing in the registry.
	UnknownArgumentErr = errors.New("unknown argument")
	// AliasTargetMissingErr is wrapped when an alias points at something that is not an argument.
	AliasTargetMissingErr = errors.New("alias target missing")
	// MissingValueErr is wrapped when a value-taking argument is given without a value.
	MissingValueErr = errors.New("missing value")
	// MissingRequiredArgumentErr is wrapped when a required name was never matched.
	MissingRequiredArgumentErr = errors.New("missing required argument")
)

// HelpInvokedErr is returned by ParseOrError when the auto-help argument was matched.
// Help output has already been written when it is returned.
var HelpInvokedErr = errors.New("help invoked")

// DumpInvokedErr is returned by ParseOrError when dump is invoked (via WithDump(true)).
var DumpInvokedErr = errors.New("dump invoked")

// ParseError carries the user-facing message of a failed registration or
// parse. Use errors.Is against the sentinel errors above to tell kinds apart.
type ParseError struct {
	kind error
	msg  string
}

func newParseError(kind error, msg string) *ParseError {
	return &ParseError{kind: kind, msg: msg}
}

func (e *ParseError) Error() string {
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.kind
}

// ProgrammingError wraps errors caused by incorrect library setup.
// These are bugs in the code using Argy, not user input errors.
type ProgrammingError struct {
	msg string
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

func NewProgrammingError(msg string) *ProgrammingError {
	return &ProgrammingError{msg: msg}
}

// ParseOrExit parses args and terminates the process on anything but
// success: code 0 after help or dump, code 1 after printing an error.
func (a *Argy) ParseOrExit(args []string, opts ...ParseOpt) {
	err := a.parse(args, opts...)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, HelpInvokedErr):
		osExit(0)
	case errors.Is(err, DumpInvokedErr):
		fmt.Fprint(stdoutWriter, a.generateDump(args, opts...))
		osExit(0)
	default:
		ExitOnError(err)
	}
}

// ParseOrError parses args and returns the first failure instead of exiting.
func (a *Argy) ParseOrError(args []string, opts ...ParseOpt) error {
	return a.parse(args, opts...)
}

// ExecArguments parses the process arguments. The tokens are consumed:
// os.Args is left holding only the program name.
func (a *Argy) ExecArguments(opts ...ParseOpt) {
	var args []string
	if len(os.Args) > 1 {
		args = append(args, os.Args[1:]...)
		os.Args = os.Args[:1]
	}
	a.ParseOrExit(args, opts...)
}

func (a *Argy) parse(args []string, opts ...ParseOpt) error {
	initializeColorFromEnv()

	cfg := &parseCfg{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dump {
		return DumpInvokedErr
	}

	matched := make(map[string]bool)
	for _, token := range args {
		stop, err := a.parseToken(token, matched, cfg)
		if err != nil {
			return err
		}
		if stop {
			return HelpInvokedErr
		}
	}

	return a.validateRequired(matched)
}

// parseToken handles one token, recording the matched name and running the
// action. stop is true when the action was the auto-help.
func (a *Argy) parseToken(token string, matched map[string]bool, cfg *parseCfg) (stop bool, err error) {
	key, raw, value := splitToken(token)
	prefix, name := observedPrefix(key)

	entry, ok := a.entries.Get(name)
	if !ok {
		return false, unknownArgument(key, raw)
	}

	var arg *Argument
	switch e := entry.(type) {
	case *Argument:
		arg = e
	case *Alias:
		target, err := a.resolveTarget(e)
		if err != nil {
			return false, err
		}
		arg = target
	}

	// Aliases count towards their target's required constraint.
	matched[arg.Name] = true

	if prefix != getBaseArg(entry).Prefix {
		if cfg.strictPrefix {
			return false, unknownArgument(key, raw)
		}
		return false, nil
	}

	if arg.TakesValue {
		if value == nil {
			return false, newParseError(MissingValueErr, fmt.Sprintf("Value cannot be undefined \"%s=undefined\"", key))
		}
		arg.run(value)
	} else {
		arg.run(nil)
	}

	return arg.exitsAfter, nil
}

// unknownArgument reports the value as typed, so "--nope=" shows an empty
// value rather than undefined.
func unknownArgument(key string, raw *string) error {
	v := "undefined"
	if raw != nil {
		v = *raw
	}
	return newParseError(UnknownArgumentErr, fmt.Sprintf("Unknown argument (key: %s value: %s)", key, v))
}

// validateRequired reports the first required name, in registration order,
// that was not matched.
func (a *Argy) validateRequired(matched map[string]bool) error {
	for _, name := range a.required {
		entry, _ := a.entries.Get(name)
		base := getBaseArg(entry)
		takesValue := base.TakesValue

		satisfiedBy := name
		if al, ok := entry.(*Alias); ok {
			satisfiedBy = al.Target
			if target, err := a.resolveTarget(al); err == nil {
				takesValue = target.TakesValue
			}
		}

		if !matched[satisfiedBy] {
			return newParseError(
				MissingRequiredArgumentErr,
				fmt.Sprintf("Missing required argument \"%s\"", display(base.Prefix, name, takesValue)),
			)
		}
	}
	return nil
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("ARGY_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		// "auto", unset or unrecognised: amterp/color decides based on the tty
	}
}
