package argy

import (
	"fmt"
	"io"
	"strings"
)

// CompletionCandidates returns every registered name as it would be typed,
// ending in '=' when a value is expected, in registration order.
func (a *Argy) CompletionCandidates() []string {
	var candidates []string
	for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
		base := getBaseArg(pair.Value)
		takesValue := base.TakesValue
		if al, ok := pair.Value.(*Alias); ok {
			if target, err := a.resolveTarget(al); err == nil {
				takesValue = target.TakesValue
			}
		}

		candidate := base.Prefix.String() + pair.Key
		if takesValue {
			candidate += "="
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// GenBashCompletion writes the bash completion script for this app to the given writer.
func (a *Argy) GenBashCompletion(w io.Writer) error {
	if a.AppName() == "" {
		return NewProgrammingError("an app name is required to generate completion scripts")
	}
	_, err := fmt.Fprintf(w, bashCompletionTemplate, a.AppName(), strings.Join(a.CompletionCandidates(), " "))
	return err
}

// GenZshCompletion writes the zsh completion script for this app to the given writer.
func (a *Argy) GenZshCompletion(w io.Writer) error {
	if a.AppName() == "" {
		return NewProgrammingError("an app name is required to generate completion scripts")
	}

	var spaced, unspaced []string
	for _, candidate := range a.CompletionCandidates() {
		if strings.HasSuffix(candidate, "=") {
			unspaced = append(unspaced, zshQuote(candidate))
		} else {
			spaced = append(spaced, zshQuote(candidate))
		}
	}

	_, err := fmt.Fprintf(w, zshCompletionTemplate, a.AppName(), strings.Join(spaced, " "), strings.Join(unspaced, " "))
	return err
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
