package argy

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	grey       = color.New(color.FgHiBlack)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
	GreyS      = grey.SprintfFunc()
)

// AddAutoHelp registers an optional argument (default --help) that prints
// GenerateHelp to stdout. Parsing stops once it fires, so required
// arguments are not checked.
func (a *Argy) AddAutoHelp(opts ...HelpOption) {
	cfg := &helpCfg{name: "help", prefix: PrefixLong}
	for _, opt := range opts {
		opt(cfg)
	}

	a.AddArgument(cfg.name, Options{
		Prefix:      cfg.prefix,
		Description: "Displays help information",
		Action: func(*string) {
			fmt.Fprint(stdoutWriter, a.GenerateHelp())
		},
	})

	entry, _ := a.entries.Get(cfg.name)
	entry.(*Argument).exitsAfter = true
}

// GenerateHelp renders every registered name with its prefix, value suffix
// and description. Required entries are bold, optional ones grey.
func (a *Argy) GenerateHelp() string {
	var sb strings.Builder

	header := a.helpHeader()
	sb.WriteString(GreenBoldS(header) + "\n\n")

	for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(a.formatHelpLine(pair.Key, pair.Value) + "\n")
	}

	sb.WriteString("\n" + GreenBoldS(header) + "\n")
	return sb.String()
}

func (a *Argy) helpHeader() string {
	if a.AppName() == "" {
		return "--- HELP ---"
	}
	return fmt.Sprintf("-- %s - HELP --", strings.ToUpper(a.AppName()))
}

// formatHelpLine shows an alias under its own name and prefix, with the
// value suffix of the argument it resolves to.
func (a *Argy) formatHelpLine(name string, entry any) string {
	base := getBaseArg(entry)
	takesValue := base.TakesValue
	if al, ok := entry.(*Alias); ok {
		if target, err := a.resolveTarget(al); err == nil {
			takesValue = target.TakesValue
		}
	}

	line := fmt.Sprintf("  %q - %s", display(base.Prefix, name, takesValue), describe(base))
	if base.Required {
		return BoldS("%s", line)
	}
	return GreyS("%s", line)
}
