package argy

import (
	"fmt"
	"os"
	"strings"
)

// GenerateDump creates a dump of the registry and the parsing context
func (a *Argy) GenerateDump(args []string, opts ...ParseOpt) string {
	return a.generateDump(args, opts...)
}

func (a *Argy) generateDump(args []string, opts ...ParseOpt) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Argy Registry Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(a.generateParseConfigSection(opts...))
	sb.WriteString(a.generateAppInfoSection())
	sb.WriteString(a.generateArgumentsToParseSection(args))
	sb.WriteString(a.generateRegistrySection())
	sb.WriteString(a.generateEnvironmentSection())

	return sb.String()
}

func (a *Argy) generateParseConfigSection(opts ...ParseOpt) string {
	cfg := &parseCfg{}
	for _, opt := range opts {
		opt(cfg)
	}

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Parse Configuration:") + "\n")
	sb.WriteString(fmt.Sprintf("  Strict Prefix: %s\n", BoldS(fmt.Sprintf("%t", cfg.strictPrefix))))
	sb.WriteString(fmt.Sprintf("  Dump Enabled: %s\n", BoldS(fmt.Sprintf("%t", cfg.dump))))
	sb.WriteString("\n")
	return sb.String()
}

func (a *Argy) generateAppInfoSection() string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("App Information:") + "\n")

	if a.AppName() != "" {
		sb.WriteString(fmt.Sprintf("  Name: %s\n", BoldS(a.AppName())))
	} else {
		sb.WriteString(fmt.Sprintf("  Name: %s\n", CyanS("not set")))
	}

	var helpNames []string
	for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
		if arg, ok := pair.Value.(*Argument); ok && arg.exitsAfter {
			helpNames = append(helpNames, arg.Prefix.String()+arg.Name)
		}
	}
	if len(helpNames) > 0 {
		sb.WriteString(fmt.Sprintf("  Auto Help: %s\n", BoldS(strings.Join(helpNames, ", "))))
	} else {
		sb.WriteString(fmt.Sprintf("  Auto Help: %s\n", CyanS("not registered")))
	}

	sb.WriteString("\n")
	return sb.String()
}

func (a *Argy) generateArgumentsToParseSection(args []string) string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("Arguments to Parse:") + "\n")

	if len(args) == 0 {
		sb.WriteString("  " + CyanS("<no arguments>") + "\n")
	} else {
		for i, arg := range args {
			sb.WriteString(fmt.Sprintf("  [%d]: %s\n", i, BoldS(fmt.Sprintf("%q", arg))))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (a *Argy) generateRegistrySection() string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("Registry:") + "\n")

	arguments, aliases := 0, 0
	for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := pair.Value.(*Alias); ok {
			aliases++
		} else {
			arguments++
		}
	}

	sb.WriteString(fmt.Sprintf("  Total Entries: %s\n", BoldS(fmt.Sprintf("%d", a.entries.Len()))))
	sb.WriteString(fmt.Sprintf("  Arguments: %s\n", BoldS(fmt.Sprintf("%d", arguments))))
	sb.WriteString(fmt.Sprintf("  Aliases: %s\n", BoldS(fmt.Sprintf("%d", aliases))))
	sb.WriteString(fmt.Sprintf("  Required: %s\n", BoldS(fmt.Sprintf("%d", len(a.required)))))
	sb.WriteString("\n")

	if a.entries.Len() > 0 {
		sb.WriteString(GreenBoldS("  Entries (in order):") + "\n")
		i := 0
		for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
			sb.WriteString(fmt.Sprintf("    [%d] %s\n", i, formatEntryForDump(pair.Value)))
			i++
		}
		sb.WriteString("\n")
	}

	if len(a.required) > 0 {
		sb.WriteString(GreenBoldS("  Required (in order):") + "\n")
		for _, name := range a.required {
			sb.WriteString(fmt.Sprintf("    %s\n", name))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatEntryForDump formats one entry, e.g.
// foo type:argument prefix:long takes-value required usage:"..."
func formatEntryForDump(entry any) string {
	base := getBaseArg(entry)
	parts := []string{base.Name}

	switch e := entry.(type) {
	case *Argument:
		parts = append(parts, "type:argument")
	case *Alias:
		parts = append(parts, "type:alias", "target:"+e.Target)
	}

	parts = append(parts, "prefix:"+base.Prefix.label())
	if base.TakesValue {
		parts = append(parts, "takes-value")
	}
	if base.Required {
		parts = append(parts, "required")
	} else {
		parts = append(parts, "optional")
	}
	parts = append(parts, fmt.Sprintf("usage:%q", describe(base)))

	return strings.Join(parts, " ")
}

func (a *Argy) generateEnvironmentSection() string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("Environment:") + "\n")

	argyColor := os.Getenv("ARGY_COLOR")
	if argyColor != "" {
		sb.WriteString(fmt.Sprintf("  ARGY_COLOR: %s\n", BoldS(argyColor)))
	} else {
		sb.WriteString(fmt.Sprintf("  ARGY_COLOR: %s\n", CyanS("not set")))
	}

	return sb.String()
}
