package argy

// Prefix is the marker a token must carry before an argument's name.
type Prefix int

const (
	PrefixLong  Prefix = iota // --name
	PrefixShort               // -name
	PrefixNone                // name
)

// String returns the literal characters of the prefix.
func (p Prefix) String() string {
	switch p {
	case PrefixLong:
		return "--"
	case PrefixShort:
		return "-"
	default:
		return ""
	}
}

func (p Prefix) label() string {
	switch p {
	case PrefixLong:
		return "long"
	case PrefixShort:
		return "short"
	default:
		return "none"
	}
}

// Action is invoked when an argument is matched. value is nil when the
// argument does not take a value.
type Action func(value *string)

const defaultDescription = "No description"

type BaseArg struct {
	Name        string // Identifier without prefix characters
	Prefix      Prefix // Prefix style the token must use
	TakesValue  bool   // Whether a token must carry name=value
	Required    bool   // Whether the name must be matched by end of parsing
	Description string // Help text, "No description" when empty
}

// Argument is an independently declared option with its own action.
type Argument struct {
	BaseArg
	Action Action

	exitsAfter bool // set for auto-help; parsing stops once the action has run
}

// Alias is an alternate name for an existing Argument. It has no action of
// its own; a match runs the target's action with the target's value rules.
type Alias struct {
	BaseArg
	Target string
}

// Options configures AddArgument.
type Options struct {
	Prefix      Prefix
	TakesValue  bool
	Required    bool
	Description string
	Action      Action
}

// AliasOptions configures AddAlias.
type AliasOptions struct {
	Prefix     Prefix
	TakesValue bool
	Required   bool
}

func NewArgument(name string) *Argument {
	return &Argument{BaseArg: BaseArg{Name: name, Prefix: PrefixLong}}
}

func (a *Argument) SetPrefix(p Prefix) *Argument {
	a.Prefix = p
	return a
}

func (a *Argument) SetTakesValue(b bool) *Argument {
	a.TakesValue = b
	return a
}

func (a *Argument) SetRequired(b bool) *Argument {
	a.Required = b
	return a
}

func (a *Argument) SetDescription(d string) *Argument {
	a.Description = d
	return a
}

func (a *Argument) SetAction(fn Action) *Argument {
	a.Action = fn
	return a
}

// Register adds a copy of the argument to the registry, overwriting any
// entry with the same name.
func (a *Argument) Register(r *Argy) {
	r.AddArgument(a.Name, Options{
		Prefix:      a.Prefix,
		TakesValue:  a.TakesValue,
		Required:    a.Required,
		Description: a.Description,
		Action:      a.Action,
	})
}

func NewAlias(name, target string) *Alias {
	return &Alias{BaseArg: BaseArg{Name: name, Prefix: PrefixLong}, Target: target}
}

func (a *Alias) SetPrefix(p Prefix) *Alias {
	a.Prefix = p
	return a
}

func (a *Alias) SetTakesValue(b bool) *Alias {
	a.TakesValue = b
	return a
}

func (a *Alias) SetRequired(b bool) *Alias {
	a.Required = b
	return a
}

func (a *Alias) Register(r *Argy) error {
	return r.AddAlias(a.Target, a.Name, AliasOptions{
		Prefix:     a.Prefix,
		TakesValue: a.TakesValue,
		Required:   a.Required,
	})
}

// run invokes the action, tolerating a nil Action.
func (a *Argument) run(value *string) {
	if a.Action != nil {
		a.Action(value)
	}
}
