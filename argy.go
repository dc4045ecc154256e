package argy

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Argy holds declared arguments and aliases and parses tokens against them.
type Argy struct {
	appName  string
	entries  *orderedmap.OrderedMap[string, any] // name -> *Argument or *Alias, in registration order
	required []string                            // required names, in the order they were registered
}

// Resolved is the view of an entry used while parsing. Prefix, Required and
// Description are the entry's own; TakesValue and Action come from the
// target when the entry is an alias.
type Resolved struct {
	Name        string
	Prefix      Prefix
	TakesValue  bool
	Required    bool
	Description string
	Target      string // empty unless the entry is an alias
	Action      Action
}

func (r Resolved) IsAlias() bool {
	return r.Target != ""
}

func New() *Argy {
	return &Argy{
		entries:  orderedmap.New[string, any](),
		required: []string{},
	}
}

func (a *Argy) SetAppName(name string) *Argy {
	a.appName = name
	return a
}

func (a *Argy) AppName() string {
	return a.appName
}

// AddArgument registers name, replacing any existing argument or alias of
// the same name. Replacement prints a warning and moves the name to the end
// of the registration order.
func (a *Argy) AddArgument(name string, opts Options) {
	a.evict(name)

	arg := &Argument{
		BaseArg: BaseArg{
			Name:        name,
			Prefix:      opts.Prefix,
			TakesValue:  opts.TakesValue,
			Required:    opts.Required,
			Description: opts.Description,
		},
		Action: opts.Action,
	}
	a.insert(arg.Name, arg)
}

// AddAlias registers alias as another name for the argument target. The
// alias keeps its own prefix and required flag; matches run the target's
// action. Fails without touching the registry if target is not an argument.
func (a *Argy) AddAlias(target, alias string, opts AliasOptions) error {
	if alias == target {
		return newParseError(AliasTargetMissingErr, fmt.Sprintf("Cannot register %q as an alias of itself!", alias))
	}

	entry, ok := a.entries.Get(target)
	targetArg, isArg := entry.(*Argument)
	if !ok || !isArg {
		return newParseError(AliasTargetMissingErr, "Cannot register an alias for an argument that doesn't exist!")
	}

	a.evict(alias)

	al := &Alias{
		BaseArg: BaseArg{
			Name:        alias,
			Prefix:      opts.Prefix,
			TakesValue:  opts.TakesValue,
			Required:    opts.Required,
			Description: fmt.Sprintf("Alias to %q", targetArg.Prefix.String()+target),
		},
		Target: target,
	}
	a.insert(al.Name, al)
	return nil
}

// Lookup returns the resolved view of name.
func (a *Argy) Lookup(name string) (Resolved, bool) {
	entry, ok := a.entries.Get(name)
	if !ok {
		return Resolved{}, false
	}

	base := getBaseArg(entry)
	res := Resolved{
		Name:        base.Name,
		Prefix:      base.Prefix,
		TakesValue:  base.TakesValue,
		Required:    base.Required,
		Description: describe(base),
	}

	switch e := entry.(type) {
	case *Argument:
		res.Action = e.Action
	case *Alias:
		res.Target = e.Target
		if target, err := a.resolveTarget(e); err == nil {
			res.TakesValue = target.TakesValue
			res.Action = target.Action
		}
	}
	return res, true
}

// RequiredNames returns the names that must be matched during parsing.
func (a *Argy) RequiredNames() []string {
	names := make([]string, len(a.required))
	copy(names, a.required)
	return names
}

// OrderedNames returns every registered name in registration order.
func (a *Argy) OrderedNames() []string {
	names := make([]string, 0, a.entries.Len())
	for pair := a.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// evict removes an existing entry and its required membership, warning
// that it is about to be replaced.
func (a *Argy) evict(name string) {
	if _, exists := a.entries.Get(name); !exists {
		return
	}

	printWarning(fmt.Sprintf("%q will be overwritten!", name))
	a.entries.Delete(name)
	for i, req := range a.required {
		if req == name {
			a.required = append(a.required[:i], a.required[i+1:]...)
			break
		}
	}
}

func (a *Argy) insert(name string, entry any) {
	a.entries.Set(name, entry)
	if getBaseArg(entry).Required {
		a.required = append(a.required, name)
	}
}

// resolveTarget returns the argument an alias points at. The target may have
// been overwritten by an alias since registration, in which case there is
// nothing to run.
func (a *Argy) resolveTarget(al *Alias) (*Argument, error) {
	entry, ok := a.entries.Get(al.Target)
	if arg, isArg := entry.(*Argument); ok && isArg {
		return arg, nil
	}
	return nil, newParseError(
		AliasTargetMissingErr,
		fmt.Sprintf("Alias %q points to %q which is no longer an argument", al.Name, al.Target),
	)
}
