package argy

import "strings"

func getBaseArg(entry any) *BaseArg {
	switch e := entry.(type) {
	case *Argument:
		return &e.BaseArg
	case *Alias:
		return &e.BaseArg
	}
	return nil
}

func describe(base *BaseArg) string {
	if base.Description == "" {
		return defaultDescription
	}
	return base.Description
}

// splitToken separates "key=value" on the first '='. raw is nil only when
// there is no '='; value is also nil when nothing follows it.
func splitToken(token string) (key string, raw *string, value *string) {
	key, v, found := strings.Cut(token, "=")
	if !found {
		return key, nil, nil
	}
	if v == "" {
		return key, &v, nil
	}
	return key, &v, &v
}

// observedPrefix reads the prefix style off a token key and returns the
// name with the prefix stripped.
func observedPrefix(key string) (Prefix, string) {
	switch {
	case strings.HasPrefix(key, "--"):
		return PrefixLong, key[2:]
	case strings.HasPrefix(key, "-"):
		return PrefixShort, key[1:]
	default:
		return PrefixNone, key
	}
}

// display renders a name as a user would type it, e.g. --foo=value.
func display(prefix Prefix, name string, takesValue bool) string {
	s := prefix.String() + name
	if takesValue {
		s += "=value"
	}
	return s
}
