package argy

type parseCfg struct {
	strictPrefix bool
	dump         bool
}

type ParseOpt func(*parseCfg)

// WithStrictPrefix reports a token whose prefix differs from the matched
// entry's declared prefix as an unknown argument, instead of recording the
// match and skipping the action.
func WithStrictPrefix(strict bool) ParseOpt {
	return func(c *parseCfg) {
		c.strictPrefix = strict
	}
}

func WithDump(dump bool) ParseOpt {
	return func(c *parseCfg) {
		c.dump = dump
	}
}

type helpCfg struct {
	name   string
	prefix Prefix
}

type HelpOption func(*helpCfg)

func WithHelpName(name string) HelpOption {
	return func(c *helpCfg) {
		c.name = name
	}
}

func WithHelpPrefix(p Prefix) HelpOption {
	return func(c *helpCfg) {
		c.prefix = p
	}
}
