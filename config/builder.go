package config

// Builder constructs a Config fluently for hosts that supply configuration
// from code instead of a YAML file — the runner's built-in samples and tests
// use this instead of round-tripping through a document, the same way the
// teacher's ManualPatternProvider builds options without a config file.
type Builder struct {
	cfg Config
}

// NewBuilder starts a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bank sets the element bank's declared order.
func (b *Builder) Bank(tags ...string) *Builder {
	b.cfg.Bank = tags
	return b
}

// Container appends one container definition.
func (b *Builder) Container(ct Container) *Builder {
	b.cfg.Containers = append(b.cfg.Containers, ct)
	return b
}

// Engine sets the transition-engine move-type resolution options.
func (b *Builder) Engine(opts TransitionEngineOptions) *Builder {
	b.cfg.Engine = opts
	return b
}

// EmptyRank sets where the empty marker ranks relative to the bank's
// declared tag order.
func (b *Builder) EmptyRank(rank EmptyRank) *Builder {
	b.cfg.RankOfEmpty = rank
	return b
}

// Build validates and returns the constructed Config.
func (b *Builder) Build() (*Config, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
