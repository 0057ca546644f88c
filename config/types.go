// Package config holds the immutable description of a state space: the
// element bank, the ordered list of containers, and the allowed transitions
// between them. Configuration is read-only once built and is shared by
// every other package — codec, handler, transition, search — by reference.
package config

// Transition is one allowed move declared on a source container: move an
// element to container Target, taking it out via the From position handler
// and placing it via the To position handler. From/To may be left empty to
// fall back to the source/target container's own declared Handler.
type Transition struct {
	Target   string   `yaml:"target"`
	From     string   `yaml:"from,omitempty"`
	To       string   `yaml:"to,omitempty"`
	MoveType string   `yaml:"moveType,omitempty"`
	Cost     *float64 `yaml:"cost,omitempty"`
}

// Container is a fixed-capacity, ordered sequence of slots. Handler is its
// default position policy, used by any transition that doesn't name its
// own From/To tag.
type Container struct {
	ID          string         `yaml:"id"`
	Capacity    int            `yaml:"capacity"`
	Handler     string         `yaml:"handler"`
	InitialFill []string       `yaml:"initialFill,omitempty"`
	Metadata    map[string]any `yaml:"metadata,omitempty"`
	Transitions []Transition   `yaml:"transitions,omitempty"`
}

// EffectiveFrom returns tr.From if set, else the source container's own
// default Handler.
func (ct Container) EffectiveFrom(tr Transition) string {
	if tr.From != "" {
		return tr.From
	}
	return ct.Handler
}

// EffectiveTo returns tr.To if set, else the target container's own
// default Handler.
func (c *Config) EffectiveTo(tr Transition) string {
	if tr.To != "" {
		return tr.To
	}
	if idx := c.ContainerIndex(tr.Target); idx != -1 {
		return c.Containers[idx].Handler
	}
	return ""
}

// TransitionEngineOptions configures how the transition engine resolves a
// move's type tag when a transition doesn't supply one.
type TransitionEngineOptions struct {
	// DefaultMoveType is used when neither a transition-supplied tag nor a
	// MoveTypeResolver produces one.
	DefaultMoveType string
	// MoveTypeResolver, if set, is the single source of truth for move-type
	// resolution: it is always consulted and must return a non-empty tag.
	// When nil, the supplied-tag-or-default rule applies.
	MoveTypeResolver func(fromID, toID, suppliedTag string) string
}

// EmptyRank mirrors codec.EmptyRank as a config-level setting; NewCoder
// maps it onto the codec's own value.
type EmptyRank int

const (
	// EmptySmallest ranks the empty marker below every bank tag (default).
	EmptySmallest EmptyRank = iota
	// EmptyLargest ranks the empty marker above every bank tag.
	EmptyLargest
)

// Config is the immutable description of containers, element bank, and
// transition rules that every other component operates against.
type Config struct {
	Bank        []string                `yaml:"elementBank"`
	Containers  []Container             `yaml:"containers"`
	Engine      TransitionEngineOptions `yaml:"-"`
	RankOfEmpty EmptyRank               `yaml:"-"`
}

// N returns the permutation length: the sum of all container capacities.
func (c *Config) N() int {
	n := 0
	for _, ct := range c.Containers {
		n += ct.Capacity
	}
	return n
}

// Capacities returns each container's capacity in declaration order.
func (c *Config) Capacities() []int {
	caps := make([]int, len(c.Containers))
	for i, ct := range c.Containers {
		caps[i] = ct.Capacity
	}
	return caps
}

// ContainerIndex returns the declaration-order index of a container id, or
// -1 if it does not exist.
func (c *Config) ContainerIndex(id string) int {
	for i, ct := range c.Containers {
		if ct.ID == id {
			return i
		}
	}
	return -1
}

// ResolveMoveType applies the Open Question's total contract: a supplied
// MoveTypeResolver is always consulted; otherwise the transition's own tag
// is used, falling back to DefaultMoveType.
func (c *Config) ResolveMoveType(fromID, toID, suppliedTag string) string {
	if c.Engine.MoveTypeResolver != nil {
		return c.Engine.MoveTypeResolver(fromID, toID, suppliedTag)
	}
	if suppliedTag != "" {
		return suppliedTag
	}
	return c.Engine.DefaultMoveType
}
