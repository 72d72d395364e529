package di

// ScopeBuilder stamps a standard set of registrations into each scope it
// builds. Useful when every request- or session-scope starts from the same
// seed services.
//
// Expected usage:
//
//	builder := di.NewScopeBuilder().
//	    Provide("request.defaults", Defaults{Timeout: 30}).
//	    Provide("request.limits", Limits{MaxBody: 1 << 20})
//
//	scope, err := builder.Build(root)
type ScopeBuilder struct {
	seeds []scopeSeed
}

type scopeSeed struct {
	key   string
	value any
}

// NewScopeBuilder creates an empty builder.
func NewScopeBuilder() *ScopeBuilder {
	return &ScopeBuilder{}
}

// Provide records a value to register in every built scope and returns the
// builder for chaining. Values are encoded at Build time with the new
// scope's codec, so one builder can serve parents with different codecs.
func (b *ScopeBuilder) Provide(key string, value any) *ScopeBuilder {
	b.seeds = append(b.seeds, scopeSeed{key: key, value: value})
	return b
}

// Build creates a child scope of parent and registers every provided seed
// into it. The first failing registration aborts the build; the usual error
// taxonomy applies (duplicate seed keys yield AlreadyRegisteredError,
// unencodable values yield SerializationError).
func (b *ScopeBuilder) Build(parent *Container, opts ...Option) (*Container, error) {
	if parent == nil {
		return nil, InvalidArgumentError{Reason: "nil parent container"}
	}
	if parent.Destroyed() {
		return nil, errDestroyed
	}
	scope := parent.Scope(opts...)
	for _, seed := range b.seeds {
		if err := scope.RegisterValue(seed.key, seed.value); err != nil {
			scope.Destroy()
			return nil, err
		}
	}
	return scope, nil
}

// Len reports the number of recorded seeds.
func (b *ScopeBuilder) Len() int { return len(b.seeds) }
