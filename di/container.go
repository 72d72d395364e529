package di

import (
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Container is a node in a scope tree: a string-keyed registry of encoded
// singleton payloads with an optional parent.
//
// Resolution walks the chain (local store first, then ancestors), so a
// child sees everything its ancestors see plus its own registrations, while
// an ancestor never sees a descendant's. Creating a scope copies nothing;
// inheritance exists only in the lookup path.
//
// Expected usage:
//
//	root := di.NewContainer()
//	_ = root.RegisterValue("config", Config{Port: 8080})
//
//	request := root.Scope()
//	_ = request.RegisterValue("user", User{ID: 1})
//
//	var cfg Config
//	_ = request.ResolveInto("config", &cfg) // inherited from root
//
// All methods are safe for concurrent use.
type Container struct {
	id        string
	store     *serviceStore
	parent    *Container
	codec     Codec
	depth     int
	destroyed atomic.Bool
}

// NewContainer creates a root container. It takes no required
// configuration; options select the codec and pre-size the store.
func NewContainer(opts ...Option) *Container {
	cfg := containerConfig{codec: JSONCodec{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Container{
		id:    uuid.NewString(),
		store: newServiceStore(cfg.capacity),
		codec: cfg.codec,
	}
}

// Scope creates a child container whose parent is c and whose local store
// starts empty. It is constant-time regardless of how much the ancestors
// hold. The child keeps a reference to c, so a parent always outlives its
// live children; destroying the child never touches the parent's store.
func (c *Container) Scope(opts ...Option) *Container {
	cfg := containerConfig{codec: c.codec}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Container{
		id:     uuid.NewString(),
		store:  newServiceStore(cfg.capacity),
		parent: c,
		codec:  cfg.codec,
		depth:  c.depth + 1,
	}
}

// Register stores an already-encoded payload under key in the local store.
//
// Registration is strictly additive: a second registration of an existing
// key fails with AlreadyRegisteredError and leaves the first payload in
// place. Ancestors are never consulted and never mutated.
func (c *Container) Register(key string, payload []byte) error {
	if c.destroyed.Load() {
		return errDestroyed
	}
	if key == "" {
		return InvalidArgumentError{Reason: "empty service key"}
	}
	if !c.store.insert(key, payload) {
		return AlreadyRegisteredError{Key: key}
	}
	return nil
}

// RegisterValue encodes value with the container's codec and registers the
// result under key. Encoding failures surface as SerializationError.
func (c *Container) RegisterValue(key string, value any) error {
	if c.destroyed.Load() {
		return errDestroyed
	}
	if key == "" {
		return InvalidArgumentError{Reason: "empty service key"}
	}
	payload, err := c.codec.Encode(value)
	if err != nil {
		return SerializationError{Key: key, Cause: err}
	}
	return c.Register(key, payload)
}

// Resolve returns a copy of the payload registered under key, searching the
// local store first and then each ancestor in turn. If no container in the
// chain holds the key it fails with NotFoundError.
//
// A destroyed ancestor holds nothing and is skipped without faulting, so
// entries on still-live ancestors beyond it remain reachable.
func (c *Container) Resolve(key string) ([]byte, error) {
	if c.destroyed.Load() {
		return nil, errDestroyed
	}
	if key == "" {
		return nil, InvalidArgumentError{Reason: "empty service key"}
	}
	for node := c; node != nil; node = node.parent {
		if payload, ok := node.store.get(key); ok {
			return payload, nil
		}
	}
	return nil, NotFoundError{Key: key}
}

// ResolveInto resolves key and decodes the payload into target with the
// container's codec. A decode failure surfaces as SerializationError:
// a corrupt payload fails fast rather than continuing the chain search,
// and is never reported as NotFound.
func (c *Container) ResolveInto(key string, target any) error {
	if target == nil {
		return InvalidArgumentError{Reason: "nil decode target"}
	}
	payload, err := c.Resolve(key)
	if err != nil {
		return err
	}
	if err := c.codec.Decode(payload, target); err != nil {
		return SerializationError{Key: key, Cause: err}
	}
	return nil
}

// TryResolve is the non-failing variant of Resolve: NotFound collapses into
// ok == false, while every other error kind propagates unchanged so the
// caller cannot confuse "absent" with a real failure.
func (c *Container) TryResolve(key string) (payload []byte, ok bool, err error) {
	payload, err = c.Resolve(key)
	if err != nil {
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// TryResolveInto resolves and decodes like ResolveInto, collapsing NotFound
// into ok == false. SerializationError still propagates.
func (c *Container) TryResolveInto(key string, target any) (ok bool, err error) {
	payload, ok, err := c.TryResolve(key)
	if err != nil || !ok {
		return false, err
	}
	if err := c.codec.Decode(payload, target); err != nil {
		return false, SerializationError{Key: key, Cause: err}
	}
	return true, nil
}

// Contains walks the same chain as Resolve but only reports presence. It
// never allocates and never fails; a destroyed container reports false.
func (c *Container) Contains(key string) bool {
	if c.destroyed.Load() || key == "" {
		return false
	}
	for node := c; node != nil; node = node.parent {
		if node.store.contains(key) {
			return true
		}
	}
	return false
}

// ServiceCount reports the size of the local store only. Ancestors' entries
// are deliberately not counted; the asymmetry with Resolve's chain walk is
// part of the contract.
func (c *Container) ServiceCount() int {
	if c.destroyed.Load() {
		return 0
	}
	return c.store.len()
}

// Keys returns the locally registered keys in unspecified order.
func (c *Container) Keys() []string {
	if c.destroyed.Load() {
		return nil
	}
	return c.store.keys()
}

// Destroy tears the container down: the local store is released and every
// subsequent operation fails with an invalid-argument error. Destroy is
// idempotent and never mutates the parent or any child.
func (c *Container) Destroy() {
	if c.destroyed.Swap(true) {
		return
	}
	c.store.clear()
}

// Destroyed reports whether Destroy has been called.
func (c *Container) Destroyed() bool { return c.destroyed.Load() }

// ID returns the unique identifier of this scope, useful for tracking
// request- or session-scoped containers in logs and tests.
func (c *Container) ID() string { return c.id }

// Depth returns the scope depth: 0 for a root, parent depth + 1 otherwise.
func (c *Container) Depth() int { return c.depth }

// String returns a short debug summary.
func (c *Container) String() string {
	return "Container(id=" + c.id +
		", depth=" + strconv.Itoa(c.depth) +
		", services=" + strconv.Itoa(c.store.len()) +
		", destroyed=" + strconv.FormatBool(c.destroyed.Load()) + ")"
}
