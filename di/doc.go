// Package di implements a scoped singleton service container.
//
// A Container is a string-keyed registry of encoded payloads arranged in a
// parent/child scope tree. The package intentionally keeps the model small:
//
//   - singleton-per-scope: a key is registered at most once per container,
//     and the stored payload is immutable until teardown
//   - chain resolution: Resolve searches the local store first, then walks
//     up through ancestors until the key is found or the chain is exhausted
//   - one-directional visibility: a child sees its ancestors' registrations,
//     an ancestor never sees a child's
//
// There is no constructor auto-wiring, no reflection over type signatures,
// and no transient lifetime. Values cross the container boundary as opaque
// bytes produced by a Codec (JSON by default), which keeps the engine
// generic over arbitrary value shapes.
//
// Every fallible operation returns exactly one error kind from a closed
// taxonomy (see Code and CodeOf). NotFound and AlreadyRegistered are
// expected outcomes of normal use and are cheap to produce; the container
// itself never logs, retries, or suppresses.
//
// # Quick guidance
//
// Use Register/Resolve when you already hold encoded payloads. Use
// RegisterValue/ResolveInto to let the container's codec do the encoding.
// Use TryResolve/TryResolveInto for optional dependencies where "absent"
// is a normal answer.
//
// Import
//
//	"github.com/anvlt/dico/di"
package di
