// Package dico provides a scoped singleton service container for Go.
//
// The repository is organized around one small idea: a string-keyed registry
// of encoded service payloads, arranged in a parent/child scope tree.
//
//   - registration is strictly additive: a key is registered once per
//     container and never overwritten
//   - resolution walks the scope chain: local store first, then ancestors
//   - child scopes see everything their ancestors see; ancestors never see
//     a descendant's local registrations
//
// Values are stored as opaque encoded bytes (JSON by default, YAML as an
// alternative), which keeps the container generic over arbitrary value
// shapes and pushes all type-specific concerns to the caller.
//
// See subpackages:
//   - di: the container engine (Container, Codec, ScopeBuilder, errors)
//   - examples/*: runnable examples
package dico
