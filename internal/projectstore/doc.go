// Package projectstore persists video projects and their plans in SQLite.
//
// One row per pipeline run, addressable by project ID, with each attached
// artifact serialized as a JSON column. Status transitions are committed with
// a compare-and-swap on the previous status so concurrent drivers racing to
// attach competing artifacts resolve first-committer-wins; losers receive
// ErrStaleProject and retry against the then-current state.
//
// VideoPlans live in a sibling table linked by project ID. Draft plans may be
// replaced freely; approval is committed with the same compare-and-swap
// discipline.
//
// Treat this package as the single source of truth for persistence semantics;
// when artifacts gain fields, bump schemaVersion in schema.go.
package projectstore
