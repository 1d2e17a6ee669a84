// Package pipeline drives persisted projects through their stages.
//
// The driver polls the store for claimable projects and advances each one by
// invoking the registered stage implementation for its next stage, committing
// every transition through the store's compare-and-swap so racing drivers
// resolve first-committer-wins. Independent projects run concurrently under a
// bounded errgroup; mutation of a single project is always serialized.
//
// The driver never retries a failed stage: failures are recorded as a
// disposition on the project and a human (or a fresh project) takes it from
// there. Projects whose next stage is unavailable, or whose plan still awaits
// approval, are parked and picked up on a later poll.
package pipeline
