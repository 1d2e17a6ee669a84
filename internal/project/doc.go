// Package project owns the aggregate state of one document-to-video pipeline
// run and the state machine that advances it.
//
// A VideoProject moves through a fixed total order of statuses (initialized,
// parsed, analyzed, scripted, storyboarded, rendered). The Attach* transition
// methods are the only mutation points: each one requires the project to sit
// exactly one stage before the destination, validates the supplied artifact,
// and checks the prerequisite artifact is present. Out-of-order attachments
// fail with ErrInvalidTransition; scripting against an unapproved plan fails
// with ErrPlanNotApproved. Reads never affect state.
//
// Re-running a stage is not a transition: callers abandon the project and
// create a new one.
package project
