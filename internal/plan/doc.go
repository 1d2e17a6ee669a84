// Package plan models the human-in-the-loop checkpoint between content
// analysis and script generation.
//
// A VideoPlan starts as a draft sketching the video scene by scene. Drafts
// can be regenerated freely without touching the owning project's status.
// Approval is an explicit external action, one-way, and required before the
// scripting stage may consume the plan.
package plan
