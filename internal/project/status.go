package project

import "strings"

// Status represents the lifecycle of a video project.
type Status string

const (
	StatusInitialized  Status = "initialized"
	StatusParsed       Status = "parsed"
	StatusAnalyzed     Status = "analyzed"
	StatusScripted     Status = "scripted"
	StatusStoryboarded Status = "storyboarded"
	StatusRendered     Status = "rendered"
)

// stageOrder fixes the total order of pipeline statuses. Transitions only
// ever move one step to the right.
var stageOrder = []Status{
	StatusInitialized,
	StatusParsed,
	StatusAnalyzed,
	StatusScripted,
	StatusStoryboarded,
	StatusRendered,
}

var statusIndex = func() map[Status]int {
	idx := make(map[Status]int, len(stageOrder))
	for i, status := range stageOrder {
		idx[status] = i
	}
	return idx
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(stageOrder))
	copy(cp, stageOrder)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusIndex[normalized]
	return normalized, ok
}

// Index returns the status's position in the stage order, or -1 when unknown.
func (s Status) Index() int {
	idx, ok := statusIndex[s]
	if !ok {
		return -1
	}
	return idx
}

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	_, ok := statusIndex[s]
	return ok
}

// Terminal reports whether the status ends the pipeline.
func (s Status) Terminal() bool {
	return s == StatusRendered
}

// Next returns the immediate successor status, or false at the end of the
// pipeline or for unknown statuses.
func (s Status) Next() (Status, bool) {
	idx, ok := statusIndex[s]
	if !ok || idx+1 >= len(stageOrder) {
		return "", false
	}
	return stageOrder[idx+1], true
}

// Reached reports whether the status has reached or passed the other status
// in stage order.
func (s Status) Reached(other Status) bool {
	si, oi := s.Index(), other.Index()
	return si >= 0 && oi >= 0 && si >= oi
}
