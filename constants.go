package main

import "time"

// Output formats
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// dateLayout is the format of date flags and table columns.
const dateLayout = "2006-01-02"

// userAgent identifies the CLI to the backend.
const userAgent = "ledgerly-cli"

const (
	defaultPageLimit        = 20
	prefetchTimeout         = 10 * time.Second
	aiRecommendationTimeout = 20 * time.Second
	anthropicMaxTokens      = 256
	maxConfidenceScore      = 100
)

// submitPhase is where a submission stands, derived from its call state.
type submitPhase int

const (
	phaseIdle submitPhase = iota
	phaseSubmitting
	phaseSucceeded
	phaseFailed
)

func (p submitPhase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSubmitting:
		return "submitting"
	case phaseSucceeded:
		return "succeeded"
	case phaseFailed:
		return "failed"
	}

	return "unknown"
}
