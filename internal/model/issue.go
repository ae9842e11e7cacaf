package model

import "fmt"

// Source identifies where a data file was read from
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
	SourceNone     Source = "none"
)

// Issue reasons
const (
	ReasonMalformed      = "malformed"
	ReasonOrphan         = "orphan"
	ReasonFallback       = "fallback"
	ReasonDuplicateEntry = "duplicate"
)

// LoadIssue describes a line or file that was skipped while loading the catalog.
// Issues never stop a refresh; they make the degraded result observable.
type LoadIssue struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"` // 1-based, 0 for whole-file issues
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// String returns a compact human readable description
func (li LoadIssue) String() string {
	switch {
	case li.File == "":
		return fmt.Sprintf("%s (%s)", li.Reason, li.Detail)
	case li.Line > 0:
		return fmt.Sprintf("%s:%d: %s (%s)", li.File, li.Line, li.Reason, li.Detail)
	default:
		return fmt.Sprintf("%s: %s (%s)", li.File, li.Reason, li.Detail)
	}
}
