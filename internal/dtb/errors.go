// =============================================================================
// dtb2x - Reader Errors
// =============================================================================
//
// Error taxonomy of the DTB reader. All three kinds are fatal to the
// current conversion run; there is no skip-and-continue. Loose mode shrinks
// the set of lines rejected as ErrUnknownLineType but never changes the two
// structural errors, which depend only on hierarchy.
//
// =============================================================================

package dtb

import (
	"fmt"
	"strings"
)

// ErrorKind identifies why the reader rejected a line.
type ErrorKind int

const (
	// ErrUnknownLineType means the line matched no Group/Team/Player shape
	// under the active tolerance mode.
	ErrUnknownLineType ErrorKind = iota

	// ErrTeamWithoutGroup means a team-shaped line appeared before any group.
	ErrTeamWithoutGroup

	// ErrPlayerWithoutTeam means a player-shaped line appeared before any
	// team, or after a new group reset the current team.
	ErrPlayerWithoutTeam
)

// String returns a short machine-friendly name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrTeamWithoutGroup:
		return "TeamWithoutGroup"
	case ErrPlayerWithoutTeam:
		return "PlayerWithoutTeam"
	default:
		return "UnknownLineType"
	}
}

// ReadError is the error returned by Reader.Read. It carries the offending
// raw line so the front end can show it to the user.
type ReadError struct {
	Kind ErrorKind
	Line string

	// Indent is the leading tab count of the offending line, reported for
	// UnknownLineType diagnostics.
	Indent int
}

// Error formats the error with the raw line quoted in backticks.
func (e *ReadError) Error() string {
	switch e.Kind {
	case ErrTeamWithoutGroup:
		return fmt.Sprintf("team without group: `%s`", printable(e.Line))
	case ErrPlayerWithoutTeam:
		return fmt.Sprintf("player without team: `%s`", printable(e.Line))
	default:
		return fmt.Sprintf("unknown line type (indent %d): `%s`", e.Indent, printable(e.Line))
	}
}

// printable strips the trailing terminator for single-line error messages.
func printable(line string) string {
	return strings.TrimRight(line, "\r\n")
}
