// =============================================================================
// dtb2x - DTB Reader
// =============================================================================
//
// The Reader wraps the line grammar with the hierarchy state of a single
// forward pass over a DTB file: the most recently read group and team.
// Parent linkage is last-seen, not first-seen: a new group line resets the
// current team, so a player immediately after a fresh group is an error.
//
// A Reader serves exactly one conversion run and is not safe for concurrent
// or re-ordered calls.
//
// =============================================================================

package dtb

// Reader instantiates DTB entities from input lines, one line per call, in
// input order.
type Reader struct {
	mode         Mode
	currentGroup *Group
	currentTeam  *Team
}

// NewReader returns a Reader with no current group or team.
func NewReader(mode Mode) *Reader {
	return &Reader{mode: mode}
}

// Mode returns the tolerance mode the reader was created with.
func (r *Reader) Mode() Mode {
	return r.mode
}

// Read classifies one line (terminator included) and returns the resulting
// entity. Group lines become the current group and clear the current team;
// team lines attach to the current group and become the current team;
// player lines attach to the current team and leave reader state untouched.
//
// The returned error is always a *ReadError.
func (r *Reader) Read(line string) (Entity, error) {
	m, ok := ClassifyLine(line, r.mode)
	if !ok {
		return nil, &ReadError{Kind: ErrUnknownLineType, Line: line, Indent: IndentLevel(line)}
	}

	switch m.Kind {
	case KindGroup:
		group := &Group{Name: m.Name, Note: m.Note}
		r.currentGroup = group
		r.currentTeam = nil
		return group, nil

	case KindTeam:
		if r.currentGroup == nil {
			return nil, &ReadError{Kind: ErrTeamWithoutGroup, Line: line}
		}
		team := &Team{Name: m.Name, Note: m.Note, Group: r.currentGroup}
		r.currentTeam = team
		return team, nil

	default: // KindPlayer
		if r.currentTeam == nil {
			return nil, &ReadError{Kind: ErrPlayerWithoutTeam, Line: line}
		}
		return &Player{
			RegistrationNumber: m.RegistrationNumber,
			Name:               m.Name,
			Surname:            m.Surname,
			DateOfBirth:        m.DateOfBirth,
			Note:               m.Note,
			Team:               r.currentTeam,
		}, nil
	}
}
