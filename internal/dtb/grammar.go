// =============================================================================
// dtb2x - DTB Line Grammar
// =============================================================================
//
// This file implements the line classifier for the DTB format. A line of
// input (including its terminating newline) is classified as a Group, Team,
// or Player record, or rejected, based on its leading tab count and shape:
//
//   Group  (0 tabs): [name ]- [note]\n
//   Team   (1 tab):  [name ]- [note]\n
//   Player (2 tabs): [reg ]- [surname] [name], [dob] , [note]\n
//
// The grammar exists in two tolerance modes. Loose mode relaxes a small set
// of separators (the space after the dash, the commas around the player's
// date of birth) and accepts a strict superset of the lines strict mode
// accepts. Both modes are built from one parameterized pattern so the
// superset property holds by construction rather than by keeping two
// pattern sets in sync.
//
// The whitespace run before the player's final comma stays mandatory even
// in loose mode; only the commas themselves are optional. See
// TestClassifyLine_LoosePlayerKeepsWhitespaceRun.
//
// =============================================================================

package dtb

import (
	"regexp"
	"strings"
)

// Mode selects the tolerance level of the DTB grammar.
type Mode int

const (
	// Strict rejects any line with a missing separator.
	Strict Mode = iota

	// Loose tolerates small formatting mistakes like missing spaces and
	// missing commas. It never changes the fields captured from a line
	// that strict mode already accepts.
	Loose
)

// String returns "strict" or "loose".
func (m Mode) String() string {
	if m == Loose {
		return "loose"
	}
	return "strict"
}

// ParseMode converts a mode name from configuration into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, true
	case "loose":
		return Loose, true
	}
	return Strict, false
}

// =============================================================================
// PATTERN CONSTRUCTION
// =============================================================================

// leniency holds the flags that turn the strict grammar into the loose one.
type leniency struct {
	// optionalNoteSpace lets the space between the dash and the note be
	// omitted on group and team lines ("-note" in addition to "- note").
	optionalNoteSpace bool

	// optionalComma lets the player commas (after the name, before the
	// note) and their following space be omitted.
	optionalComma bool
}

// groupTeamPattern builds the group/team line pattern at the given tab depth.
// The space between name and dash is always required: name detection
// depends on it.
func groupTeamPattern(tabs int, l leniency) string {
	sep := "- "
	if l.optionalNoteSpace {
		sep = "- ?"
	}
	return `^` + strings.Repeat(`\t`, tabs) + `((?P<name>[^\t]*) )?` + sep + `(?P<note>.+)?` + "\n$"
}

// playerPattern builds the player line pattern. Spaces consumed as
// separators are never part of a captured value; absent optional captures
// come out as empty strings.
func playerPattern(l leniency) string {
	comma := `, `
	if l.optionalComma {
		comma = `,? ?`
	}
	return `^\t\t((?P<registration_number>\d*) )?- (?P<surname>[^ ,]+)? (?P<name>[^,]+)?` +
		comma + `(?P<date_of_birth>[\d.]+)? +` + comma + `(?P<note>.+)?` + "\n$"
}

var (
	strictFlags = leniency{}
	looseFlags  = leniency{optionalNoteSpace: true, optionalComma: true}

	groupRE = map[Mode]*regexp.Regexp{
		Strict: regexp.MustCompile(groupTeamPattern(0, strictFlags)),
		Loose:  regexp.MustCompile(groupTeamPattern(0, looseFlags)),
	}
	teamRE = map[Mode]*regexp.Regexp{
		Strict: regexp.MustCompile(groupTeamPattern(1, strictFlags)),
		Loose:  regexp.MustCompile(groupTeamPattern(1, looseFlags)),
	}
	playerRE = map[Mode]*regexp.Regexp{
		Strict: regexp.MustCompile(playerPattern(strictFlags)),
		Loose:  regexp.MustCompile(playerPattern(looseFlags)),
	}
)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Kind identifies which of the three DTB shapes a line matched.
type Kind int

const (
	KindGroup Kind = iota
	KindTeam
	KindPlayer
)

// Match holds the raw captured fields of a classified line. Parent linkage
// is the Reader's job; a Match carries no hierarchy.
type Match struct {
	Kind Kind

	// Name and Note are set for all three kinds.
	Name string
	Note string

	// RegistrationNumber, Surname and DateOfBirth are set for players only.
	RegistrationNumber string
	Surname            string
	DateOfBirth        string
}

// ClassifyLine classifies one line of DTB input, terminator included, under
// the given tolerance mode. It is a pure function: no state is kept between
// calls. The second return value is false when the line matches none of the
// three shapes.
func ClassifyLine(line string, mode Mode) (Match, bool) {
	if caps, ok := capture(groupRE[mode], line); ok {
		return Match{Kind: KindGroup, Name: caps["name"], Note: caps["note"]}, true
	}
	if caps, ok := capture(teamRE[mode], line); ok {
		return Match{Kind: KindTeam, Name: caps["name"], Note: caps["note"]}, true
	}
	if caps, ok := capture(playerRE[mode], line); ok {
		return Match{
			Kind:               KindPlayer,
			RegistrationNumber: caps["registration_number"],
			Surname:            caps["surname"],
			Name:               caps["name"],
			DateOfBirth:        caps["date_of_birth"],
			Note:               caps["note"],
		}, true
	}
	return Match{}, false
}

// IndentLevel counts the leading tab characters of a line. It is reported
// alongside classification failures for diagnostics.
func IndentLevel(line string) int {
	return len(line) - len(strings.TrimLeft(line, "\t"))
}

// capture runs the pattern against the line and returns the named captures.
// Non-participating optional groups yield empty strings.
func capture(re *regexp.Regexp, line string) (map[string]string, bool) {
	sub := re.FindStringSubmatch(line)
	if sub == nil {
		return nil, false
	}
	caps := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			caps[name] = sub[i]
		}
	}
	return caps, true
}
