// =============================================================================
// dtb2x - DTB Entities
// =============================================================================
//
// This file defines the three record kinds of the DTB format and their
// projection into flat output rows.
//
// DTB HIERARCHY:
//   Group                  (0 tabs)  - top-level record
//   └── Team               (1 tab)   - belongs to exactly one Group
//       └── Player         (2 tabs)  - belongs to exactly one Team
//
// ROW PROJECTION:
//   An entity's row always starts with the rows of its ancestors, so a Team
//   row is its Group's row extended by two fields, and a Player row is its
//   Team's row extended by five fields. The full table is 9 columns wide.
//
// =============================================================================

package dtb

// =============================================================================
// ENTITY TYPES
// =============================================================================

// Entity is a single record read from a DTB file: a Group, Team, or Player.
// The set of implementations is closed.
type Entity interface {
	// Row projects the entity into an ordered sequence of output fields,
	// ancestor fields first.
	Row() []string
}

// Group contains teams. Group is a top-level record in a DTB file.
type Group struct {
	Name string
	Note string
}

// Team belongs to a single group and contains players.
type Team struct {
	Name  string
	Note  string
	Group *Group
}

// Player belongs to a single team.
type Player struct {
	RegistrationNumber string
	Name               string
	Surname            string
	DateOfBirth        string
	Note               string
	Team               *Team
}

// =============================================================================
// ROW PROJECTION
// =============================================================================

// Row returns [name, note].
func (g *Group) Row() []string {
	return []string{g.Name, g.Note}
}

// Row returns the parent Group's row extended by [name, note].
func (t *Team) Row() []string {
	return append(t.Group.Row(), t.Name, t.Note)
}

// Row returns the parent Team's row extended by the player fields.
// Surname and name are captured in surname-then-name order by the grammar
// but projected name-then-surname, following the column order of the
// header.
func (p *Player) Row() []string {
	return append(p.Team.Row(),
		p.RegistrationNumber,
		p.Name,
		p.Surname,
		p.DateOfBirth,
		p.Note,
	)
}

// =============================================================================
// HEADER
// =============================================================================

// Header returns the fixed 9-column table header: two Group columns, two
// Team columns, and five Player columns. The labels are the Czech labels
// used by the source database exports and are independent of input content.
func Header() []string {
	return []string{
		"Název, Oddíl", "Poznámka, Oddíl",
		"Název, Družstvo", "Poznámka, Družstvo",
		"Reg. číslo, Hráč", "Jméno, Hráč", "Příjmení, Hráč", "Datum nar., Hráč", "Poznámka, Hráč",
	}
}
