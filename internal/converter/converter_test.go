package converter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvondracek/dtb2x/internal/dtb"
	"github.com/mvondracek/dtb2x/internal/sink"
)

const headerLine = "Název, Oddíl;Poznámka, Oddíl;Název, Družstvo;Poznámka, Družstvo;" +
	"Reg. číslo, Hráč;Jméno, Hráč;Příjmení, Hráč;Datum nar., Hráč;Poznámka, Hráč\r\n"

// runCSV converts the given input into a semicolon CSV and returns the
// result together with the produced output.
func runCSV(t *testing.T, input string, mode dtb.Mode) (Result, string) {
	t.Helper()

	var buf bytes.Buffer
	s := sink.NewCSV(&buf, sink.DefaultDelimiter)
	result := New(strings.NewReader(input), s, mode).Run()
	require.NoError(t, s.Close())
	return result, buf.String()
}

func TestConverter_FullHierarchy(t *testing.T) {
	t.Parallel()

	input := "group_name - group_note\n" +
		"\tteam_name - team_note\n" +
		"\t\t123456789 - player_surname player_name, 01.01.1900 , player_note\n"

	result, out := runCSV(t, input, dtb.Strict)

	require.True(t, result.Success)
	require.NoError(t, result.Error)
	assert.Equal(t, headerLine+
		"group_name;group_note;;;;;;;\r\n"+
		"group_name;group_note;team_name;team_note;;;;;\r\n"+
		"group_name;group_note;team_name;team_note;123456789;player_name;player_surname;01.01.1900;player_note\r\n",
		out)

	assert.Equal(t, 1, result.Stats.Groups)
	assert.Equal(t, 1, result.Stats.Teams)
	assert.Equal(t, 1, result.Stats.Players)
	assert.Equal(t, 3, result.Stats.RowsWritten)
}

// CRLF-terminated input converts identically to LF input.
func TestConverter_WindowsLineEndings(t *testing.T) {
	t.Parallel()

	lf := "group_name - group_note\n" +
		"\tteam_name - team_note\n" +
		"\t\t-  player_name,  , \n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")

	resultLF, outLF := runCSV(t, lf, dtb.Strict)
	resultCRLF, outCRLF := runCSV(t, crlf, dtb.Strict)

	require.True(t, resultLF.Success)
	require.True(t, resultCRLF.Success)
	assert.Equal(t, outLF, outCRLF)
}

func TestConverter_LooseMode(t *testing.T) {
	t.Parallel()

	input := "group_name -\n" +
		"\tteam_name -\n" +
		"\t\t123456789 - player_surname1 player_name1, 01.01.1900 ,\n" +
		"\t\t123456789 - player_surname2 player_name2, 01.01.1900     ,\n" +
		"\t\t- player_surname3 player_name3 \n" +
		"\t\t- player_surname4 player_name4, , \n"

	result, out := runCSV(t, input, dtb.Loose)

	require.True(t, result.Success)
	assert.Equal(t, headerLine+
		"group_name;;;;;;;;\r\n"+
		"group_name;;team_name;;;;;;\r\n"+
		"group_name;;team_name;;123456789;player_name1;player_surname1;01.01.1900;\r\n"+
		"group_name;;team_name;;123456789;player_name2;player_surname2;01.01.1900;\r\n"+
		"group_name;;team_name;;;player_name3;player_surname3;;\r\n"+
		"group_name;;team_name;;;player_name4;player_surname4;;\r\n",
		out)
	assert.Equal(t, 4, result.Stats.Players)
}

func TestConverter_StrictRejectsLooseInput(t *testing.T) {
	t.Parallel()

	result, out := runCSV(t, "group_name -\n", dtb.Strict)

	require.False(t, result.Success)
	var rerr *dtb.ReadError
	require.ErrorAs(t, result.Error, &rerr)
	assert.Equal(t, dtb.ErrUnknownLineType, rerr.Kind)
	assert.Equal(t, headerLine, out, "header only, no data rows")
	assert.Equal(t, 0, result.Stats.RowsWritten)
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	result, out := runCSV(t, "", dtb.Strict)

	require.True(t, result.Success)
	assert.Equal(t, headerLine, out)
	assert.Equal(t, Stats{ProcessingTime: result.Stats.ProcessingTime}, result.Stats)
}

// A dangling group or team at end of input is a complete, successful
// conversion.
func TestConverter_PartialHierarchy(t *testing.T) {
	t.Parallel()

	result, out := runCSV(t, "group_name - group_note\n", dtb.Strict)
	require.True(t, result.Success)
	assert.Equal(t, headerLine+"group_name;group_note;;;;;;;\r\n", out)

	result, out = runCSV(t, "group_name - group_note\n\tteam_name - team_note\n", dtb.Strict)
	require.True(t, result.Success)
	assert.Equal(t, headerLine+
		"group_name;group_note;;;;;;;\r\n"+
		"group_name;group_note;team_name;team_note;;;;;\r\n",
		out)
}

func TestConverter_TeamWithoutGroup(t *testing.T) {
	t.Parallel()

	result, out := runCSV(t, "\tteam_name - team_note\n", dtb.Strict)

	require.False(t, result.Success)
	var rerr *dtb.ReadError
	require.ErrorAs(t, result.Error, &rerr)
	assert.Equal(t, dtb.ErrTeamWithoutGroup, rerr.Kind)
	assert.Equal(t, headerLine, out)
}

// Rows accepted before the failing line stay in the output.
func TestConverter_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	input := "group_one - \n" +
		"\tteam_name - \n" +
		"group_two - \n" +
		"\t\t-  orphan,  , \n" +
		"never - reached\n"

	result, out := runCSV(t, input, dtb.Strict)

	require.False(t, result.Success)
	var rerr *dtb.ReadError
	require.ErrorAs(t, result.Error, &rerr)
	assert.Equal(t, dtb.ErrPlayerWithoutTeam, rerr.Kind)
	assert.Equal(t, headerLine+
		"group_one;;;;;;;;\r\n"+
		"group_one;;team_name;;;;;;\r\n"+
		"group_two;;;;;;;;\r\n",
		out)
	assert.Equal(t, 3, result.Stats.RowsWritten)
}

// The final line of a file without a terminator does not match any shape.
func TestConverter_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	result, out := runCSV(t, "group_name - group_note", dtb.Strict)

	require.False(t, result.Success)
	var rerr *dtb.ReadError
	require.ErrorAs(t, result.Error, &rerr)
	assert.Equal(t, dtb.ErrUnknownLineType, rerr.Kind)
	assert.Equal(t, headerLine, out)
}

func TestStderrLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &StderrLogger{Out: &buf, Verbose: false}

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Error("bad %d", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown 2")
	assert.Contains(t, buf.String(), "[ERROR] bad 3")

	l.Verbose = true
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
}
