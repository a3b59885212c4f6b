package prefdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

const sampleDoc = `= Settings

== Settings Screen
:key: settings_screen

=== General

==== Enable notifications (Y/N)

Show alerts when new mail arrives.

==== Poll Interval
:enumValues: POLL_SLOW, POLL_FAST

How often to check for mail.

* Hourly
* Every 15 minutes (default)
* Manually.
`

func parseString(t *testing.T, doc string) *Document {
	t.Helper()
	parsed, err := NewParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return parsed
}

func TestParseSampleDocument(t *testing.T) {
	doc := parseString(t, sampleDoc)

	require.Len(t, doc.Linear, 5)

	root := doc.Linear[0]
	assert.Equal(t, LevelTop, root.Level)
	assert.Equal(t, TypeRoot, root.Type)
	assert.Empty(t, root.Title, "root title should be cleared to avoid unused resources")

	screen := doc.Linear[1]
	assert.Equal(t, TypeScreen, screen.Type)
	assert.Equal(t, "settings_screen", screen.Key, "explicit :key: wins over derived slug")
	assert.Empty(t, screen.Title)

	category := doc.Linear[2]
	assert.Equal(t, TypeCategory, category.Type)
	assert.Equal(t, "General", category.Title, "category keeps its title")
	assert.Empty(t, category.Summary)

	checkbox := doc.Linear[3]
	assert.Equal(t, TypeCheckBox, checkbox.Type)
	assert.Equal(t, "Enable notifications", checkbox.Title, "boolean suffix stripped")
	assert.Equal(t, "false", checkbox.DefaultValue)
	assert.Equal(t, "enable_notifications", checkbox.Key)
	assert.Equal(t, "Show alerts when new mail arrives", checkbox.Summary, "summary period stripped")

	list := doc.Linear[4]
	assert.Equal(t, TypeList, list.Type)
	assert.Equal(t, []string{"Hourly", "Every 15 minutes", "Manually"}, list.ListItems)
	assert.Equal(t, "1", list.DefaultValue, "(default) marker sets the index")
	assert.Equal(t, []string{"POLL_SLOW", "POLL_FAST"}, list.EnumValues)
	assert.Equal(t, "PollIntervalEnum", list.EnumName)
}

func TestParseStringTable(t *testing.T) {
	doc := parseString(t, sampleDoc)

	want := map[string]string{
		"General":                           "general",
		"Enable notifications":              "enable_notifications",
		"Show alerts when new mail arrives": "show_alerts_when_new_mail",
		"Poll Interval":                     "poll_interval",
		"How often to check for mail":       "how_often_to_check_for",
	}
	assert.Equal(t, want, doc.Strings)
}

func TestParseTreeShape(t *testing.T) {
	doc := parseString(t, sampleDoc)

	root := doc.Root
	require.Len(t, root.Items, 1)
	screen := root.Items[0]
	require.Len(t, screen.Items, 1)
	category := screen.Items[0]
	require.Len(t, category.Items, 2)
	assert.True(t, category.Items[0].IsLeaf())
	assert.True(t, category.Items[1].IsLeaf())
}

func TestParseMultilineText(t *testing.T) {
	doc := parseString(t, `= Root

== Screen

=== Category

==== Field
with a wrapped
title

and a summary
over two lines

and help text
`)

	field := doc.Linear[3]
	assert.Equal(t, "Field with a wrapped title", field.Title)
	assert.Equal(t, "and a summary over two lines", field.Summary)
	assert.Equal(t, "and help text", field.Help)
}

func TestParseKeywordCollision(t *testing.T) {
	doc := parseString(t, `= Root

== Screen

=== Category

==== Import
`)
	assert.Equal(t, "_import_", doc.Strings["Import"],
		"slug equal to a reserved word gets underscore-wrapped")
}

func TestParseBooleanSuffixVariants(t *testing.T) {
	for _, suffix := range []string{"(Y/N)", "(T/F)", "(ON/OFF)", "(on/off)", "(y/n)"} {
		doc := parseString(t, "= R\n\n== S\n\n=== C\n\n==== Use encryption "+suffix+"\n")
		field := doc.Linear[3]
		assert.Equal(t, TypeCheckBox, field.Type, "suffix %s", suffix)
		assert.Equal(t, "Use encryption", field.Title, "suffix %s", suffix)
		assert.Equal(t, "false", field.DefaultValue, "suffix %s", suffix)
	}
}

func TestParseHiddenKeysInCommentRegion(t *testing.T) {
	doc := parseString(t, `= Root

== Screen

//
:key: hidden.pref
:key: another_hidden
//

=== Category

==== Field
`)
	assert.Equal(t, []string{"hidden.pref", "another_hidden"}, doc.Keys)
	// Directives inside a comment region must not touch the current item.
	assert.Equal(t, "screen", doc.Linear[1].Key)
}

func TestParseUnknownDirectiveWarns(t *testing.T) {
	doc := parseString(t, `= Root
:toc:

== Screen
`)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, 2, doc.Warnings[0].Line)
	assert.Contains(t, doc.Warnings[0].Message, "toc")
}

func TestParseDirectiveDefaultValue(t *testing.T) {
	doc := parseString(t, `= Root

== Screen

=== Category

==== Server Name
:key: server.name
:defaultValue: imap.example.com
:dialogLayout: server_dialog
`)
	field := doc.Linear[3]
	assert.Equal(t, "server.name", field.Key)
	assert.Equal(t, "imap.example.com", field.DefaultValue)
	assert.Equal(t, "server_dialog", field.DialogLayout)
}

func TestParseStructuralErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"list item first", "* Low\n", "list item before any section header"},
		{"directive first", ":key: foo\n", "directive before any section header"},
		{"text first", "hello\n", "text before any section header"},
		{"too deep", "===== Way Down\n", "section nested too deeply"},
		{"empty document", "\n\n", "no section headers"},
		{"second root", "= A\n\n= B\n", "does not nest"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().Parse(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
			assert.True(t, xerrors.IsCategory(err, xerrors.CategoryParse))
		})
	}
}

func TestParseErrorCarriesLineNumber(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader("\n\n* Low\n"))
	require.Error(t, err)
	pe, ok := err.(*xerrors.PrefgenError)
	require.True(t, ok)
	assert.Equal(t, 3, pe.Line)
}

func TestParserReuse(t *testing.T) {
	p := NewParser()

	first, err := p.Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	second, err := p.Parse(strings.NewReader("= Other\n\n== Screen\n"))
	require.NoError(t, err)

	assert.Len(t, first.Linear, 5)
	assert.Len(t, second.Linear, 2, "state from the first document must not leak")
	assert.Empty(t, second.Keys)
}

func TestParseListDefaultsToIndexZero(t *testing.T) {
	doc := parseString(t, `= Root

== Screen

=== Category

==== Quality

* Low
* Medium
* High
`)
	list := doc.Linear[3]
	assert.Equal(t, "0", list.DefaultValue)
	assert.Equal(t, []string{"Low", "Medium", "High"}, list.ListItems)
}
