// Package prefdoc parses settings-dialog documents into a tree of typed
// preference items. The input grammar is a small AsciiDoc subset: `=` headers
// open sections, blank lines separate title/summary/help text, `*` lines add
// list entries and `:name: value` lines set attributes on the current item.
package prefdoc

import "strings"

// Item levels, derived from the number of leading header marker characters.
const (
	LevelTop      = 1
	LevelScreen   = 2
	LevelCategory = 3
	LevelItem     = 4
)

// Preference types as they appear in the generated layout.
const (
	TypeRoot     = ""
	TypeScreen   = "PreferenceScreen"
	TypeCategory = "PreferenceCategory"
	TypeText     = "EditTextPreference"
	TypeCheckBox = "CheckBoxPreference"
	TypeList     = "ListPreference"
)

// levelTypes maps an item level to its default preference type. Leaf items
// (LevelItem) start as text fields and are refined during parsing.
var levelTypes = [...]string{TypeRoot, TypeScreen, TypeCategory, TypeText}

// booleanSuffixes on a leaf title mark it as a checkbox preference.
var booleanSuffixes = []string{"(Y/N)", "(T/F)", "(ON/OFF)"}

// Item is one node of the parsed document: a section (root, screen or
// category) or a leaf preference field.
type Item struct {
	Level        int
	Type         string
	Title        string
	Summary      string
	Help         string
	Key          string
	DefaultValue string
	DialogLayout string
	EnumValues   []string
	EnumName     string
	ListItems    []string
	Items        []*Item

	enumRaw string // unparsed :enumValues: directive text
	line    int    // input line of the section header
}

// newItem creates an item from a header line such as "=== Server Port".
// The marker run length gives the level; leaf titles carrying a boolean
// suffix are classified as checkboxes with the suffix stripped.
func newItem(marker, title string, line int) *Item {
	it := &Item{
		Level: len(marker),
		line:  line,
	}

	it.Type = levelTypes[it.Level-1]
	if it.Level == LevelItem {
		upper := strings.ToUpper(title)
		for _, suffix := range booleanSuffixes {
			if strings.HasSuffix(upper, suffix) {
				it.Type = TypeCheckBox
				it.DefaultValue = "false"
				title = strings.TrimSpace(title[:len(title)-len(suffix)])
				break
			}
		}
	}

	it.Title = title
	return it
}

// addText appends a wrapped continuation line to the field selected by the
// current scan mode.
func (it *Item) addText(mode scanMode, line string) {
	join := func(start, end string) string {
		if start != "" {
			return start + " " + end
		}
		return end
	}

	switch mode {
	case modeTitle:
		it.Title = join(it.Title, line)
	case modeSummary:
		it.Summary = join(it.Summary, line)
	case modeHelp:
		it.Help = join(it.Help, line)
	}
}

// IsLeaf reports whether the item is a terminal preference field.
func (it *Item) IsLeaf() bool {
	return it.Level == LevelItem
}

// stripDot removes a single trailing period, the platform convention for
// summary strings.
func stripDot(s string) string {
	return strings.TrimSuffix(s, ".")
}
