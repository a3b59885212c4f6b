package prefdoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

// scanMode tracks which text field of the current item is being accumulated.
type scanMode int

const (
	modeSearching scanMode = iota
	modeTitle
	modeSummary
	modeHelp
)

// Warning records a non-fatal oddity found while scanning, such as an
// unrecognized directive. Generation ignores warnings; the check command
// reports them.
type Warning struct {
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

// Document is the whole-document parse result.
type Document struct {
	Root     *Item
	Strings  map[string]string // distinct title/summary text -> resource identifier
	Linear   []*Item           // all items in document order
	Keys     []string          // key overrides collected from comment regions
	Warnings []Warning
}

// Parser holds the mutable scan state for one document. The zero value is
// ready to use; a single Parser may parse several documents in sequence.
type Parser struct {
	mode      scanMode
	inComment bool
	linear    []*Item
	keys      []string
	warnings  []Warning
}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// directiveFields is the fixed set of attributes settable via a
// `:name: value` line. Unrecognized names are ignored with a warning so that
// foreign AsciiDoc attributes pass through harmlessly.
var directiveFields = map[string]func(*Item, string){
	"key":          func(it *Item, v string) { it.Key = v },
	"title":        func(it *Item, v string) { it.Title = v },
	"summary":      func(it *Item, v string) { it.Summary = v },
	"help":         func(it *Item, v string) { it.Help = v },
	"type":         func(it *Item, v string) { it.Type = v },
	"defaultValue": func(it *Item, v string) { it.DefaultValue = v },
	"dialogLayout": func(it *Item, v string) { it.DialogLayout = v },
	"enumValues":   func(it *Item, v string) { it.enumRaw = v },
}

// ParseFile parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Wrap(err, xerrors.CategoryFileSystem, xerrors.SeverityFatal,
			fmt.Sprintf("cannot open input file %s", path))
	}
	defer f.Close()

	doc, err := NewParser().Parse(f)
	if err != nil {
		if pe, ok := err.(*xerrors.PrefgenError); ok {
			return nil, pe.WithContext("file", path)
		}
		return nil, err
	}
	return doc, nil
}

// Parse consumes the document line by line and returns the parsed tree,
// string table and linear item list. Structural problems (a list item or
// directive before any section header, over-deep nesting, a second top-level
// section) are returned as parse errors carrying the input line number.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	p.mode = modeSearching
	p.inComment = false
	p.linear = nil
	p.keys = nil
	p.warnings = nil

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := p.scanLine(lineNum, strings.TrimSpace(scanner.Text())); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Wrap(err, xerrors.CategoryParse, xerrors.SeverityFatal, "reading input")
	}
	if len(p.linear) == 0 {
		return nil, xerrors.New(xerrors.CategoryParse, xerrors.SeverityFatal,
			"document contains no section headers")
	}

	table := make(map[string]string)
	finalize(p.linear, table)

	root, err := linkTree(p.linear)
	if err != nil {
		return nil, err
	}

	return &Document{
		Root:     root,
		Strings:  table,
		Linear:   p.linear,
		Keys:     p.keys,
		Warnings: p.warnings,
	}, nil
}

// scanLine dispatches one trimmed input line to the state machine.
func (p *Parser) scanLine(num int, line string) error {
	switch {
	case line == "":
		// A blank line separates title, summary and help text.
		if p.mode > modeSearching && p.mode <= modeSummary {
			p.mode++
		}

	case strings.HasPrefix(line, "//"):
		p.inComment = !p.inComment

	case line[0] == '*':
		if len(p.linear) == 0 {
			return xerrors.ParseAt(num, "list item before any section header")
		}
		cur := p.current()
		if !cur.IsLeaf() {
			p.warn(num, line, "list item outside a leaf field")
		}
		cur.ListItems = append(cur.ListItems, stripDot(strings.TrimSpace(line[1:])))
		cur.Type = TypeList

	case line[0] == ':':
		return p.scanDirective(num, line)

	case line[0] == '=' || line[0] == '#':
		marker := line[:markerRun(line)]
		if len(marker) > LevelItem {
			return xerrors.ParseAt(num,
				fmt.Sprintf("section nested too deeply (level %d, maximum %d)", len(marker), LevelItem))
		}
		p.linear = append(p.linear, newItem(marker, strings.TrimSpace(line[len(marker):]), num))
		p.mode = modeTitle

	default:
		if len(p.linear) == 0 {
			return xerrors.ParseAt(num, "text before any section header")
		}
		p.current().addText(p.mode, line)
	}
	return nil
}

// scanDirective applies a `:name: value` line either to the current item or,
// inside a comment region, to the document-level key override list.
func (p *Parser) scanDirective(num int, line string) error {
	if p.mode == modeSearching {
		return xerrors.ParseAt(num, "directive before any section header")
	}

	name, value, ok := strings.Cut(line[1:], ":")
	if !ok {
		p.warn(num, line, "malformed directive, expected :name: value")
		return nil
	}
	value = strings.TrimSpace(value)

	if p.inComment {
		// Hidden keys: preferences that exist in code but not in the
		// visible settings screen still get a key constant.
		if name == "key" {
			p.keys = append(p.keys, value)
		}
		return nil
	}

	set, known := directiveFields[name]
	if !known {
		p.warn(num, line, fmt.Sprintf("unknown directive %q ignored", name))
		return nil
	}
	set(p.current(), value)
	return nil
}

func (p *Parser) current() *Item {
	return p.linear[len(p.linear)-1]
}

func (p *Parser) warn(num int, text, message string) {
	p.warnings = append(p.warnings, Warning{Line: num, Text: text, Message: message})
}

// markerRun returns the length of the leading header marker run.
func markerRun(line string) int {
	n := 0
	for n < len(line) && line[n] == line[0] {
		n++
	}
	return n
}

// finalize fills in per-item defaults after scanning: derived keys, summary
// period stripping, string table registration, list default indexes and enum
// value parsing. Section items drop text that would otherwise emit unused
// string resources (a category keeps its title only).
func finalize(items []*Item, table map[string]string) {
	for _, it := range items {
		if it.Key == "" {
			it.Key = MakeKey(it.Title)
		}

		it.Summary = stripDot(it.Summary)

		switch it.Type {
		case TypeRoot, TypeScreen, TypeCategory:
			it.Summary = ""
			if it.Type != TypeCategory {
				it.Title = ""
			}
		}

		for _, s := range []string{it.Title, it.Summary} {
			if s != "" {
				table[s] = makeStringRef(s)
			}
		}

		if len(it.ListItems) > 0 {
			it.DefaultValue = "0"
			for n, li := range it.ListItems {
				if strings.HasSuffix(li, "(default)") {
					it.DefaultValue = strconv.Itoa(n)
					it.ListItems[n] = strings.TrimSpace(strings.TrimSuffix(li, "(default)"))
					break
				}
			}
		}

		if it.enumRaw != "" {
			for _, v := range strings.Split(it.enumRaw, ",") {
				it.EnumValues = append(it.EnumValues, strings.TrimSpace(v))
			}
			it.EnumName = MakeVar(strings.ReplaceAll(it.Title, " ", "_"), false) + "Enum"
		}
	}
}
