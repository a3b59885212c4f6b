package render

import (
	"fmt"
	"io"
	"sort"

	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
)

// Resources writes the string resource XML: every distinct title/summary
// string sorted lexicographically by its full rendered line, followed by the
// entry/entry-value array pair for each list preference in document order.
func Resources(w io.Writer, doc *prefdoc.Document) error {
	e := &emitter{w: w}
	e.printf("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	e.printf("<resources>\n")

	lines := make([]string, 0, len(doc.Strings))
	for text, name := range doc.Strings {
		lines = append(lines, fmt.Sprintf("    <string name=\"%s\">%s</string>\n", name, text))
	}
	sort.Strings(lines)
	for _, line := range lines {
		e.printf("%s", line)
	}

	for _, it := range doc.Linear {
		if len(it.ListItems) == 0 {
			continue
		}
		e.printf("    <string-array name=\"%s_array\">\n", it.Key)
		for _, li := range it.ListItems {
			e.printf("        <item>%s</item>\n", quoteAttr(li))
		}
		e.printf("    </string-array>\n")
		// Index values go into a string-array: ListPreference cannot read
		// entryValues from an integer-array.
		e.printf("    <string-array name=\"%s_array_values\" translatable=\"false\">\n", it.Key)
		for i := range it.ListItems {
			e.printf("        <item>%d</item>\n", i)
		}
		e.printf("    </string-array>\n")
	}

	e.printf("</resources>\n")
	return e.finish("string resources")
}
