package render

import (
	"io"
	"strings"

	"git.home.luguber.info/inful/prefgen/internal/prefdoc"
)

// Layout writes the preference layout XML for the document tree. Indentation
// is a function of depth only: the root and the screen directly below it emit
// no indent, every level beneath adds one four-space unit. Title and summary
// text is referenced indirectly through the shared string table so layout and
// string resources can be regenerated independently.
func Layout(w io.Writer, doc *prefdoc.Document) error {
	e := &emitter{w: w}
	layoutItem(e, doc, doc.Root, 0)
	return e.finish("layout")
}

func layoutItem(e *emitter, doc *prefdoc.Document, it *prefdoc.Item, depth int) {
	indent := ""
	if depth > 1 {
		indent = strings.Repeat(" ", (depth-1)*4)
	}

	ref := func(s string) string { return "@string/" + doc.Strings[s] }

	switch it.Type {
	case prefdoc.TypeRoot:
		e.printf("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
		e.printf("<!-- Generated by prefgen - Do not edit by hand! -->\n")
	case prefdoc.TypeScreen:
		e.printf("%s<PreferenceScreen\n", indent)
		e.printf("%s    xmlns:android=\"http://schemas.android.com/apk/res/android\"\n", indent)
		e.printf("%s    android:key=\"%s\" >\n\n", indent, it.Key)
	case prefdoc.TypeCategory:
		e.printf("%s<PreferenceCategory\n", indent)
		e.printf("%s    android:title=\"%s\" >\n\n", indent, ref(it.Title))
	default:
		e.printf("%s<%s\n", indent, it.Type)
		e.printf("%s    android:key=\"%s\"\n", indent, it.Key)
		e.printf("%s    android:title=\"%s\"\n", indent, ref(it.Title))
		e.printf("%s    android:summary=\"%s\"", indent, ref(it.Summary))
		if it.DefaultValue != "" {
			e.printf("\n%s    android:defaultValue=\"%s\"", indent, it.DefaultValue)
		}
		if it.DialogLayout != "" {
			e.printf("\n%s    android:dialogLayout=\"%s\"", indent, it.DialogLayout)
		}
		if len(it.ListItems) > 0 {
			e.printf("\n%s    android:entries=\"@array/%s_array\"", indent, it.Key)
			e.printf("\n%s    android:entryValues=\"@array/%s_array_values\"", indent, it.Key)
		}
		e.printf(" />\n\n")
	}

	for _, child := range it.Items {
		layoutItem(e, doc, child, depth+1)
	}

	switch it.Type {
	case prefdoc.TypeScreen:
		e.printf("%s</PreferenceScreen>\n", indent)
	case prefdoc.TypeCategory:
		e.printf("%s</PreferenceCategory>\n\n", indent)
	}
}
