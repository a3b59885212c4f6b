// Package render turns a parsed preference document into its generated
// outputs: the preference layout XML, the string resource XML and the two
// companion Java classes. Each renderer is a single stateless pass over the
// document; none of them mutate it, so the passes can run in any order or
// independently.
package render

import (
	"fmt"
	"io"
	"strings"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

// emitter wraps an io.Writer with a sticky error so render passes can emit
// without checking every write.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// finish converts any write failure into a render error.
func (e *emitter) finish(what string) error {
	if e.err != nil {
		return xerrors.Wrap(e.err, xerrors.CategoryRender, xerrors.SeverityFatal, "writing "+what)
	}
	return nil
}

// quoteAttr escapes s for XML and wraps it in quotes, preferring double
// quotes and falling back to single quotes or &quot; when the text itself
// contains quote characters.
func quoteAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	if strings.Contains(s, `"`) {
		if strings.Contains(s, "'") {
			return `"` + strings.ReplaceAll(s, `"`, "&quot;") + `"`
		}
		return "'" + s + "'"
	}
	return `"` + s + `"`
}
