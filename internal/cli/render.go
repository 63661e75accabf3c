package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable builds a table writer with the shared output style.
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetOutputMirror(out)
	return t
}
