package render

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dkoosis/rflaunch/pkg/suite"
)

// CatalogTable writes every selectable key of c as a table.
func CatalogTable(w io.Writer, c *suite.Catalog, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(TitleCase(c.Domain) + " suites (" + c.ValidRange() + ")")
	t.AppendHeader(table.Row{"Key", "Description", "Path", "Test", "Include", "Exclude"})

	for _, e := range c.Entries {
		cfg := e.Config
		t.AppendRow(table.Row{
			e.Key,
			cfg.Description,
			cfg.TestPath,
			cfg.TestName,
			strings.Join(cfg.IncludeTags, ","),
			strings.Join(cfg.ExcludeTags, ","),
		})
	}
	for _, k := range []string{c.CustomTagKey, c.TestNameKey} {
		if k != "" {
			t.AppendRow(table.Row{k, c.Describe(k), c.DefaultPath, "", "", ""})
		}
	}
	if c.ExitKey != "" {
		t.AppendRow(table.Row{c.ExitKey, c.Describe(c.ExitKey), "", "", "", ""})
	}

	if color && IsTTY(w) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
	}
	t.Render()
}
