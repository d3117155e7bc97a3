package emit

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/asm8/asm"
)

// WriteListing renders one table row per emitted word, followed by the
// padding count.
func WriteListing(w io.Writer, p *asm.Program, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Program Listing")

	t.AppendHeader(table.Row{"Addr", "Word", "Line", "Mnemonic", "Role"})

	for addr, e := range p.Records() {
		t.AppendRow(table.Row{
			fmt.Sprintf("%03d", addr),
			string(e.Word),
			e.Line,
			e.Mnemonic,
			e.Role.String(),
		})
	}

	t.AppendFooter(table.Row{
		"", "", "",
		fmt.Sprintf("%d words", s.Words),
		fmt.Sprintf("+%d zero", s.Padding),
	})

	t.Render()
}
