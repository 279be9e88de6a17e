package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/otkit/fontname/otname"
)

func listOp(intp *Intp, op *Op) (error, bool) {
	records := intp.names.Records()
	pterm.Printf("name table has %d records\n", len(records))
	if len(records) == 0 {
		return nil, false
	}
	data := [][]string{
		{"Index", "Platform", "Encoding", "Language", "NameID", "Value"},
	}
	for i, r := range records {
		value := "-"
		if v, err := intp.names.String(r); err == nil {
			value = fmt.Sprintf("%q", v)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatPlatform(r.Platform),
			fmt.Sprintf("%d", r.Encoding),
			fmt.Sprintf("0x%04x", r.Language),
			fmt.Sprintf("%d", r.Name),
			value,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func formatPlatform(p otname.PlatformID) string {
	switch p {
	case otname.PlatformUnicode:
		return "Unicode"
	case otname.PlatformMacintosh:
		return "Macintosh"
	case otname.PlatformWindows:
		return "Windows"
	}
	return fmt.Sprintf("Platform(%d)", uint16(p))
}
