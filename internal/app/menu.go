package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ItsNotGoodName/x-cwm/internal/wm"
)

// WriteOverview writes the workspace list with the current one marked.
func WriteOverview(w io.Writer, s wm.Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "CWM Workspaces:")
	for _, ws := range s.Workspaces {
		mark := " "
		if ws.Index == s.Current {
			mark = "*"
		}
		fmt.Fprintf(bw, "%s[%d] Windows: %d\n", mark, ws.Index, len(ws.Windows))
	}

	return bw.Flush()
}
