package formatter

import (
	"fmt"

	"github.com/ymoriya/worktime/internal/contract"
)

// FormatSessions formats a file's session history as a table.
func FormatSessions(list *contract.SessionList) string {
	headers := []string{"#", "START", "END", "DURATION", "BREAKS", "COMMENT"}
	rows := make([][]string, 0, len(list.Sessions))

	for _, s := range list.Sessions {
		end := StyleGreen.Render("active")
		if s.EndedAt != nil {
			end = StyleFg.Render(Timestamp(*s.EndedAt))
		}
		breaks := Dim("--")
		if n := len(s.Breaks); n > 0 {
			breaks = StyleFg.Render(fmt.Sprintf("%d (%s)", n, ClockShort(s.BreakTime(list.Now))))
		}
		rows = append(rows, []string{
			Bold(fmt.Sprintf("%d", s.Seq)),
			StyleFg.Render(Timestamp(s.StartedAt)),
			end,
			StyleFg.Render(Clock(s.ActiveTime(list.Now))),
			breaks,
			TruncText(s.Comment, 40),
		})
	}

	return RenderTable(headers, rows)
}
