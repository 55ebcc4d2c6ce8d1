package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ymoriya/worktime/internal/contract"
)

// FormatStatus formats one file's status as a boxed dashboard.
func FormatStatus(st *contract.FileStatus) string {
	var b strings.Builder

	b.WriteString(Bold(st.File.DisplayName()))
	b.WriteString("  ")
	b.WriteString(StateIndicator(st.ActiveSessionSeq > 0, st.OnBreak))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Total work time"), StyleFg.Render(Clock(st.TotalTime))))

	if st.ActiveSessionSeq > 0 {
		session := fmt.Sprintf("%s  %s", StyleFg.Render(Clock(st.SessionTime)), Dim(fmt.Sprintf("session #%d", st.ActiveSessionSeq)))
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Current session"), session))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Current session"), Dim("--")))
	}

	if st.OnBreak {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Break"), BreakBadge(st.BreakReason)))
	} else if st.ActiveSessionSeq > 0 && st.IdleFor >= time.Minute {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Last activity"), Dim(HumanDuration(st.IdleFor)+" ago")))
	}

	lastSave := HumanTimestamp(st.Now.Add(-st.TimeSinceSave))
	if st.UnsavedWarning {
		b.WriteString(fmt.Sprintf("%s  %s %s\n", Dim("Last save"), Warn(lastSave), Warn("⚠ unsaved work")))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Last save"), StyleFg.Render(lastSave)))
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// FormatStatusLine formats the compact one-line status used by shell prompts
// and editors: total | session  #seq  state.
func FormatStatusLine(st *contract.FileStatus) string {
	seq := "#-"
	if st.ActiveSessionSeq > 0 {
		seq = fmt.Sprintf("#%d", st.ActiveSessionSeq)
	}
	line := fmt.Sprintf("%s | %s  %s  %s",
		ClockShort(st.TotalTime),
		ClockShort(st.SessionTime),
		seq,
		StateIndicator(st.ActiveSessionSeq > 0, st.OnBreak),
	)
	if st.UnsavedWarning {
		line += "  " + Warn("⚠")
	}
	return line
}

// FormatStatusList formats the all-files overview as a table.
func FormatStatusList(statuses []*contract.FileStatus) string {
	headers := []string{"FILE", "STATE", "TOTAL", "SESSION", "LAST SAVE"}
	rows := make([][]string, 0, len(statuses))

	for _, st := range statuses {
		session := Dim("--")
		if st.ActiveSessionSeq > 0 {
			session = StyleFg.Render(Clock(st.SessionTime))
		}
		lastSave := HumanTimestamp(st.Now.Add(-st.TimeSinceSave))
		if st.UnsavedWarning {
			lastSave = Warn(lastSave)
		}
		rows = append(rows, []string{
			Bold(st.File.DisplayName()),
			StateIndicator(st.ActiveSessionSeq > 0, st.OnBreak),
			StyleFg.Render(Clock(st.TotalTime)),
			session,
			lastSave,
		})
	}

	return RenderTable(headers, rows)
}
