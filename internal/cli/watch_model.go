package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ymoriya/worktime/internal/cli/formatter"
	"github.com/ymoriya/worktime/internal/contract"
	"github.com/ymoriya/worktime/internal/domain"
)

// watchModel is the live dashboard shown by "worktime watch". It refreshes
// the replayed status every second and exposes a few lifecycle actions.
type watchModel struct {
	app  *App
	path string

	status   *contract.FileStatus
	err      error
	flash    string
	spin     spinner.Model
	quitting bool
}

type statusMsg struct {
	status *contract.FileStatus
	err    error
}

type watchTickMsg time.Time

type flashMsg string

func newWatchModel(app *App, path string) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = formatter.StyleGreen
	return watchModel{app: app, path: path, spin: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refresh(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) refresh() tea.Cmd {
	app, path := m.app, m.path
	return func() tea.Msg {
		st, err := app.Status.FileStatus(context.Background(), path)
		return statusMsg{status: st, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "p":
			return m, m.doAction("ping", func(ctx context.Context) error {
				_, err := m.app.Tracker.Ping(ctx, m.path)
				return err
			})
		case "s":
			return m, m.doAction("checkpoint recorded", func(ctx context.Context) error {
				return m.app.Tracker.Save(ctx, m.path)
			})
		case "b":
			return m, m.toggleBreak()
		}

	case watchTickMsg:
		return m, tea.Batch(watchTick(), m.refresh())

	case statusMsg:
		m.status = msg.status
		m.err = msg.err
		return m, nil

	case flashMsg:
		m.flash = string(msg)
		return m, m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// doAction runs a tracker mutation off the Update loop and reports back.
func (m watchModel) doAction(done string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return flashMsg(formatter.Warn(err.Error()))
		}
		return flashMsg(formatter.Dim(done))
	}
}

func (m watchModel) toggleBreak() tea.Cmd {
	onBreak := m.status != nil && m.status.OnBreak
	return func() tea.Msg {
		ctx := context.Background()
		if onBreak {
			if _, err := m.app.Tracker.EndBreak(ctx, m.path); err != nil {
				return flashMsg(formatter.Warn(err.Error()))
			}
			return flashMsg(formatter.Dim("break ended"))
		}
		if _, err := m.app.Tracker.StartBreak(ctx, m.path, domain.BreakManual, ""); err != nil {
			return flashMsg(formatter.Warn(err.Error()))
		}
		return flashMsg(formatter.Dim("break started"))
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return formatter.Warn(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.status == nil {
		return m.spin.View() + " loading...\n"
	}

	st := m.status
	var b strings.Builder

	indicator := formatter.StateIndicator(st.ActiveSessionSeq > 0, st.OnBreak)
	if st.ActiveSessionSeq > 0 && !st.OnBreak {
		indicator = m.spin.View() + " " + indicator
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(st.File.DisplayName()), indicator))

	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Total   "), formatter.Clock(st.TotalTime)))
	if st.ActiveSessionSeq > 0 {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			formatter.Dim("Session "),
			formatter.Clock(st.SessionTime),
			formatter.Dim(fmt.Sprintf("#%d", st.ActiveSessionSeq))))
	}
	if st.OnBreak {
		b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Break   "), formatter.BreakBadge(st.BreakReason)))
	}

	lastSave := formatter.HumanTimestamp(st.Now.Add(-st.TimeSinceSave))
	if st.UnsavedWarning {
		b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Saved   "), formatter.Warn(lastSave+"  ⚠ unsaved work")))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Saved   "), lastSave))
	}

	if m.flash != "" {
		b.WriteString("\n" + m.flash + "\n")
	}

	box := formatter.RenderBox("", strings.TrimRight(b.String(), "\n"))
	help := formatter.Dim("p ping · s save · b break · q quit")
	return box + "\n" + help + "\n"
}
