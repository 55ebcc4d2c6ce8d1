// Package report renders markdown work-time reports from a mustache
// template. The default template mirrors the layout users export from the
// tracker UI; a custom template path can be configured instead.
package report

import (
	"fmt"
	"time"

	"github.com/cbroglie/mustache"
)

const defaultTemplate = `# Work Time Report for {{FileName}}
Generated: {{GeneratedAt}}
File created: {{CreatedAt}}
Path: {{Path}}

## Summary
- Total work time: {{TotalTime}}
{{#HasActive}}
- Current session: {{SessionTime}}
{{/HasActive}}
- Time since last save: {{TimeSinceSave}}

## Session History
{{#Sessions}}
### Session {{Num}}
- Start: {{Start}}
- End: {{End}}
- Duration: {{Duration}}
{{#HasBreaks}}
- Breaks: {{BreakCount}} ({{BreakTime}} excluded)
{{/HasBreaks}}
{{#HasComment}}
- Comment: {{Comment}}
{{/HasComment}}

{{/Sessions}}
`

// Session is one entry of the report's history section, pre-formatted.
type Session struct {
	Num        int
	Start      string
	End        string
	Duration   string
	Comment    string
	HasComment bool
	BreakCount int
	BreakTime  string
	HasBreaks  bool
}

// Data is the fully formatted template context.
type Data struct {
	FileName      string
	Path          string
	GeneratedAt   string
	CreatedAt     string
	TotalTime     string
	SessionTime   string
	TimeSinceSave string
	HasActive     bool
	Sessions      []Session
}

// Render produces the report using the built-in template.
func Render(d Data) (string, error) {
	out, err := mustache.Render(defaultTemplate, d)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}

// RenderFile produces the report using a custom template file.
func RenderFile(templatePath string, d Data) (string, error) {
	out, err := mustache.RenderFile(templatePath, d)
	if err != nil {
		return "", fmt.Errorf("rendering report template %s: %w", templatePath, err)
	}
	return out, nil
}

// Clock formats a duration as HH:MM:SS.
func Clock(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Timestamp formats an instant for report output in local time.
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
