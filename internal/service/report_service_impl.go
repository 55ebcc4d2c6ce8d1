package service

import (
	"context"

	"github.com/ymoriya/worktime/internal/report"
)

type reportService struct {
	status       StatusService
	templatePath string
}

// NewReportService creates the report renderer. templatePath selects a
// custom mustache template; empty uses the built-in one.
func NewReportService(status StatusService, templatePath string) ReportService {
	return &reportService{status: status, templatePath: templatePath}
}

func (s *reportService) Generate(ctx context.Context, path string) (string, error) {
	st, err := s.status.FileStatus(ctx, path)
	if err != nil {
		return "", err
	}

	data := report.Data{
		FileName:      st.File.DisplayName(),
		Path:          st.File.Path,
		GeneratedAt:   report.Timestamp(st.Now),
		CreatedAt:     report.Timestamp(st.Data.CreatedAt),
		TotalTime:     report.Clock(st.TotalTime),
		TimeSinceSave: report.Clock(st.TimeSinceSave),
		HasActive:     st.ActiveSessionSeq > 0,
	}
	if data.HasActive {
		data.SessionTime = report.Clock(st.SessionTime)
	}

	for _, sess := range st.Data.Sessions {
		entry := report.Session{
			Num:        sess.Seq,
			Start:      report.Timestamp(sess.StartedAt),
			End:        "Active",
			Duration:   report.Clock(sess.ActiveTime(st.Now)),
			Comment:    sess.Comment,
			HasComment: sess.Comment != "",
			BreakCount: len(sess.Breaks),
			HasBreaks:  len(sess.Breaks) > 0,
		}
		if sess.EndedAt != nil {
			entry.End = report.Timestamp(*sess.EndedAt)
		}
		if entry.HasBreaks {
			entry.BreakTime = report.Clock(sess.BreakTime(st.Now))
		}
		data.Sessions = append(data.Sessions, entry)
	}

	if s.templatePath != "" {
		return report.RenderFile(s.templatePath, data)
	}
	return report.Render(data)
}
