package service

import (
	"context"
	"time"

	"github.com/ymoriya/worktime/internal/contract"
	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
	"github.com/ymoriya/worktime/internal/repository"
)

type statusService struct {
	conn           db.DBTX
	unsavedWarning time.Duration
	now            func() time.Time
}

// NewStatusService creates the read-only status query service.
// unsavedWarning is the checkpoint age past which statuses carry a warning.
func NewStatusService(conn db.DBTX, unsavedWarning time.Duration) StatusService {
	return &statusService{
		conn:           conn,
		unsavedWarning: unsavedWarning,
		now:            time.Now,
	}
}

func (s *statusService) FileStatus(ctx context.Context, path string) (*contract.FileStatus, error) {
	file, data, err := loadAggregate(ctx, s.conn, path)
	if err != nil {
		return nil, err
	}
	return s.buildStatus(ctx, file, data)
}

func (s *statusService) AllStatus(ctx context.Context) ([]*contract.FileStatus, error) {
	files := repository.NewSQLiteFileRepo(s.conn)
	events := repository.NewSQLiteEventRepo(s.conn)

	all, err := files.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]*contract.FileStatus, 0, len(all))
	for _, file := range all {
		log, err := events.ListByFile(ctx, file.ID)
		if err != nil {
			return nil, err
		}
		st, err := s.buildStatus(ctx, file, ledger.Replay(file, log))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (s *statusService) Sessions(ctx context.Context, path string) (*contract.SessionList, error) {
	file, data, err := loadAggregate(ctx, s.conn, path)
	if err != nil {
		return nil, err
	}
	return &contract.SessionList{
		File:     file,
		Data:     data,
		Now:      s.now().UTC(),
		Sessions: data.Sessions,
	}, nil
}

func (s *statusService) buildStatus(ctx context.Context, file *domain.TrackedFile, data *domain.TimeData) (*contract.FileStatus, error) {
	now := s.now().UTC()

	st := &contract.FileStatus{
		File:          file,
		Data:          data,
		Now:           now,
		TotalTime:     data.Total(now),
		TimeSinceSave: data.TimeSinceSave(now),
	}

	if active := data.ActiveSession(); active != nil {
		st.ActiveSessionSeq = active.Seq
		st.SessionTime = active.ActiveTime(now)
	}
	if b := data.ActiveBreak(); b != nil {
		st.OnBreak = true
		st.BreakReason = b.Reason
	}
	st.UnsavedWarning = st.TimeSinceSave >= s.unsavedWarning

	files := repository.NewSQLiteFileRepo(s.conn)
	if last, err := files.LastActivity(ctx, file.ID); err == nil {
		if gap := now.Sub(last); gap > 0 {
			st.IdleFor = gap
		}
	}

	return st, nil
}
