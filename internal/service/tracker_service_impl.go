package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ymoriya/worktime/internal/contract"
	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/domain"
	"github.com/ymoriya/worktime/internal/ledger"
	"github.com/ymoriya/worktime/internal/repository"
)

type trackerService struct {
	uow           db.UnitOfWork
	idleThreshold time.Duration
	now           func() time.Time
}

// NewTrackerService creates the tracker backed by the given unit of work.
// idleThreshold is the activity gap past which a ping records an idle break.
func NewTrackerService(uow db.UnitOfWork, idleThreshold time.Duration) TrackerService {
	return &trackerService{
		uow:           uow,
		idleThreshold: idleThreshold,
		now:           time.Now,
	}
}

func (s *trackerService) newEvent(fileID string, kind ledger.EventKind, at time.Time) *ledger.Event {
	return &ledger.Event{
		ID:         uuid.New().String(),
		FileID:     fileID,
		Kind:       kind,
		At:         at.UTC(),
		RecordedAt: s.now().UTC(),
	}
}

func (s *trackerService) Open(ctx context.Context, path string) (*contract.OpenResult, error) {
	abs, err := normalizePath(path)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	res := &contract.OpenResult{}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		files := repository.NewSQLiteFileRepo(tx)
		events := repository.NewSQLiteEventRepo(tx)

		file, err := files.GetByPath(ctx, abs)
		if errors.Is(err, repository.ErrNotFound) {
			file = &domain.TrackedFile{
				ID:        uuid.New().String(),
				Path:      abs,
				Name:      filepath.Base(abs),
				CreatedAt: now,
			}
			if err := files.Create(ctx, file); err != nil {
				return err
			}
			res.Created = true
		} else if err != nil {
			return err
		}

		log, err := events.ListByFile(ctx, file.ID)
		if err != nil {
			return err
		}
		data := ledger.Replay(file, log)

		// A session still open in the log means the previous run never
		// closed cleanly. Close it at the best-known end before starting.
		if stale := data.ActiveSession(); stale != nil {
			end := recoveryTime(ctx, events, file, now)
			if end.After(now) {
				end = now
			}
			e := s.newEvent(file.ID, ledger.SessionEnded, end)
			e.SessionID = stale.ID
			if err := events.Append(ctx, e); err != nil {
				return err
			}
			res.Recovered++
		}

		sess := &domain.Session{
			ID:        uuid.New().String(),
			FileID:    file.ID,
			Seq:       data.NextSeq(),
			StartedAt: now,
		}
		e := s.newEvent(file.ID, ledger.SessionStarted, now)
		e.SessionID = sess.ID
		if err := events.Append(ctx, e); err != nil {
			return err
		}
		if err := files.TouchActivity(ctx, file.ID, now); err != nil {
			return err
		}

		res.File = file
		res.Session = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *trackerService) Close(ctx context.Context, path string) (*domain.Session, error) {
	now := s.now().UTC()
	var closed *domain.Session

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		active := data.ActiveSession()
		if active == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}

		events := repository.NewSQLiteEventRepo(tx)
		e := s.newEvent(file.ID, ledger.SessionEnded, now)
		e.SessionID = active.ID
		if err := events.Append(ctx, e); err != nil {
			return err
		}

		end := now
		active.EndedAt = &end
		closed = active
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (s *trackerService) Ping(ctx context.Context, path string) (*contract.PingResult, error) {
	now := s.now().UTC()
	res := &contract.PingResult{}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		if data.ActiveSession() == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}

		files := repository.NewSQLiteFileRepo(tx)
		events := repository.NewSQLiteEventRepo(tx)

		last, err := files.LastActivity(ctx, file.ID)
		if err != nil {
			return err
		}
		if gap := now.Sub(last); gap > 0 {
			res.IdleGap = gap
		}

		switch {
		case data.OnBreak():
			// Activity ends whatever break is open, idle or manual.
			if err := events.Append(ctx, s.newEvent(file.ID, ledger.BreakEnded, now)); err != nil {
				return err
			}
			res.BreakEnded = true

		case res.IdleGap >= s.idleThreshold:
			// The tracker only learns about idleness after the fact, so the
			// break spans from the last recorded activity up to this ping.
			start := s.newEvent(file.ID, ledger.BreakStarted, last)
			start.BreakID = uuid.New().String()
			start.Reason = domain.BreakIdle
			if err := events.Append(ctx, start); err != nil {
				return err
			}
			if err := events.Append(ctx, s.newEvent(file.ID, ledger.BreakEnded, now)); err != nil {
				return err
			}
			res.BreakRecorded = true
		}

		return files.TouchActivity(ctx, file.ID, now)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Save records a checkpoint. It deliberately does not end the session: a
// save marks progress within ongoing work, not the end of it.
func (s *trackerService) Save(ctx context.Context, path string) error {
	now := s.now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, _, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		events := repository.NewSQLiteEventRepo(tx)
		if err := events.Append(ctx, s.newEvent(file.ID, ledger.Checkpoint, now)); err != nil {
			return err
		}
		files := repository.NewSQLiteFileRepo(tx)
		return files.TouchActivity(ctx, file.ID, now)
	})
}

func (s *trackerService) Switch(ctx context.Context, path string) (*domain.Session, error) {
	now := s.now().UTC()
	var started *domain.Session

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		events := repository.NewSQLiteEventRepo(tx)

		if active := data.ActiveSession(); active != nil {
			e := s.newEvent(file.ID, ledger.SessionEnded, now)
			e.SessionID = active.ID
			if err := events.Append(ctx, e); err != nil {
				return err
			}
		}

		started = &domain.Session{
			ID:        uuid.New().String(),
			FileID:    file.ID,
			Seq:       data.NextSeq(),
			StartedAt: now,
		}
		e := s.newEvent(file.ID, ledger.SessionStarted, now)
		e.SessionID = started.ID
		if err := events.Append(ctx, e); err != nil {
			return err
		}

		files := repository.NewSQLiteFileRepo(tx)
		return files.TouchActivity(ctx, file.ID, now)
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

func (s *trackerService) ResetSession(ctx context.Context, path string) error {
	now := s.now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		active := data.ActiveSession()
		if active == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}

		events := repository.NewSQLiteEventRepo(tx)
		e := s.newEvent(file.ID, ledger.SessionReset, now)
		e.SessionID = active.ID
		return events.Append(ctx, e)
	})
}

func (s *trackerService) ResetData(ctx context.Context, path string) error {
	now := s.now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, _, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		events := repository.NewSQLiteEventRepo(tx)
		return events.Append(ctx, s.newEvent(file.ID, ledger.DataReset, now))
	})
}

func (s *trackerService) SetComment(ctx context.Context, path, comment string) error {
	now := s.now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		active := data.ActiveSession()
		if active == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}

		events := repository.NewSQLiteEventRepo(tx)
		e := s.newEvent(file.ID, ledger.CommentSet, now)
		e.SessionID = active.ID
		e.Note = comment
		return events.Append(ctx, e)
	})
}

func (s *trackerService) Comment(ctx context.Context, path string) (string, error) {
	var comment string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		active := data.ActiveSession()
		if active == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}
		comment = active.Comment
		return nil
	})
	return comment, err
}

func (s *trackerService) StartBreak(ctx context.Context, path string, reason domain.BreakReason, comment string) (*domain.Break, error) {
	if !reason.Valid() {
		return nil, fmt.Errorf("invalid break reason %q", reason)
	}
	now := s.now().UTC()
	var started *domain.Break

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		active := data.ActiveSession()
		if active == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveSession)
		}
		if data.OnBreak() {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrBreakAlreadyOpen)
		}

		events := repository.NewSQLiteEventRepo(tx)
		e := s.newEvent(file.ID, ledger.BreakStarted, now)
		e.BreakID = uuid.New().String()
		e.Reason = reason
		e.Note = comment
		if err := events.Append(ctx, e); err != nil {
			return err
		}

		started = &domain.Break{
			ID:        e.BreakID,
			SessionID: active.ID,
			StartedAt: now,
			Reason:    reason,
			Comment:   comment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

func (s *trackerService) EndBreak(ctx context.Context, path string) (*domain.Break, error) {
	now := s.now().UTC()
	var ended *domain.Break

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, data, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		open := data.ActiveBreak()
		if open == nil {
			return fmt.Errorf("%s: %w", file.DisplayName(), ErrNoActiveBreak)
		}

		events := repository.NewSQLiteEventRepo(tx)
		if err := events.Append(ctx, s.newEvent(file.ID, ledger.BreakEnded, now)); err != nil {
			return err
		}

		end := now
		open.EndedAt = &end
		ended = open

		files := repository.NewSQLiteFileRepo(tx)
		return files.TouchActivity(ctx, file.ID, now)
	})
	if err != nil {
		return nil, err
	}
	return ended, nil
}

func (s *trackerService) ClearBreaks(ctx context.Context, path string) error {
	now := s.now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		file, _, err := loadAggregate(ctx, tx, path)
		if err != nil {
			return err
		}
		events := repository.NewSQLiteEventRepo(tx)
		return events.Append(ctx, s.newEvent(file.ID, ledger.BreaksCleared, now))
	})
}
