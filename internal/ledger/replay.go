package ledger

import (
	"time"

	"github.com/ymoriya/worktime/internal/domain"
)

// Replay folds an event log into the TimeData aggregate for one file.
//
// Events must be supplied in append order (the order the repository returns
// them in). Effective timestamps are not re-sorted: retroactive events such
// as idle breaks carry an At in the past on purpose, and re-sorting would
// break their causal relationship to the surrounding session events.
//
// Rows that contradict the running state (a break_ended with no open break,
// a session_ended for an unknown session) are skipped rather than failing
// the whole rebuild, mirroring the fall-back-to-defaults handling of
// malformed stored data.
func Replay(file *domain.TrackedFile, events []Event) *domain.TimeData {
	data := &domain.TimeData{
		FileID:    file.ID,
		CreatedAt: file.CreatedAt,
	}

	byID := make(map[string]*domain.Session)

	for _, e := range events {
		switch e.Kind {
		case SessionStarted:
			// Defensive close: the log should never hold two open sessions,
			// but if it does, the older one ends where the newer begins.
			if open := data.ActiveSession(); open != nil {
				closeSession(open, e.At)
			}
			s := &domain.Session{
				ID:        e.SessionID,
				FileID:    e.FileID,
				Seq:       data.NextSeq(),
				StartedAt: e.At,
			}
			data.Sessions = append(data.Sessions, s)
			byID[s.ID] = s

		case SessionEnded:
			s := byID[e.SessionID]
			if s == nil || !s.Active() {
				continue
			}
			closeSession(s, e.At)

		case SessionReset:
			s := data.ActiveSession()
			if s == nil {
				continue
			}
			// Restart at the reset time. Earlier breaks fall outside the new
			// span and are excluded by clamping; no state needs rewriting.
			s.StartedAt = e.At

		case BreakStarted:
			s := data.ActiveSession()
			if s == nil || s.ActiveBreak() != nil {
				continue
			}
			s.Breaks = append(s.Breaks, &domain.Break{
				ID:        e.BreakID,
				SessionID: s.ID,
				StartedAt: e.At,
				Reason:    e.Reason,
				Comment:   e.Note,
			})

		case BreakEnded:
			b := data.ActiveBreak()
			if b == nil {
				continue
			}
			end := e.At
			if end.Before(b.StartedAt) {
				end = b.StartedAt
			}
			b.EndedAt = &end

		case BreaksCleared:
			for _, s := range data.Sessions {
				s.Breaks = nil
			}

		case CommentSet:
			s := byID[e.SessionID]
			if s == nil {
				s = data.ActiveSession()
			}
			if s == nil {
				continue
			}
			s.Comment = e.Note

		case Checkpoint:
			data.LastSaveAt = e.At

		case DataReset:
			data.Sessions = nil
			data.CreatedAt = e.At
			data.LastSaveAt = e.At
			byID = make(map[string]*domain.Session)
		}
	}

	return data
}

func closeSession(s *domain.Session, at time.Time) {
	end := at
	if end.Before(s.StartedAt) {
		end = s.StartedAt
	}
	if b := s.ActiveBreak(); b != nil {
		bEnd := end
		if bEnd.Before(b.StartedAt) {
			bEnd = b.StartedAt
		}
		b.EndedAt = &bEnd
	}
	s.EndedAt = &end
}
