package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/models"

	"github.com/rs/zerolog/log"
)

var ErrDeleteNotAllowed = errors.New("this role cannot delete entries")

const entityDailySale = "daily_sale"

type AuditWriter interface {
	WriteLog(ctx context.Context, opts audit.LogOptions) error
}

type Options struct {
	// SupervisorHistoryLimit caps how many recent entries a supervisor sees.
	SupervisorHistoryLimit int
	DeleteTimeout          time.Duration
}

// FormState is what the entry form shows after a date is picked or a field
// changes.
type FormState struct {
	Mode     ledger.FormMode   `json:"mode"`
	Entry    ledger.DailyEntry `json:"entry"`
	Summary  ledger.Summary    `json:"summary"`
	Warnings []string          `json:"warnings"`
}

type SaveResult struct {
	Record   Record         `json:"record"`
	Created  bool           `json:"created"`
	Summary  ledger.Summary `json:"summary"`
	Warnings []string       `json:"warnings"`
}

type Service struct {
	repo    Repository
	pending *PendingDeleter
	audit   AuditWriter
	opts    Options
}

func NewService(repo Repository, pending *PendingDeleter, aw AuditWriter, opts Options) *Service {
	if opts.DeleteTimeout <= 0 {
		opts.DeleteTimeout = 30 * time.Second
	}
	return &Service{repo: repo, pending: pending, audit: aw, opts: opts}
}

func newFormState(mode ledger.FormMode, e ledger.DailyEntry) *FormState {
	return &FormState{
		Mode:     mode,
		Entry:    e,
		Summary:  ledger.Summarize(e),
		Warnings: nonNil(ledger.EmptyFields(e)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// LoadForDate returns the stored entry for the date or, when none exists,
// a fresh form whose openings carry over the previous day's closings.
func (s *Service) LoadForDate(ctx context.Context, sess auth.Session, day ledger.Day, entryNumber int) (*FormState, error) {
	if entryNumber < 1 {
		entryNumber = ledger.DefaultEntryNumber
	}

	rec, err := s.repo.FindByDate(ctx, sess.StationID, day, entryNumber)
	if err == nil {
		return newFormState(ledger.ModeEditingExisting, rec.Entry), nil
	}
	if !errors.Is(err, ErrEntryNotFound) {
		return nil, err
	}

	var prev *ledger.DailyEntry
	prevRec, err := s.repo.FindLatestByDate(ctx, sess.StationID, day.Prev())
	switch {
	case err == nil:
		prev = &prevRec.Entry
	case !errors.Is(err, ErrEntryNotFound):
		return nil, err
	}

	fresh := ledger.SeedFreshDay(day, prev)
	fresh.EntryNumber = entryNumber
	return newFormState(ledger.ModeFreshDay, fresh), nil
}

// Preview applies edits to an unsaved entry and recomputes everything.
func (s *Service) Preview(mode ledger.FormMode, entry ledger.DailyEntry, edits []ledger.Edit) (*FormState, error) {
	entry.Normalize()
	if err := entry.ApplyAll(edits); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ledger.ModeFreshDay
	}
	return newFormState(mode, entry), nil
}

// Save persists the entry. Empty significant fields are reported back as
// warnings but never block the save.
func (s *Service) Save(ctx context.Context, sess auth.Session, entry ledger.DailyEntry) (*SaveResult, error) {
	entry.Normalize()

	var before *Record
	if rec, err := s.repo.FindByDate(ctx, sess.StationID, entry.Date, entry.EntryNumber); err == nil {
		before = rec
	} else if !errors.Is(err, ErrEntryNotFound) {
		return nil, err
	}

	rec, created, err := s.repo.Save(ctx, sess.StationID, entry)
	if err != nil {
		return nil, err
	}

	action := models.AuditActionUpdate
	if created {
		action = models.AuditActionCreate
	}
	var beforeData any
	if before != nil {
		beforeData = before
	}
	s.writeAudit(ctx, sess, rec.Key(), action, fmt.Sprintf("saved entry %s", rec.Key()), beforeData, rec)

	return &SaveResult{
		Record:   *rec,
		Created:  created,
		Summary:  ledger.Summarize(rec.Entry),
		Warnings: nonNil(ledger.EmptyFields(rec.Entry)),
	}, nil
}

func (s *Service) Get(ctx context.Context, sess auth.Session, day ledger.Day, entryNumber int) (*Record, error) {
	return s.repo.FindByDate(ctx, sess.StationID, day, entryNumber)
}

// FetchAll lists stored entries. Supervisors only ever see the most recent
// entries, newest first.
func (s *Service) FetchAll(ctx context.Context, sess auth.Session, opts FetchOptions) ([]Record, error) {
	if sess.Role == auth.RoleSupervisor && s.opts.SupervisorHistoryLimit > 0 {
		opts.Order = OrderDesc
		if opts.Limit <= 0 || opts.Limit > s.opts.SupervisorHistoryLimit {
			opts.Limit = s.opts.SupervisorHistoryLimit
		}
	}
	return s.repo.FetchAll(ctx, sess.StationID, opts)
}

// ScheduleDelete starts the undo window for an entry. Any delete already
// waiting is dropped and never runs.
func (s *Service) ScheduleDelete(ctx context.Context, sess auth.Session, day ledger.Day, entryNumber int) (PendingOperation, error) {
	if !sess.CanDelete() {
		return PendingOperation{}, ErrDeleteNotAllowed
	}

	rec, err := s.repo.FindByDate(ctx, sess.StationID, day, entryNumber)
	if err != nil {
		return PendingOperation{}, err
	}

	op, replaced := s.pending.Schedule(day, entryNumber, func() {
		s.executeDelete(sess, rec)
	})
	if replaced != nil {
		log.Info().Str("entry", replaced.Key).Msg("pending delete replaced before it ran")
	}

	s.writeAudit(ctx, sess, op.Key, models.AuditActionScheduleDelete,
		fmt.Sprintf("delete of %s scheduled for %s", op.Key, op.ExecuteAt.UTC().Format(time.RFC3339)), nil, nil)
	return op, nil
}

func (s *Service) executeDelete(sess auth.Session, rec *Record) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.DeleteTimeout)
	defer cancel()

	key := rec.Key()
	if err := s.repo.Delete(ctx, sess.StationID, rec.Entry.Date, rec.Entry.EntryNumber); err != nil {
		log.Error().Err(err).Str("entry", key).Msg("deferred delete failed")
		return
	}
	log.Info().Str("entry", key).Str("role", string(sess.Role)).Msg("entry deleted")
	s.writeAudit(ctx, sess, key, models.AuditActionDelete, fmt.Sprintf("deleted entry %s", key), rec, nil)
}

// CancelDelete stops the pending delete of the given entry.
func (s *Service) CancelDelete(ctx context.Context, sess auth.Session, day ledger.Day, entryNumber int) (PendingOperation, error) {
	if !sess.CanDelete() {
		return PendingOperation{}, ErrDeleteNotAllowed
	}
	op, err := s.pending.Cancel(EntryKey(day, entryNumber))
	if err != nil {
		return PendingOperation{}, err
	}
	s.writeAudit(ctx, sess, op.Key, models.AuditActionCancelDelete, fmt.Sprintf("delete of %s cancelled", op.Key), nil, nil)
	return op, nil
}

func (s *Service) Pending() (PendingOperation, bool) {
	return s.pending.Current()
}

func (s *Service) writeAudit(ctx context.Context, sess auth.Session, key string, action models.AuditAction, desc string, before, after any) {
	if s.audit == nil {
		return
	}
	sid := sess.ID
	err := s.audit.WriteLog(ctx, audit.LogOptions{
		StationID:   sess.StationID,
		SessionID:   &sid,
		Role:        string(sess.Role),
		EntityType:  entityDailySale,
		EntityKey:   key,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	})
	if err != nil {
		log.Error().Err(err).Str("entry", key).Msg("write audit log")
	}
}
