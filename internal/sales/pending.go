package sales

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"fuelstation-backend/internal/ledger"
)

var ErrNoPendingDelete = errors.New("no pending delete for this entry")

// EntryKey is the text form of an entry identity, e.g. "2024-06-01#2".
func EntryKey(day ledger.Day, entryNumber int) string {
	return fmt.Sprintf("%s#%d", day, entryNumber)
}

// PendingOperation describes the delete waiting out its undo window.
type PendingOperation struct {
	Key         string     `json:"key"`
	Date        ledger.Day `json:"date"`
	EntryNumber int        `json:"entry_number"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	ExecuteAt   time.Time  `json:"execute_at"`
}

type pendingTask struct {
	op    PendingOperation
	timer *time.Timer
	run   func()
}

// PendingDeleter tracks at most one deferred delete. Scheduling another
// entry drops the previous one without running it.
type PendingDeleter struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	current *pendingTask
}

func NewPendingDeleter(window time.Duration) *PendingDeleter {
	return &PendingDeleter{window: window, now: time.Now}
}

// Schedule starts the undo window for day/entryNumber; run is called once
// the window passes unless cancelled first. A replaced operation is
// returned so callers can report it.
func (p *PendingDeleter) Schedule(day ledger.Day, entryNumber int, run func()) (PendingOperation, *PendingOperation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var replaced *PendingOperation
	if p.current != nil {
		p.current.timer.Stop()
		prev := p.current.op
		replaced = &prev
	}

	now := p.now()
	task := &pendingTask{
		op: PendingOperation{
			Key:         EntryKey(day, entryNumber),
			Date:        day,
			EntryNumber: entryNumber,
			ScheduledAt: now,
			ExecuteAt:   now.Add(p.window),
		},
		run: run,
	}
	task.timer = time.AfterFunc(p.window, func() { p.fire(task) })
	p.current = task

	return task.op, replaced
}

func (p *PendingDeleter) fire(task *pendingTask) {
	p.mu.Lock()
	if p.current != task {
		// cancelled or replaced while the timer was firing
		p.mu.Unlock()
		return
	}
	p.current = nil
	p.mu.Unlock()

	task.run()
}

// Cancel aborts the pending delete if it is for key.
func (p *PendingDeleter) Cancel(key string) (PendingOperation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil || p.current.op.Key != key {
		return PendingOperation{}, ErrNoPendingDelete
	}
	p.current.timer.Stop()
	op := p.current.op
	p.current = nil
	return op, nil
}

func (p *PendingDeleter) Current() (PendingOperation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return PendingOperation{}, false
	}
	return p.current.op, true
}

// Stop drops any pending delete without running it.
func (p *PendingDeleter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.timer.Stop()
		p.current = nil
	}
}
