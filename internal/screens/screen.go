// Package screens holds one state container per tracker screen.
//
// Controllers own their entry sequence for the lifetime of the session,
// turn raw form input into entries and hand immutable snapshots to the
// ledger package for every derived figure.
package screens

import (
	"errors"
	"fmt"

	"sakura/internal/core"
	"sakura/internal/log"
	"sakura/internal/store"
)

var ErrNotFound = errors.New("not found")

// Screen names used in logs and as page ids.
const (
	PageDashboard   = "dashboard"
	PageIncome      = "income"
	PageExpenses    = "expenses"
	PageInvestments = "stocks"
	PageBeauty      = "beauty"
	PageGifts       = "gifts"
	PageCharts      = "charts"
	PageNotes       = "notes"
)

// Pages lists every navigable page in menu order.
func Pages() []string {
	return []string{PageDashboard, PageIncome, PageExpenses, PageInvestments, PageBeauty, PageGifts, PageCharts, PageNotes}
}

type ledgerScreen[E core.Entry] struct {
	name        string
	entries     store.Entries[E]
	ids         IDGenerator
	today       func() core.Date
	newestFirst bool
	logger      *log.Logger
}

func (s *ledgerScreen[E]) add(build func(id core.ID, today core.Date) (E, error)) (E, error) {
	var zero E
	e, err := build(s.ids.NewID(), s.today())
	if err != nil {
		logRejected(s.logger, "Entry rejected", err)
		return zero, err
	}

	if s.newestFirst {
		err = s.entries.Prepend(e)
	} else {
		err = s.entries.Append(e)
	}
	if err != nil {
		return zero, fmt.Errorf("store %s entry: %w", s.name, err)
	}

	s.logger.Info("Entry created", log.NewFields().
		WithOperation(log.OpCreate).
		WithEntry(string(e.EntryID()), e.Category(), e.Value()).
		ToSlice()...)
	return e, nil
}

// Delete removes the entry with id.
func (s *ledgerScreen[E]) Delete(id core.ID) error {
	if !s.entries.Delete(id) {
		s.logger.Debug("Entry not found",
			log.FieldOperation, log.OpDelete,
			log.FieldErrorType, log.ErrorTypeNotFound,
			log.FieldEntryID, id)
		return fmt.Errorf("delete %s entry %q: %w", s.name, id, ErrNotFound)
	}
	s.logger.Info("Entry deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldEntryID, id)
	return nil
}

// logRejected records a refused submission, naming the offending field
// when there is one.
func logRejected(logger *log.Logger, msg string, err error) {
	args := []any{
		log.FieldErrorType, log.ErrorTypeValidation,
		log.FieldError, err,
	}
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		args = append(args, log.FieldField, ve.Field)
	}
	logger.Debug(msg, args...)
}

// Entries returns a snapshot of the entries in display order.
func (s *ledgerScreen[E]) Entries() []E {
	return s.entries.List()
}

// Len returns the number of entries.
func (s *ledgerScreen[E]) Len() int {
	return s.entries.Len()
}
