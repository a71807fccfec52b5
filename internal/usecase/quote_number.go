package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Quote numbers are YYYYMM + a 4-digit zero-padded per-store, per-month
// sequence (e.g. 2026090012).
const (
	quoteNumberMonthLayout = "200601"
	quoteNumberLen         = 10

	// maxNumberAttempts bounds the counter catch-up loop before the
	// operation surfaces a conflict to the caller.
	maxNumberAttempts = 5
)

// nextQuoteNumber draws the next number for the store's current month.
//
// The sequence comes from an atomic upsert-and-increment counter, so two
// concurrent creations can never draw the same value. The last persisted
// number for the month is still consulted: a counter that is behind existing
// data (e.g. after a restore) is advanced until it passes it, bounded by
// maxNumberAttempts.
func (u *QuoteUseCase) nextQuoteNumber(ctx context.Context, storeID string, now time.Time) (string, error) {
	yearMonth := now.Format(quoteNumberMonthLayout)

	last, err := u.quotes.LastNumberForMonth(ctx, storeID, yearMonth)
	if err != nil {
		return "", err
	}
	lastSeq := parseQuoteSequence(last, yearMonth)

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		seq, err := u.quotes.NextSequence(ctx, storeID, yearMonth)
		if err != nil {
			return "", err
		}
		if seq > lastSeq {
			return fmt.Sprintf("%s%04d", yearMonth, seq), nil
		}
	}
	return "", ErrQuoteConflict
}

// parseQuoteSequence extracts the trailing sequence of a stored quote
// number. Returns 0 for an empty or malformed number, so the sequence
// restarts at 1 on the first quote of the month.
func parseQuoteSequence(number, yearMonth string) int {
	if len(number) != quoteNumberLen || number[:len(yearMonth)] != yearMonth {
		return 0
	}
	seq, err := strconv.Atoi(number[len(yearMonth):])
	if err != nil {
		return 0
	}
	return seq
}
