package usecase_test

import (
	"context"
	"strconv"
	"time"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.ConfigFromValues("debug", "console"))
	return logging.WithContext(context.Background(), logger)
}

var fixedNow = time.Date(2024, time.March, 9, 14, 5, 30, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// applyTo returns an Update implementation that mutates ledger in memory.
func applyTo(ledger *entity.HistoryLedger) func(context.Context, func(*entity.HistoryLedger) bool) error {
	return func(_ context.Context, mutate func(*entity.HistoryLedger) bool) error {
		mutate(ledger)
		return nil
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}
