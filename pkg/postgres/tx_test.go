package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		tx := &fakeTx{}
		err := WithTransaction(ctx, fakeBeginner{tx: tx}, func(pgx.Tx) error { return nil })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tx.committed || tx.rolledBack {
			t.Errorf("committed=%v rolledBack=%v, want commit only", tx.committed, tx.rolledBack)
		}
	})

	t.Run("rolls back and returns fn error", func(t *testing.T) {
		tx := &fakeTx{}
		boom := errors.New("boom")
		err := WithTransaction(ctx, fakeBeginner{tx: tx}, func(pgx.Tx) error { return boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if tx.committed || !tx.rolledBack {
			t.Errorf("committed=%v rolledBack=%v, want rollback only", tx.committed, tx.rolledBack)
		}
	})

	t.Run("wraps begin failure", func(t *testing.T) {
		refused := errors.New("refused")
		err := WithTransaction(ctx, fakeBeginner{err: refused}, func(pgx.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		if !errors.Is(err, refused) {
			t.Fatalf("expected refused, got %v", err)
		}
	})

	t.Run("wraps commit failure", func(t *testing.T) {
		lost := errors.New("connection lost")
		err := WithTransaction(ctx, fakeBeginner{tx: &fakeTx{commitErr: lost}}, func(pgx.Tx) error { return nil })
		if !errors.Is(err, lost) {
			t.Fatalf("expected commit error, got %v", err)
		}
	})
}
