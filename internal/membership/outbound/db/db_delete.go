package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func (s *DB) DeleteMembership(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteMembership")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeleteMemberCascade(ctx context.Context, memberID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteMemberCascade")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM memberships WHERE member_id = $1`, memberID); err != nil {
		err = s.mapError(err)
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM members WHERE id = $1`, memberID)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
