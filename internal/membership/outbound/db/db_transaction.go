package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/rkarmani/memberd/internal/membership/entity"
)

// CreateEnrollment creates the member row when the mobile number is new and
// a pending membership for it, atomically. The unique constraint on
// memberships.member_id turns a double enrollment into a conflict.
func (s *DB) CreateEnrollment(ctx context.Context, in entity.NewEnrollment) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEnrollment")
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

	if _, err = tx.Exec(ctx, `
		INSERT INTO members (id, mobile, name, profile_complete)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (mobile) DO NOTHING`,
		in.MemberID, in.MemberMobile, in.MemberName,
	); err != nil {
		err = s.mapError(err)
		return err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO memberships (id, member_id, membership_number, status, joined_date, valid_till, terms_accepted)
		VALUES ($1, $2, $3, $4, $5, NULL, FALSE)`,
		in.MembershipID, in.MemberID, in.MembershipNumber, entity.StatusPending, in.JoinedDate,
	); err != nil {
		err = s.mapError(err)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
