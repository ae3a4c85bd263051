package db

import (
	"context"

	"github.com/rkarmani/memberd/internal/membership/entity"
)

func (s *DB) CreateMembership(ctx context.Context, in entity.NewMembership) (err error) {
	ctx, span := s.startSpan(ctx, "CreateMembership")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO memberships (id, member_id, membership_number, status, joined_date, valid_till, terms_accepted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ID, in.MemberID, in.MembershipNumber, in.Status, in.JoinedDate, in.ValidTill, in.TermsAccepted,
	)

	err = s.mapError(err)
	return err
}

// AcceptTermsMembership inserts an active membership, or re-activates an
// existing one. The stored membership number is immutable: on conflict the
// update deliberately leaves it alone, and the returned value reflects what
// the row actually holds.
func (s *DB) AcceptTermsMembership(ctx context.Context, in entity.AcceptTermsMembership) (number string, err error) {
	ctx, span := s.startSpan(ctx, "AcceptTermsMembership")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		INSERT INTO memberships (id, member_id, membership_number, status, joined_date, valid_till, terms_accepted)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (member_id) DO UPDATE
		SET status = EXCLUDED.status,
		    valid_till = EXCLUDED.valid_till,
		    terms_accepted = TRUE,
		    updated_at = NOW()
		RETURNING membership_number`,
		in.ID, in.MemberID, in.MembershipNumber, entity.StatusActive, in.JoinedDate, in.ValidTill,
	)

	if err = row.Scan(&number); err != nil {
		err = s.mapError(err)
		return "", err
	}

	return number, nil
}
