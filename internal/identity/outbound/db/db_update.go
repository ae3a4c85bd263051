package db

import (
	"context"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func (s *DB) UpdateMemberProfile(ctx context.Context, in entity.UpdateProfile) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateMemberProfile")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE members
		SET name = $2, email = $3, profile_complete = $4, updated_at = NOW()
		WHERE id = $1`,
		in.ID, in.Name, in.Email, in.ProfileComplete,
	)
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

func (s *DB) UpdateMemberPhoto(ctx context.Context, id int64, photoURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateMemberPhoto")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE members SET photo_url = $2, updated_at = NOW() WHERE id = $1`,
		id, photoURL,
	)
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

func (s *DB) UpdateMemberLastLogin(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateMemberLastLogin")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE members SET last_login_at = $2, updated_at = NOW() WHERE id = $1`,
		id, at,
	)

	err = s.mapError(err)
	return err
}
