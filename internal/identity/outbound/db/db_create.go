package db

import (
	"context"

	"github.com/rkarmani/memberd/internal/identity/entity"
)

func (s *DB) CreateMember(ctx context.Context, in entity.NewMember) (err error) {
	ctx, span := s.startSpan(ctx, "CreateMember")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO members (id, mobile, email, name, profile_complete)
		VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.Mobile, in.Email, in.Name, in.ProfileComplete,
	)

	err = s.mapError(err)
	return err
}
