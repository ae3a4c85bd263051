package db

import (
	"context"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

// TransitionMembership applies status and valid_till in one update guarded
// by the old status. Zero rows means the row moved concurrently, surfaced as
// a conflict so the caller can refuse the transition.
func (s *DB) TransitionMembership(ctx context.Context, in entity.TransitionMembership) (err error) {
	ctx, span := s.startSpan(ctx, "TransitionMembership")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE memberships
		SET status = $3, valid_till = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2`,
		in.ID, in.OldStatus, in.NewStatus, in.ValidTill,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrConflict
		return err
	}

	return nil
}
