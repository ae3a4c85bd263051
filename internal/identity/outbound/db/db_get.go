package db

import (
	"context"

	"github.com/rkarmani/memberd/internal/identity/entity"
)

func (s *DB) GetMemberByMobile(ctx context.Context, mobile string) (m *entity.Member, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberByMobile")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE mobile = $1`, mobile)

	m, err = scanMember(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return m, nil
}

func (s *DB) GetMemberByID(ctx context.Context, id int64) (m *entity.Member, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)

	m, err = scanMember(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return m, nil
}
