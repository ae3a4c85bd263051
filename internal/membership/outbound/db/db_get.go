package db

import (
	"context"

	"github.com/rkarmani/memberd/internal/membership/entity"
)

func (s *DB) GetMembershipMemberByID(ctx context.Context, id int64) (mm *entity.MembershipMember, err error) {
	ctx, span := s.startSpan(ctx, "GetMembershipMemberByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT ms.id, ms.member_id, ms.membership_number, ms.status, ms.joined_date,
		       ms.valid_till, ms.terms_accepted, ms.created_at, ms.updated_at,
		       m.name, m.email, m.mobile
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE ms.id = $1`, id)

	var out entity.MembershipMember
	err = row.Scan(
		&out.ID,
		&out.MemberID,
		&out.MembershipNumber,
		&out.Status,
		&out.JoinedDate,
		&out.ValidTill,
		&out.TermsAccepted,
		&out.CreatedAt,
		&out.UpdatedAt,
		&out.MemberName,
		&out.MemberEmail,
		&out.MemberMobile,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &out, nil
}

func (s *DB) GetMembershipByMemberID(ctx context.Context, memberID int64) (ms *entity.Membership, err error) {
	ctx, span := s.startSpan(ctx, "GetMembershipByMemberID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, member_id, membership_number, status, joined_date,
		       valid_till, terms_accepted, created_at, updated_at
		FROM memberships
		WHERE member_id = $1`, memberID)

	var out entity.Membership
	err = row.Scan(
		&out.ID,
		&out.MemberID,
		&out.MembershipNumber,
		&out.Status,
		&out.JoinedDate,
		&out.ValidTill,
		&out.TermsAccepted,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &out, nil
}

func (s *DB) GetMemberIDByMobile(ctx context.Context, mobile string) (id int64, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberIDByMobile")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx, `SELECT id FROM members WHERE mobile = $1`, mobile).Scan(&id)
	if err != nil {
		err = s.mapError(err)
		return 0, err
	}

	return id, nil
}

func (s *DB) GetMemberList(ctx context.Context) (list []entity.MemberRow, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT m.id, m.name, m.mobile, m.email, m.created_at,
		       ms.id, COALESCE(ms.membership_number, ''), COALESCE(ms.status, 0), ms.valid_till
		FROM members m
		LEFT JOIN memberships ms ON ms.member_id = m.id
		ORDER BY m.created_at DESC`)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	list = make([]entity.MemberRow, 0)
	for rows.Next() {
		var r entity.MemberRow
		if err = rows.Scan(
			&r.MemberID,
			&r.Name,
			&r.Mobile,
			&r.Email,
			&r.MemberCreatedAt,
			&r.MembershipID,
			&r.MembershipNumber,
			&r.Status,
			&r.ValidTill,
		); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (s *DB) GetDashboard(ctx context.Context, expiringDays int32) (stats *entity.DashboardStats, err error) {
	ctx, span := s.startSpan(ctx, "GetDashboard")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM members),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*) FILTER (
				WHERE status = $1
				AND valid_till IS NOT NULL
				AND valid_till <= NOW() + make_interval(days => $5)
			)
		FROM memberships`,
		entity.StatusActive, entity.StatusPending, entity.StatusInactive, entity.StatusRejected, expiringDays,
	)

	var out entity.DashboardStats
	err = row.Scan(
		&out.TotalMembers,
		&out.Active,
		&out.Pending,
		&out.Inactive,
		&out.Rejected,
		&out.ExpiringSoon,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &out, nil
}
