package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
)

// CheckInRepo is the MySQL-backed CheckInRepository. The check_ins table
// carries a unique (user_id, check_in_day) index, so Create surfaces a
// duplicate-key error as ErrDuplicateCheckIn.
type CheckInRepo struct{ DB *sql.DB }

func NewCheckInRepo(db *sql.DB) *CheckInRepo { return &CheckInRepo{DB: db} }

// Create inserts the check-in row.
func (r *CheckInRepo) Create(ctx context.Context, ci *model.CheckIn) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO check_ins (id, user_id, gym_id, created_at, validated_at) VALUES (?,?,?,?,?)",
		ci.ID, ci.UserID, ci.GymID, ci.CreatedAt, ci.ValidatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateCheckIn
		}
		return err
	}
	return nil
}

// Save updates the mutable part of a check-in (validated_at).
func (r *CheckInRepo) Save(ctx context.Context, ci *model.CheckIn) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE check_ins SET validated_at=? WHERE id=?", ci.ValidatedAt, ci.ID)
	return err
}

// FindByID fetches a check-in by id.
func (r *CheckInRepo) FindByID(ctx context.Context, id string) (*model.CheckIn, error) {
	var ci model.CheckIn
	var validated sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,gym_id,created_at,validated_at FROM check_ins WHERE id=? LIMIT 1",
		id).Scan(&ci.ID, &ci.UserID, &ci.GymID, &ci.CreatedAt, &validated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if validated.Valid {
		t := validated.Time
		ci.ValidatedAt = &t
	}
	return &ci, nil
}

// FindByUserIDOnDate fetches the user's check-in within the calendar day
// containing date, if any.
func (r *CheckInRepo) FindByUserIDOnDate(ctx context.Context, userID string, date time.Time) (*model.CheckIn, error) {
	start, end := DayBounds(date)
	var ci model.CheckIn
	var validated sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT id,user_id,gym_id,created_at,validated_at
		 FROM check_ins
		 WHERE user_id=? AND created_at >= ? AND created_at < ?
		 LIMIT 1`,
		userID, start, end).Scan(&ci.ID, &ci.UserID, &ci.GymID, &ci.CreatedAt, &validated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if validated.Valid {
		t := validated.Time
		ci.ValidatedAt = &t
	}
	return &ci, nil
}

// FindManyByUserID returns one page of the user's check-ins in creation
// order.
func (r *CheckInRepo) FindManyByUserID(ctx context.Context, userID string, page int) ([]*model.CheckIn, error) {
	if page < 1 {
		page = 1
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,user_id,gym_id,created_at,validated_at
		 FROM check_ins
		 WHERE user_id=?
		 ORDER BY created_at ASC, id ASC
		 LIMIT ? OFFSET ?`,
		userID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.CheckIn, 0, PageSize)
	for rows.Next() {
		var ci model.CheckIn
		var validated sql.NullTime
		if err := rows.Scan(&ci.ID, &ci.UserID, &ci.GymID, &ci.CreatedAt, &validated); err != nil {
			return nil, err
		}
		if validated.Valid {
			t := validated.Time
			ci.ValidatedAt = &t
		}
		out = append(out, &ci)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByUserID returns the user's total number of check-ins.
func (r *CheckInRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM check_ins WHERE user_id=?", userID).Scan(&n)
	return n, err
}
