package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Stakeholder) error {
	query := `
        INSERT INTO stakeholders (
            id, name, phone, location, role, is_verified, verified_at,
            credential_hash, created_at, updated_at
        )
        VALUES (
            :id, :name, :phone, :location, :role, :is_verified, :verified_at,
            :credential_hash, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Stakeholder, error) {
	var s model.Stakeholder
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM stakeholders WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Stakeholder, error) {
	if len(ids) == 0 {
		return []model.Stakeholder{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM stakeholders WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var items []model.Stakeholder
	err = r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...)
	return items, err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.StakeholderFilters) ([]model.Stakeholder, int, error) {
	var items []model.Stakeholder
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Role != "" {
		conditions = append(conditions, "role = :role")
		args["role"] = string(f.Role)
	}
	if f.VerifiedOnly {
		conditions = append(conditions, "is_verified = TRUE")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countStmt, err := r.DB.PrepareNamedContext(ctx, "SELECT count(*) FROM stakeholders"+whereClause)
	if err != nil {
		return nil, 0, err
	}
	defer countStmt.Close()
	if err := countStmt.GetContext(ctx, &count, args); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM stakeholders" + whereClause + " ORDER BY created_at ASC, id ASC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) MarkVerified(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE stakeholders
        SET is_verified = TRUE, verified_at = $2, updated_at = $2
        WHERE id = $1 AND is_verified = FALSE
    `, id, at)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
