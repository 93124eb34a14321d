package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/agritrace-service/internal/model"
	"github.com/fekuna/agritrace-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// InsertProductQuery is shared with the transfer repository, which inserts split records.
const InsertProductQuery = `
        INSERT INTO products (
            id, origin_id, parent_id, name, variety, farm_location, quantity,
            quality_grade, is_organic, price, status, owner_id, farmer_id,
            blockchain_id, version, created_at, updated_at
        )
        VALUES (
            :id, :origin_id, :parent_id, :name, :variety, :farm_location, :quantity,
            :quality_grade, :is_organic, :price, :status, :owner_id, :farmer_id,
            :blockchain_id, :version, :created_at, :updated_at
        )
    `

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	_, err := r.DB.NamedExecContext(ctx, InsertProductQuery, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := []interface{}{}

	if len(f.IDs) > 0 {
		conditions = append(conditions, "id IN (?)")
		args = append(args, f.IDs)
	}
	if f.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if f.FarmerID != "" {
		conditions = append(conditions, "farmer_id = ?")
		args = append(args, f.FarmerID)
	}
	if f.OriginID != "" {
		conditions = append(conditions, "origin_id = ?")
		args = append(args, f.OriginID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "status IN (?)")
		args = append(args, statuses)
	}
	if f.ActiveOnly {
		conditions = append(conditions, "quantity > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.In("SELECT count(*) FROM products"+whereClause, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY created_at ASC, id ASC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	query, listArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), listArgs...); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}
