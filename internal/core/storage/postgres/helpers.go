package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// nullableBrand maps a missing brand to SQL NULL.
func nullableBrand(p *v1.Purchase) sql.NullString {
	if p.Brand == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p.Brand, Valid: true}
}

// scanPurchaseRow scans a database row into a Purchase.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanPurchaseRow(row scanner) (*v1.Purchase, error) {
	var (
		p     v1.Purchase
		brand sql.NullString
		unit  string
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&brand,
		&p.Store,
		&p.Count,
		&p.Amount,
		&unit,
		&p.Price,
		&p.Date.Time,
		&p.IsSale,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if brand.Valid {
		b := brand.String
		p.Brand = &b
	}
	p.Unit = v1.Unit(unit)
	p.Date = v1.NewDate(p.Date.Time)

	return &p, nil
}

func scanPurchaseRows(rows *sql.Rows) ([]*v1.Purchase, error) {
	defer rows.Close()

	purchases := make([]*v1.Purchase, 0)
	for rows.Next() {
		p, err := scanPurchaseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	return purchases, nil
}
