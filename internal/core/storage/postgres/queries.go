package postgres

// SQL queries for purchase storage, always scoped by user_id.

const purchaseColumns = `
			id, user_id, name, brand, store, count, amount, unit,
			price, purchased_on, is_sale, created_at, updated_at`

const (
	// querySavePurchase inserts a purchase.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySavePurchase = `
		INSERT INTO purchases (` + purchaseColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id, id) DO NOTHING
		RETURNING id
	`

	queryGetPurchase = `
		SELECT` + purchaseColumns + `
		FROM purchases
		WHERE user_id = $1 AND id = $2
	`

	// queryListPurchases orders newest-created first so stable sorts downstream
	// break date ties in favour of the latest entry.
	queryListPurchases = `
		SELECT` + purchaseColumns + `
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC, id ASC
	`

	queryUpdatePurchase = `
		UPDATE purchases
		SET name = $3, brand = $4, store = $5, count = $6, amount = $7, unit = $8,
		    price = $9, purchased_on = $10, is_sale = $11, updated_at = $12
		WHERE user_id = $1 AND id = $2
		RETURNING created_at
	`

	queryDeletePurchase = `
		DELETE FROM purchases
		WHERE user_id = $1 AND id = $2
	`
)
