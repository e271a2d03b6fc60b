package product

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository reads the catalog from a `product` table. The service
// never writes catalog rows; seeding is an operational concern.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listQuery = `
        SELECT product_id, product_name, price, old_price, category, material, plating, images, description, care_instructions, in_stock
        FROM product
        ORDER BY product_id
    `
	getByIDQuery = `
        SELECT product_id, product_name, price, old_price, category, material, plating, images, description, care_instructions, in_stock
        FROM product
        WHERE product_id = $1
    `
	listByIDsQuery = `
        SELECT product_id, product_name, price, old_price, category, material, plating, images, description, care_instructions, in_stock
        FROM product
        WHERE product_id = ANY($1::int[])
        ORDER BY product_id
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProduct(s interface{ Scan(...any) error }) (Product, error) {
	var p Product
	var images pq.StringArray
	if err := s.Scan(&p.ID, &p.Name, &p.Price, &p.OldPrice, &p.Category, &p.Material, &p.Plating, &images, &p.Description, &p.CareInstructions, &p.InStock); err != nil {
		return Product{}, err
	}
	p.Images = []string(images)
	return p, nil
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) []Product {
	if len(ids) == 0 {
		return []Product{}
	}

	rows, err := r.db.Query(listByIDsQuery, pq.Array(ids))
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
