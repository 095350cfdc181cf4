package repository

import (
	"database/sql"
	"fmt"

	"okbike/internal/db"
)

// CatalogRepository backs the master-record screens: brands, categories,
// models, vehicles, tariff packages, stores and coupons.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(database *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: database}
}

func (r *CatalogRepository) count(table string) (int64, error) {
	var total int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

func (r *CatalogRepository) ListBrands(page, size int) ([]db.Brand, int64, error) {
	total, err := r.count("brands")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.Query(
		`SELECT id, name, active FROM brands ORDER BY name LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing brands: %w", err)
	}
	defer rows.Close()

	brands := []db.Brand{}
	for rows.Next() {
		var b db.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Active); err != nil {
			return nil, 0, fmt.Errorf("error scanning brand: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, total, rows.Err()
}

func (r *CatalogRepository) CreateBrand(name string) (int, error) {
	var id int
	err := r.DB.QueryRow(
		`INSERT INTO brands (name, active) VALUES ($1, TRUE) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating brand: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateBrand(id int, name string) error {
	_, err := r.DB.Exec(`UPDATE brands SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error updating brand %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ToggleBrand(id int) error {
	_, err := r.DB.Exec(`UPDATE brands SET active = NOT active WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error toggling brand %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ListCategories(page, size int) ([]db.Category, int64, error) {
	total, err := r.count("categories")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.Query(
		`SELECT id, name, active FROM categories ORDER BY name LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := []db.Category{}
	for rows.Next() {
		var c db.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Active); err != nil {
			return nil, 0, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

func (r *CatalogRepository) CreateCategory(name string) (int, error) {
	var id int
	err := r.DB.QueryRow(
		`INSERT INTO categories (name, active) VALUES ($1, TRUE) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating category: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateCategory(id int, name string) error {
	_, err := r.DB.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error updating category %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ToggleCategory(id int) error {
	_, err := r.DB.Exec(`UPDATE categories SET active = NOT active WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error toggling category %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ListModels(page, size int) ([]db.VehicleModel, int64, error) {
	total, err := r.count("models")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.Query(
		`SELECT id, brand_id, name, active FROM models ORDER BY name LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing models: %w", err)
	}
	defer rows.Close()

	models := []db.VehicleModel{}
	for rows.Next() {
		var m db.VehicleModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.Active); err != nil {
			return nil, 0, fmt.Errorf("error scanning model: %w", err)
		}
		models = append(models, m)
	}
	return models, total, rows.Err()
}

func (r *CatalogRepository) ListModelsByBrand(brandID int) ([]db.VehicleModel, error) {
	rows, err := r.DB.Query(
		`SELECT id, brand_id, name, active FROM models WHERE brand_id = $1 ORDER BY name`,
		brandID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing models for brand %d: %w", brandID, err)
	}
	defer rows.Close()

	models := []db.VehicleModel{}
	for rows.Next() {
		var m db.VehicleModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.Active); err != nil {
			return nil, fmt.Errorf("error scanning model: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *CatalogRepository) CreateModel(brandID int, name string) (int, error) {
	var id int
	err := r.DB.QueryRow(
		`INSERT INTO models (brand_id, name, active) VALUES ($1, $2, TRUE) RETURNING id`,
		brandID, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating model: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) ListVehicles(page, size int) ([]db.Vehicle, int64, error) {
	total, err := r.count("vehicles")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.Query(`
		SELECT id, model_id, model, registration_number, image, status, store_id
		FROM vehicles ORDER BY id DESC LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []db.Vehicle{}
	for rows.Next() {
		var v db.Vehicle
		err := rows.Scan(&v.ID, &v.ModelID, &v.Model, &v.RegistrationNumber, &v.Image, &v.Status, &v.StoreID)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, total, rows.Err()
}

func (r *CatalogRepository) UpdateVehicleStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE vehicles SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating vehicle %d status: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ListPackages(page, size int) ([]db.Package, int64, error) {
	total, err := r.count("packages")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.Query(`
		SELECT id, category_id, name, price, deposit, hours, days, active
		FROM packages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		size, page*size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing packages: %w", err)
	}
	defer rows.Close()

	packages := []db.Package{}
	for rows.Next() {
		var p db.Package
		err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Deposit, &p.Hours, &p.Days, &p.Active)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, total, rows.Err()
}

func (r *CatalogRepository) CreatePackage(p *db.Package) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		INSERT INTO packages (category_id, name, price, deposit, hours, days, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE) RETURNING id`,
		p.CategoryID, p.Name, p.Price, p.Deposit, p.Hours, p.Days,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating package: %w", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdatePackage(id int, p *db.Package) error {
	_, err := r.DB.Exec(`
		UPDATE packages
		SET category_id = $1, name = $2, price = $3, deposit = $4, hours = $5, days = $6
		WHERE id = $7`,
		p.CategoryID, p.Name, p.Price, p.Deposit, p.Hours, p.Days, id,
	)
	if err != nil {
		return fmt.Errorf("error updating package %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) TogglePackage(id int) error {
	_, err := r.DB.Exec(`UPDATE packages SET active = NOT active WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error toggling package %d: %w", id, err)
	}
	return nil
}

func (r *CatalogRepository) ListStores() ([]db.Store, error) {
	rows, err := r.DB.Query(`SELECT id, name, address, phone FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing stores: %w", err)
	}
	defer rows.Close()

	stores := []db.Store{}
	for rows.Next() {
		var s db.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone); err != nil {
			return nil, fmt.Errorf("error scanning store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *CatalogRepository) ListCoupons() ([]db.Coupon, error) {
	rows, err := r.DB.Query(`SELECT id, code, discount, active FROM coupons ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("error listing coupons: %w", err)
	}
	defer rows.Close()

	coupons := []db.Coupon{}
	for rows.Next() {
		var c db.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Discount, &c.Active); err != nil {
			return nil, fmt.Errorf("error scanning coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}
