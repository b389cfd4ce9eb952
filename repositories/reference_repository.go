package repositories

import (
	"context"
	"errors"
	"fmt"

	"learning-portal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceRepository serves the static lookup tables and the
// find-or-create institute/company rows referenced by education and
// experience entries.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListGenders(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, "SELECT id, name FROM genders ORDER BY id")
}

func (r *ReferenceRepository) ListCountries(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, "SELECT id, name FROM countries ORDER BY name")
}

func (r *ReferenceRepository) ListCurrentStatuses(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, "SELECT id, name FROM current_statuses ORDER BY id")
}

func (r *ReferenceRepository) ListDegrees(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, "SELECT id, name FROM degrees ORDER BY name")
}

func (r *ReferenceRepository) ListDesignations(ctx context.Context) ([]models.Lookup, error) {
	return r.listLookup(ctx, "SELECT id, name FROM designations ORDER BY name")
}

func (r *ReferenceRepository) listLookup(ctx context.Context, query string) ([]models.Lookup, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query lookup: %w", err)
	}
	defer rows.Close()

	items := []models.Lookup{}
	for rows.Next() {
		var item models.Lookup
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListStates returns all states, or only those of one country when
// countryID is non-zero.
func (r *ReferenceRepository) ListStates(ctx context.Context, countryID int) ([]models.State, error) {
	query := "SELECT id, country_id, name FROM states ORDER BY name"
	args := []interface{}{}
	if countryID != 0 {
		query = "SELECT id, country_id, name FROM states WHERE country_id = $1 ORDER BY name"
		args = append(args, countryID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query states: %w", err)
	}
	defer rows.Close()

	states := []models.State{}
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.ID, &s.CountryID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *ReferenceRepository) ListAppModules(ctx context.Context) ([]models.AppModule, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, icon, route, display_order FROM app_modules ORDER BY display_order")
	if err != nil {
		return nil, fmt.Errorf("query app modules: %w", err)
	}
	defer rows.Close()

	modules := []models.AppModule{}
	for rows.Next() {
		var m models.AppModule
		if err := rows.Scan(&m.ID, &m.Name, &m.Icon, &m.Route, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan app module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// FindOrCreateInstitute resolves an institute by (name, location), creating
// the row when it does not exist yet.
func (r *ReferenceRepository) FindOrCreateInstitute(ctx context.Context, name, location string) (int, error) {
	return r.findOrCreate(ctx, "institutes", name, location)
}

func (r *ReferenceRepository) FindOrCreateCompany(ctx context.Context, name, location string) (int, error) {
	return r.findOrCreate(ctx, "companies", name, location)
}

func (r *ReferenceRepository) findOrCreate(ctx context.Context, table, name, location string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE name = $1 AND location = $2", table),
		name, location,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("find %s: %w", table, err)
	}

	err = r.db.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (name, location) VALUES ($1, $2) RETURNING id", table),
		name, location,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}
