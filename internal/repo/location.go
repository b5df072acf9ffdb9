package repo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LocationRepo defines read access to Locations.
// Listings are ordered by type (communes first), then by name.
type LocationRepo interface {
	// GetByID returns domain.ErrNotFound if no location has that id.
	GetByID(ctx context.Context, id string) (domain.Location, error)

	// List returns every location matching f.
	List(ctx context.Context, f domain.LocationFilter) ([]domain.Location, error)

	// ListPaged returns one page of locations matching f and the total count.
	ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error)
}

// ---- static ----------------------------------------------------------------

type staticLocationRepo struct {
	locations []domain.Location
	byID      map[string]domain.Location
}

// NewStaticLocationRepo serves locations from an in-memory catalog.
func NewStaticLocationRepo(c *Catalog) LocationRepo {
	sorted := slices.Clone(c.Locations)
	slices.SortStableFunc(sorted, compareLocations)

	byID := make(map[string]domain.Location, len(sorted))
	for _, l := range sorted {
		byID[l.ID] = l
	}
	return &staticLocationRepo{locations: sorted, byID: byID}
}

func compareLocations(a, b domain.Location) int {
	return cmp.Or(
		cmp.Compare(a.Type, b.Type),
		strings.Compare(a.Name, b.Name),
	)
}

func (r *staticLocationRepo) GetByID(_ context.Context, id string) (domain.Location, error) {
	l, ok := r.byID[id]
	if !ok {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", domain.ErrNotFound)
	}
	return l, nil
}

func (r *staticLocationRepo) List(_ context.Context, f domain.LocationFilter) ([]domain.Location, error) {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []domain.Location
	for _, l := range r.locations {
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if f.ParentID != "" && l.ParentID != f.ParentID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(l.Name), query) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *staticLocationRepo) ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error) {
	all, err := r.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	start, end := p.Bounds(len(all))
	return all[start:end], int64(len(all)), nil
}

// ---- postgres --------------------------------------------------------------

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

const locationColumns = `id, name, type, parent_id, lat, lng`

// locationWhere is shared by List and ListPaged. Empty filter values match
// every row. COLLATE "C" keeps ordering byte-wise, identical to the static repo.
const locationWhere = `
		WHERE (@type = '' OR type = @type)
		  AND (@parent = '' OR parent_id = @parent)
		  AND (@query = '' OR strpos(lower(name), lower(@query)) > 0)`

func locationArgs(f domain.LocationFilter) pgx.NamedArgs {
	return pgx.NamedArgs{
		"type":   string(f.Type),
		"parent": f.ParentID,
		"query":  strings.TrimSpace(f.Query),
	}
}

// GetByID retrieves a location by primary key.
func (r *pgLocationRepo) GetByID(ctx context.Context, id string) (domain.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locations WHERE id = @id`

	l, err := scanLocation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Location{}, fmt.Errorf("repo.LocationRepo.GetByID: %w", err)
	}
	return l, nil
}

// List returns all matching locations.
func (r *pgLocationRepo) List(ctx context.Context, f domain.LocationFilter) ([]domain.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locations` + locationWhere + `
		ORDER BY type, name COLLATE "C"`

	rows, err := r.db.Query(ctx, q, locationArgs(f))
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.List: %w", err)
	}
	locations, err := collectLocations(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.List: %w", err)
	}
	return locations, nil
}

// ListPaged returns one page of matching locations plus the total match count.
func (r *pgLocationRepo) ListPaged(ctx context.Context, f domain.LocationFilter, p domain.PaginationParams) ([]domain.Location, int64, error) {
	const countQ = `SELECT count(*) FROM locations` + locationWhere
	const pageQ = `SELECT ` + locationColumns + ` FROM locations` + locationWhere + `
		ORDER BY type, name COLLATE "C"
		LIMIT @limit OFFSET @offset`

	args := locationArgs(f)

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: count: %w", err)
	}

	args["limit"] = p.Limit
	args["offset"] = p.Offset()
	rows, err := r.db.Query(ctx, pageQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: %w", err)
	}
	locations, err := collectLocations(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.LocationRepo.ListPaged: %w", err)
	}
	return locations, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func collectLocations(rows pgx.Rows) ([]domain.Location, error) {
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// scanLocation maps a single row into a domain.Location, handling the
// nullable parent_id.
func scanLocation(s scanner) (domain.Location, error) {
	var (
		l      domain.Location
		typ    string
		parent pgtype.Text
	)
	err := s.Scan(&l.ID, &l.Name, &typ, &parent, &l.Lat, &l.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}
	l.Type = domain.LocationType(typ)
	if parent.Valid {
		l.ParentID = parent.String
	}
	return l, nil
}
