package repo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// POIRepo defines read access to points of interest.
// Listings are ordered by kind, then id.
type POIRepo interface {
	// GetByID returns domain.ErrNotFound if no POI has that id.
	GetByID(ctx context.Context, id string) (domain.POI, error)

	// List returns every POI of the given kind, or all POIs when kind is empty.
	List(ctx context.Context, kind domain.POIKind) ([]domain.POI, error)
}

// ---- static ----------------------------------------------------------------

type staticPOIRepo struct {
	pois []domain.POI
	byID map[string]domain.POI
}

// NewStaticPOIRepo serves POIs from an in-memory catalog.
func NewStaticPOIRepo(c *Catalog) POIRepo {
	sorted := slices.Clone(c.POIs)
	slices.SortStableFunc(sorted, func(a, b domain.POI) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.ID, b.ID))
	})

	byID := make(map[string]domain.POI, len(sorted))
	for _, p := range sorted {
		byID[p.ID] = p
	}
	return &staticPOIRepo{pois: sorted, byID: byID}
}

func (r *staticPOIRepo) GetByID(_ context.Context, id string) (domain.POI, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.POI{}, fmt.Errorf("repo.POIRepo.GetByID: %w", domain.ErrNotFound)
	}
	return p, nil
}

func (r *staticPOIRepo) List(_ context.Context, kind domain.POIKind) ([]domain.POI, error) {
	var out []domain.POI
	for _, p := range r.pois {
		if kind == "" || p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

// ---- postgres --------------------------------------------------------------

// pgPOIRepo is the Postgres implementation of POIRepo.
type pgPOIRepo struct {
	db db
}

// NewPOIRepo constructs a POIRepo backed by the provided db connection.
func NewPOIRepo(db db) POIRepo {
	return &pgPOIRepo{db: db}
}

const poiColumns = `id, name, kind, lat, lng, rating, price_range, address, phone`

// GetByID retrieves a POI by primary key.
func (r *pgPOIRepo) GetByID(ctx context.Context, id string) (domain.POI, error) {
	const q = `SELECT ` + poiColumns + ` FROM pois WHERE id = @id`

	p, err := scanPOI(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.POI{}, fmt.Errorf("repo.POIRepo.GetByID: %w", err)
	}
	return p, nil
}

// List returns POIs of one kind, or all of them when kind is empty.
func (r *pgPOIRepo) List(ctx context.Context, kind domain.POIKind) ([]domain.POI, error) {
	const q = `SELECT ` + poiColumns + ` FROM pois
		WHERE (@kind = '' OR kind = @kind)
		ORDER BY kind, id COLLATE "C"`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"kind": string(kind)})
	if err != nil {
		return nil, fmt.Errorf("repo.POIRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.POI
	for rows.Next() {
		p, err := scanPOI(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.POIRepo.List: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.POIRepo.List: rows: %w", err)
	}
	return out, nil
}

// scanPOI maps a single row into a domain.POI, handling the nullable rating.
func scanPOI(s scanner) (domain.POI, error) {
	var (
		p      domain.POI
		kind   string
		rating pgtype.Float8
	)
	err := s.Scan(&p.ID, &p.Name, &kind, &p.Lat, &p.Lng, &rating, &p.PriceRange, &p.Address, &p.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.POI{}, domain.ErrNotFound
		}
		return domain.POI{}, err
	}
	p.Kind = domain.POIKind(kind)
	if rating.Valid {
		r := rating.Float64
		p.Rating = &r
	}
	return p, nil
}
