// Package repo contains all reference-data access for the Abidjan Route API.
// Each resource has an interface with two implementations: an in-memory one
// backed by the embedded YAML catalog, and a read-only Postgres one.
// No business logic lives here, only lookups and type mapping.
package repo

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/geo"
)

//go:embed data/abidjan.yaml
var defaultCatalogYAML []byte

// Catalog is the complete set of reference data the service reads from.
// It is immutable once loaded and safe for concurrent readers.
type Catalog struct {
	Locations []domain.Location
	POIs      []domain.POI
}

// catalogFile mirrors the YAML layout of a catalog document.
type catalogFile struct {
	Locations []struct {
		ID     string  `yaml:"id"`
		Name   string  `yaml:"name"`
		Type   string  `yaml:"type"`
		Parent string  `yaml:"parent"`
		Lat    float64 `yaml:"lat"`
		Lng    float64 `yaml:"lng"`
	} `yaml:"locations"`
	POIs []struct {
		ID      string   `yaml:"id"`
		Name    string   `yaml:"name"`
		Kind    string   `yaml:"kind"`
		Lat     float64  `yaml:"lat"`
		Lng     float64  `yaml:"lng"`
		Rating  *float64 `yaml:"rating"`
		Price   string   `yaml:"price"`
		Address string   `yaml:"address"`
		Phone   string   `yaml:"phone"`
	} `yaml:"pois"`
}

// DefaultCatalog parses the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogYAML)
}

// LoadCatalog parses and validates a YAML catalog document.
// Every problem found is reported, joined into a single error.
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("repo.LoadCatalog: decode: %w", err)
	}

	c := &Catalog{
		Locations: make([]domain.Location, 0, len(f.Locations)),
		POIs:      make([]domain.POI, 0, len(f.POIs)),
	}
	for _, l := range f.Locations {
		c.Locations = append(c.Locations, domain.Location{
			ID:       l.ID,
			Name:     l.Name,
			Type:     domain.LocationType(l.Type),
			ParentID: l.Parent,
			Lat:      l.Lat,
			Lng:      l.Lng,
		})
	}
	for _, p := range f.POIs {
		c.POIs = append(c.POIs, domain.POI{
			ID:         p.ID,
			Name:       p.Name,
			Kind:       domain.POIKind(p.Kind),
			Lat:        p.Lat,
			Lng:        p.Lng,
			Rating:     p.Rating,
			PriceRange: p.Price,
			Address:    p.Address,
			Phone:      p.Phone,
		})
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("repo.LoadCatalog: %w", err)
	}
	return c, nil
}

// validate checks ids are unique and present, types are known, parents
// exist, and coordinates are in range.
func (c *Catalog) validate() error {
	var errs []error

	locIDs := make(map[string]bool, len(c.Locations))
	for _, l := range c.Locations {
		switch {
		case l.ID == "":
			errs = append(errs, fmt.Errorf("location %q: id is required", l.Name))
			continue
		case locIDs[l.ID]:
			errs = append(errs, fmt.Errorf("location %q: duplicate id", l.ID))
		}
		locIDs[l.ID] = true
		if !l.Type.Valid() {
			errs = append(errs, fmt.Errorf("location %q: unknown type %q", l.ID, l.Type))
		}
		if !geo.ValidPoint(l.Point()) {
			errs = append(errs, fmt.Errorf("location %q: coordinates out of range", l.ID))
		}
	}
	for _, l := range c.Locations {
		if l.ParentID != "" && !locIDs[l.ParentID] {
			errs = append(errs, fmt.Errorf("location %q: unknown parent %q", l.ID, l.ParentID))
		}
	}

	poiIDs := make(map[string]bool, len(c.POIs))
	for _, p := range c.POIs {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("poi %q: id is required", p.Name))
			continue
		case poiIDs[p.ID]:
			errs = append(errs, fmt.Errorf("poi %q: duplicate id", p.ID))
		}
		poiIDs[p.ID] = true
		if !p.Kind.Valid() {
			errs = append(errs, fmt.Errorf("poi %q: unknown kind %q", p.ID, p.Kind))
		}
		if !geo.ValidPoint(p.Point()) {
			errs = append(errs, fmt.Errorf("poi %q: coordinates out of range", p.ID))
		}
		if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
			errs = append(errs, fmt.Errorf("poi %q: rating must be between 0 and 5", p.ID))
		}
	}

	return errors.Join(errs...)
}
