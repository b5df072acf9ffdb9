package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/handler"
)

func newPOIServer(svc handler.POIServicer) *handler.Server {
	return handler.NewServer(nil, nil, svc, nil, nil)
}

func hotelIvoire() domain.POI {
	rating := 4.5
	return domain.POI{
		ID: "h1", Name: "Hôtel Ivoire", Kind: domain.POIHotel, Lat: 5.3167, Lng: -4.0,
		Rating: &rating, PriceRange: "25000-50000 FCFA", Address: "Boulevard Hassan II, Cocody",
	}
}

func TestListPOIs_ByKind(t *testing.T) {
	var got domain.POIQuery
	svc := &mockPOIServicer{
		nearby: func(_ context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error) {
			got = q
			return []domain.NearbyPOI{{POI: hotelIvoire()}}, nil
		},
	}

	rec := do(newPOIServer(svc), http.MethodGet, "/pois?type=hotel&limit=3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.POIQuery{Kind: domain.POIHotel, Limit: 3}, got)

	var body []handler.POI
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "hotel", body[0].Type)
	assert.Nil(t, body[0].DistanceKm, "no distance without a query point")
	require.NotNil(t, body[0].Rating)
	assert.Equal(t, 4.5, *body[0].Rating)
}

func TestListPOIs_Nearby(t *testing.T) {
	var got domain.POIQuery
	svc := &mockPOIServicer{
		nearby: func(_ context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error) {
			got = q
			return []domain.NearbyPOI{{POI: hotelIvoire(), DistanceKm: 0.4}}, nil
		},
	}

	rec := do(newPOIServer(svc), http.MethodGet, "/pois?lat=5.32&lng=-4.0", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Near)
	assert.Equal(t, domain.Point{Lat: 5.32, Lng: -4.0}, *got.Near)
	assert.Equal(t, 5.0, got.RadiusKm, "default radius")

	var body []handler.POI
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body[0].DistanceKm)
	assert.Equal(t, 0.4, *body[0].DistanceKm)
}

func TestListPOIs_ExplicitRadius(t *testing.T) {
	var got domain.POIQuery
	svc := &mockPOIServicer{
		nearby: func(_ context.Context, q domain.POIQuery) ([]domain.NearbyPOI, error) {
			got = q
			return nil, nil
		},
	}

	rec := do(newPOIServer(svc), http.MethodGet, "/pois?lat=5.32&lng=-4.0&radius_km=1.5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.5, got.RadiusKm)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPOIs_LatWithoutLng(t *testing.T) {
	rec := do(newPOIServer(&mockPOIServicer{}), http.MethodGet, "/pois?lat=5.32", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListPOIs_MalformedLat(t *testing.T) {
	rec := do(newPOIServer(&mockPOIServicer{}), http.MethodGet, "/pois?lat=north&lng=-4", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListPOIs_ServiceValidation(t *testing.T) {
	svc := &mockPOIServicer{
		nearby: func(_ context.Context, _ domain.POIQuery) ([]domain.NearbyPOI, error) {
			return nil, wrapValidation("service.POIService.Nearby", "type must be hotel, restaurant, or car_rental")
		},
	}

	rec := do(newPOIServer(svc), http.MethodGet, "/pois?type=museum", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "type must be hotel, restaurant, or car_rental", body.Error.Message)
}

func TestGetPOI(t *testing.T) {
	svc := &mockPOIServicer{
		getByID: func(_ context.Context, id string) (domain.POI, error) {
			if id != "h1" {
				return domain.POI{}, domain.ErrNotFound
			}
			return hotelIvoire(), nil
		},
	}
	srv := newPOIServer(svc)

	rec := do(srv, http.MethodGet, "/pois/h1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.POI
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Hôtel Ivoire", body.Name)

	rec = do(srv, http.MethodGet, "/pois/h9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
