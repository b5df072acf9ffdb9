package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"from", "to", "criterion", "option_id", "mode",
	"price_fcfa", "duration_min", "distance_km",
	"security_rating", "comfort_rating", "score", "recommended", "stops",
}

// exportSheet names the single worksheet of an XLSX export.
const exportSheet = "Options"

// ExportRoutes handles GET /routes/export.
// It returns one row per option of the search so options can be compared
// side by side. ?format= selects json (default), csv, or xlsx.
func (s *Server) ExportRoutes(w http.ResponseWriter, r *http.Request) {
	var from, to, criterion, format *string
	if err := bindQuery(r,
		queryParam{"from", &from},
		queryParam{"to", &to},
		queryParam{"criterion", &criterion},
		queryParam{"format", &format},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	f := strings.ToLower(deref(format))
	switch f {
	case "":
		f = "json"
	case "json", "csv", "xlsx":
	default:
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json, csv, or xlsx"))
		return
	}

	fromID, toID := strings.TrimSpace(deref(from)), strings.TrimSpace(deref(to))
	rows, err := s.export.Export(r.Context(), fromID, toID, deref(criterion))
	if err != nil {
		s.writeError(w, r, err, "location not found")
		return
	}

	var (
		buf         *bytes.Buffer
		contentType string
	)
	switch f {
	case "json":
		out := make([]ExportRow, len(rows))
		for i, row := range rows {
			out[i] = exportRowToResponse(row)
		}
		writeJSON(w, http.StatusOK, out)
		return
	case "csv":
		buf, contentType = buildCSV(rows), "text/csv; charset=utf-8"
	case "xlsx":
		buf, err = buildXLSX(rows)
		if err != nil {
			s.writeError(w, r, err, "")
			return
		}
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="route-%s-%s.%s"`, fromID, toID, f))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// buildCSV encodes rows as CSV with a header row.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()
	return &buf
}

// buildXLSX encodes rows as a one-sheet workbook with a bold header row.
// Numeric columns stay numeric so spreadsheets can sort and sum them.
func buildXLSX(rows []domain.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}

	header := make([]any, len(csvHeaders))
	for i, h := range csvHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		//nolint:errcheck // styling is cosmetic.
		f.SetRowStyle(exportSheet, 1, 1, bold)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("handler.buildXLSX: %w", err)
		}
		values := []any{
			r.From, r.To, r.Criterion, r.OptionID, r.Mode,
			r.Price, r.Duration, r.Distance,
			r.SecurityRating, r.ComfortRating, r.Score, r.Recommended,
			strings.Join(r.Stops, "|"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("handler.buildXLSX: %w", err)
		}
	}
	//nolint:errcheck
	f.SetColWidth(exportSheet, "A", "M", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}
	return &buf, nil
}

// exportRowToCSVRecord encodes one row as a flat string slice.
// Stops are joined with "|" to keep each option on a single CSV line.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.From,
		r.To,
		r.Criterion,
		r.OptionID,
		r.Mode,
		strconv.Itoa(r.Price),
		strconv.Itoa(r.Duration),
		strconv.FormatFloat(r.Distance, 'f', 1, 64),
		strconv.Itoa(r.SecurityRating),
		strconv.Itoa(r.ComfortRating),
		strconv.FormatFloat(r.Score, 'f', 4, 64),
		strconv.FormatBool(r.Recommended),
		strings.Join(r.Stops, "|"),
	}
}
