package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/quantity/internal/geometry"
	"github.com/banshee-data/quantity/internal/units"
)

// readPoints parses x,y rows whose coordinates are expressed in u. A first
// row that does not parse as numbers is treated as a header. Blank lines and
// lines starting with '#' are skipped.
func readPoints(r io.Reader, u units.Unit[units.DistanceDim]) ([]geometry.Point2m, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []geometry.Point2m
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected x,y, got %d fields", row, len(rec))
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: invalid coordinates %q,%q", row, rec[0], rec[1])
		}
		points = append(points, geometry.NewPoint2(x, y, u))
	}
	return points, nil
}
