// Package record persists timestamped body snapshots as columnar rows.
//
// Both recorders share the same layout: one row per body per recorded step,
// columns time/name/mass/pos_x/pos_y/pos_z, none nullable. Rows for the same
// time value are contiguous and keep the per-body order of the input
// collection, so per-body series can be reconstructed by name or by position
// in the group. Velocity and acceleration are intentionally not persisted.
package record

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/orbit-lab/newtonian/internal/body"
)

// Row is one recorded body sample.
type Row struct {
	Time uint64  `parquet:"time"`
	Name string  `parquet:"name"`
	Mass float64 `parquet:"mass"`
	PosX float64 `parquet:"pos_x"`
	PosY float64 `parquet:"pos_y"`
	PosZ float64 `parquet:"pos_z"`
}

func rowsFrom(time uint64, bodies []body.Body) []Row {
	rows := make([]Row, len(bodies))
	for i, b := range bodies {
		rows[i] = Row{
			Time: time,
			Name: b.Name,
			Mass: b.Mass,
			PosX: b.Position.X,
			PosY: b.Position.Y,
			PosZ: b.Position.Z,
		}
	}
	return rows
}

// Recorder is the common shape of the concrete recorders in this package.
type Recorder interface {
	Add(time uint64, bodies []body.Body) error
	Close() error
}

// Open creates a recorder for path, chosen by file extension: .csv gets the
// plain-text recorder, everything else Parquet.
func Open(path string) (Recorder, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSV(path)
	}
	return NewParquet(path)
}

// ReadFile reads every row back from a file written by a recorder from this
// package, dispatching on extension like Open.
func ReadFile(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(path)
	}
	return ReadParquet(path)
}

// Names returns the distinct body names in first-appearance order.
func Names(rows []Row) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range rows {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}
	return names
}

// Series extracts one body's coordinate series in row order. axis is one of
// "x", "y", "z".
func Series(rows []Row, name, axis string) ([]float64, error) {
	var out []float64
	for _, r := range rows {
		if r.Name != name {
			continue
		}
		switch axis {
		case "x":
			out = append(out, r.PosX)
		case "y":
			out = append(out, r.PosY)
		case "z":
			out = append(out, r.PosZ)
		default:
			return nil, fmt.Errorf("unknown axis %q (want x, y or z)", axis)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no rows for body %q", name)
	}
	return out, nil
}
