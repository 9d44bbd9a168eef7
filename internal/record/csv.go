package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/orbit-lab/newtonian/internal/body"
)

var csvHeader = []string{"time", "name", "mass", "pos_x", "pos_y", "pos_z"}

// CSV is the plain-text recorder, handy for eyeballing small runs. Same
// columns and row discipline as the Parquet recorder.
type CSV struct {
	f *os.File
	w *csv.Writer
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	return &CSV{f: f, w: w}, nil
}

func (c *CSV) Add(time uint64, bodies []body.Body) error {
	for _, r := range rowsFrom(time, bodies) {
		rec := []string{
			strconv.FormatUint(r.Time, 10),
			r.Name,
			formatFloat(r.Mass),
			formatFloat(r.PosX),
			formatFloat(r.PosY),
			formatFloat(r.PosZ),
		}
		if err := c.w.Write(rec); err != nil {
			return fmt.Errorf("write snapshot at step %d: %w", time, err)
		}
	}
	return nil
}

func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}

// formatFloat keeps full float64 precision so values survive a round trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadCSV reads every row of a recorded CSV file in write order.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header", path)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("%s: malformed row %v", path, rec)
		}
		t, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad time %q: %w", path, rec[0], err)
		}
		vals := make([]float64, 4)
		for i, s := range rec[2:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad value %q: %w", path, s, err)
			}
			vals[i] = v
		}
		rows = append(rows, Row{
			Time: t,
			Name: rec[1],
			Mass: vals[0],
			PosX: vals[1],
			PosY: vals[2],
			PosZ: vals[3],
		})
	}
	return rows, nil
}
