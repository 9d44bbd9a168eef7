package record

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/orbit-lab/newtonian/internal/body"
)

// Parquet appends one row group of body samples per Add call to a Parquet
// file. It copies everything it persists, so the caller may keep mutating
// the passed bodies after Add returns.
type Parquet struct {
	f *os.File
	w *parquet.GenericWriter[Row]
}

func NewParquet(path string) (*Parquet, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &Parquet{f: f, w: parquet.NewGenericWriter[Row](f)}, nil
}

func (p *Parquet) Add(time uint64, bodies []body.Body) error {
	if _, err := p.w.Write(rowsFrom(time, bodies)); err != nil {
		return fmt.Errorf("write snapshot at step %d: %w", time, err)
	}
	return nil
}

// Close flushes buffered rows and the file footer. The file is unreadable
// until Close succeeds.
func (p *Parquet) Close() error {
	if err := p.w.Close(); err != nil {
		p.f.Close()
		return fmt.Errorf("finalize parquet: %w", err)
	}
	return p.f.Close()
}

// ReadParquet reads every row of a recorded file in write order.
func ReadParquet(path string) ([]Row, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}
