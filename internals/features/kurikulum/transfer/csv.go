// file: internals/features/kurikulum/transfer/csv.go
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const IDColumn = "id"

// Row: satu baris data CSV (Line = nomor baris di file, header = 1).
type Row struct {
	Line   int
	Values map[string]string
}

func (r Row) Has(col string) bool {
	_, ok := r.Values[col]
	return ok
}

func (r Row) Get(col string) string { return strings.TrimSpace(r.Values[col]) }

var ErrEmptyCSV = errors.New("file CSV kosong atau tanpa header")

// ReadCSV membaca CSV dengan header. Kolom header di-lowercase; baris kosong dilewati.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("baca header: %w", err)
	}
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("baca csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("baris %d: jumlah kolom (%d) melebihi header (%d)", line, len(rec), len(header))
		}
		vals := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(rec) {
				vals[h] = rec[i]
			} else {
				vals[h] = ""
			}
		}
		rows = append(rows, Row{Line: line, Values: vals})
	}
	return rows, nil
}

// WriteCSV: header + records, flush di akhir.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
