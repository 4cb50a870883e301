// file: internals/features/kurikulum/transfer/transfer.go
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"kurikulum_backend/internals/features/kurikulum/service"
	helper "kurikulum_backend/internals/helpers"

	"gorm.io/gorm"
)

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Report: hasil import. Ada Errors → seluruh import di-rollback.
type Report struct {
	Total   int        `json:"total"`
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	DryRun  bool       `json:"dry_run"`
	Errors  []RowError `json:"errors"`
}

func (r Report) Failed() bool { return len(r.Errors) > 0 }

// Resource: cara satu entity dibaca/ditulis sebagai CSV.
type Resource[M any, R any] struct {
	Name     string
	PK       string
	Header   []string
	Preloads []string
	Encode   func(m *M) []string
	Decode   func(r Row) (R, error)
	Save     func(ctx context.Context, tx *gorm.DB, m *M, req R, isNew bool) error
}

var errRollback = errors.New("rollback")

// Export menulis semua baris (urut PK) ke w.
func (res Resource[M, R]) Export(ctx context.Context, db *gorm.DB, w io.Writer) (int, error) {
	rows, err := service.FindAll[M](ctx, db, res.PK, res.Preloads...)
	if err != nil {
		return 0, err
	}
	records := make([][]string, 0, len(rows))
	for i := range rows {
		records = append(records, res.Encode(&rows[i]))
	}
	if err := WriteCSV(w, res.Header, records); err != nil {
		return 0, fmt.Errorf("tulis csv %s: %w", res.Name, err)
	}
	return len(rows), nil
}

// Import: baris dengan id yang sudah ada → update, selain itu → create.
// Semua baris dalam satu transaksi; error validasi di baris mana pun atau dryRun → rollback.
// Error non-validasi (DB) langsung dikembalikan.
func (res Resource[M, R]) Import(ctx context.Context, db *gorm.DB, rows []Row, dryRun bool) (Report, error) {
	report := Report{Total: len(rows), DryRun: dryRun, Errors: []RowError{}}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			created, err := res.importRow(ctx, tx, row)
			if err != nil {
				var fe helper.FieldErrors
				var de decodeError
				if errors.As(err, &fe) || errors.As(err, &de) {
					report.Errors = append(report.Errors, RowError{Row: row.Line, Message: err.Error()})
					continue
				}
				return fmt.Errorf("baris %d: %w", row.Line, err)
			}
			if created {
				report.Created++
			} else {
				report.Updated++
			}
		}
		if report.Failed() || dryRun {
			return errRollback
		}
		return nil
	})
	if err != nil && !errors.Is(err, errRollback) {
		return report, err
	}
	return report, nil
}

func (res Resource[M, R]) importRow(ctx context.Context, tx *gorm.DB, row Row) (bool, error) {
	id, err := rowID(row)
	if err != nil {
		return false, decodeError{err}
	}
	req, err := res.Decode(row)
	if err != nil {
		return false, decodeError{err}
	}

	if id != nil {
		existing, err := service.GetByID[M](ctx, tx, res.PK, *id)
		switch {
		case err == nil:
			return false, res.Save(ctx, tx, existing, req, false)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return false, err
		}
	}
	return true, res.Save(ctx, tx, new(M), req, true)
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return e.err.Error() }
func (e decodeError) Unwrap() error { return e.err }
