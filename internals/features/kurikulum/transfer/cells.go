// file: internals/features/kurikulum/transfer/cells.go
package transfer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"kurikulum_backend/internals/features/kurikulum/dto"
)

const listSep = ";"

/* ---------- encode ---------- */

func uintCell(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func optUintCell(v *uint) string {
	if v == nil {
		return ""
	}
	return uintCell(*v)
}

func optStringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func timeCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func idsCell(ids []uint) string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, uintCell(id))
	}
	return strings.Join(parts, listSep)
}

/* ---------- decode ---------- */

func optString(r Row, col string) *string {
	if !r.Has(col) {
		return nil
	}
	v := r.Get(col)
	return &v
}

func patchString(r Row, col string) dto.PatchField[string] {
	if !r.Has(col) {
		return dto.PatchField[string]{}
	}
	if v := r.Get(col); v != "" {
		return dto.Set(v)
	}
	return dto.Null[string]()
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q bukan id yang valid", s)
	}
	return uint(n), nil
}

func patchUint(r Row, col string) (dto.PatchField[uint], error) {
	if !r.Has(col) {
		return dto.PatchField[uint]{}, nil
	}
	v := r.Get(col)
	if v == "" {
		return dto.Null[uint](), nil
	}
	n, err := parseUint(v)
	if err != nil {
		return dto.PatchField[uint]{}, fmt.Errorf("%s: %w", col, err)
	}
	return dto.Set(n), nil
}

func optInt(r Row, col string) (*int, error) {
	if !r.Has(col) || r.Get(col) == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(r.Get(col))
	if err != nil {
		return nil, fmt.Errorf("%s: %q bukan angka", col, r.Get(col))
	}
	return &n, nil
}

// optBool menerima true/false, 1/0, ya/tidak.
func optBool(r Row, col string) (*bool, error) {
	if !r.Has(col) || r.Get(col) == "" {
		return nil, nil
	}
	switch strings.ToLower(r.Get(col)) {
	case "1", "true", "t", "yes", "y", "ya":
		b := true
		return &b, nil
	case "0", "false", "f", "no", "n", "tidak":
		b := false
		return &b, nil
	}
	return nil, fmt.Errorf("%s: %q bukan boolean", col, r.Get(col))
}

// idList: "1;2;3" → []uint. Kolom ada tapi kosong → list kosong (hapus semua relasi).
func idList(r Row, col string) (*[]uint, error) {
	if !r.Has(col) {
		return nil, nil
	}
	out := []uint{}
	for _, part := range strings.Split(r.Get(col), listSep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := parseUint(part)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col, err)
		}
		out = append(out, n)
	}
	return &out, nil
}

// rowID: kolom id opsional; kosong → baris baru.
func rowID(r Row) (*uint, error) {
	if !r.Has(IDColumn) || r.Get(IDColumn) == "" {
		return nil, nil
	}
	n, err := parseUint(r.Get(IDColumn))
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	return &n, nil
}
