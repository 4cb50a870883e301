// file: internals/features/kurikulum/dto/patch.go
package dto

import (
	"strings"

	"github.com/bytedance/sonic"
)

/* =========================================================
   PATCH FIELD: tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set / Null dipakai decoder CSV & test.
func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }

func Null[T any]() PatchField[T] { return PatchField[T]{Present: true} }

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	*pp = &v
}

// trimPatch: string kosong setelah trim dianggap null.
func trimPatch(p *PatchField[string]) {
	if !p.Present || p.Value == nil {
		return
	}
	v := strings.TrimSpace(*p.Value)
	if v == "" {
		p.Value = nil
		return
	}
	p.Value = &v
}

// idPatch: id 0 dianggap null (form admin sering kirim 0 untuk "kosong").
func idPatch(p *PatchField[uint]) {
	if p.Present && p.Value != nil && *p.Value == 0 {
		p.Value = nil
	}
}
