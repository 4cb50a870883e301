// file: internals/features/kurikulum/service/query_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"

	"gorm.io/gorm"
)

/* =========================================================
   Choices (non-paginated): terbaru dulu
   ========================================================= */

func ListKurikulumChoices(ctx context.Context, db *gorm.DB) ([]model.KurikulumModel, error) {
	var rows []model.KurikulumModel
	if err := db.WithContext(ctx).
		Order("kurikulum_created_at DESC").Order("kurikulum_id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list kurikulum choices: %w", err)
	}
	return rows, nil
}

func ListKelasChoices(ctx context.Context, db *gorm.DB) ([]model.KelasModel, error) {
	var rows []model.KelasModel
	if err := db.WithContext(ctx).
		Order("kelas_created_at DESC").Order("kelas_id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list kelas choices: %w", err)
	}
	return rows, nil
}

func ListFaseChoices(ctx context.Context, db *gorm.DB) ([]model.FaseModel, error) {
	var rows []model.FaseModel
	if err := db.WithContext(ctx).
		Order("fase_created_at DESC").Order("fase_id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fase choices: %w", err)
	}
	return rows, nil
}

/* =========================================================
   Admin: get by id & list dengan search/order/paging
   ========================================================= */

// GetByID memuat satu record + preload. Tidak ada → gorm.ErrRecordNotFound.
func GetByID[M any](ctx context.Context, db *gorm.DB, pk string, id uint, preloads ...string) (*M, error) {
	m := new(M)
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Where(pk+" = ?", id).Take(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

type ListQuery struct {
	PK         string
	Search     string
	SearchCols []string // kolom/ekspresi SQL; dibungkus LOWER(COALESCE(..,''))
	Order      string
	Limit      int
	Offset     int
	Preloads   []string
	Scopes     []func(*gorm.DB) *gorm.DB
}

// List: search case-insensitive di SearchCols, angka juga dicocokkan ke PK.
func List[M any](ctx context.Context, db *gorm.DB, lq ListQuery) ([]M, int64, error) {
	base := db.WithContext(ctx).Model(new(M)).Scopes(lq.Scopes...)

	if s := strings.TrimSpace(lq.Search); s != "" && len(lq.SearchCols) > 0 {
		kw := helper.LikePattern(s)
		conds := make([]string, 0, len(lq.SearchCols)+1)
		args := make([]interface{}, 0, len(lq.SearchCols)+1)
		for _, col := range lq.SearchCols {
			conds = append(conds, "LOWER(COALESCE("+col+", '')) LIKE ? ESCAPE '\\'")
			args = append(args, kw)
		}
		if n, err := strconv.ParseUint(s, 10, 64); err == nil && lq.PK != "" {
			conds = append(conds, lq.PK+" = ?")
			args = append(args, n)
		}
		base = base.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	q := base.Session(&gorm.Session{})
	for _, p := range lq.Preloads {
		q = q.Preload(p)
	}
	if lq.Order != "" {
		q = q.Order(lq.Order)
	}
	if lq.Limit > 0 {
		q = q.Limit(lq.Limit).Offset(lq.Offset)
	}
	rows := []M{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list: %w", err)
	}
	return rows, total, nil
}

// FindAll: semua baris urut PK (export CSV).
func FindAll[M any](ctx context.Context, db *gorm.DB, pk string, preloads ...string) ([]M, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	rows := []M{}
	if err := q.Order(pk + " ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return rows, nil
}
