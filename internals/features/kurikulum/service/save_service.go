// file: internals/features/kurikulum/service/save_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"kurikulum_backend/internals/features/kurikulum/dto"
	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =========================================================
   Save (create/update) per entity.
   Semua dipanggil dengan tx dari pemanggil (handler admin / import CSV).
   isNew=true → INSERT, selain itu UPDATE record m yang sudah di-load.
   ========================================================= */

func SaveKurikulum(ctx context.Context, tx *gorm.DB, m *model.KurikulumModel, req dto.KurikulumRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if req.Apply(m) {
		kode, err := helper.EnsureUniqueSlug(ctx, tx, m.KurikulumKode, "kurikulums", "kurikulum_kode", "kurikulum_id", m.KurikulumID)
		if err != nil {
			return fmt.Errorf("kode kurikulum unik: %w", err)
		}
		m.KurikulumKode = kode
	}

	fe := helper.FieldErrors{}
	var fases []model.FaseModel
	if req.FaseIDs != nil {
		var err error
		if fases, err = loadByIDs[model.FaseModel](ctx, tx, "fase_id", *req.FaseIDs); err != nil {
			fe.Add("fase_ids", err.Error())
		}
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}

	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save kurikulum: %w", err)
	}
	if req.FaseIDs != nil {
		if err := replaceAssoc(ctx, tx, m, "Fases", fases); err != nil {
			return fmt.Errorf("replace fases: %w", err)
		}
	}
	return nil
}

func SaveFase(ctx context.Context, tx *gorm.DB, m *model.FaseModel, req dto.FaseRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if isNew {
		if err := req.RequireCreate().ErrOrNil(); err != nil {
			return err
		}
	}
	req.Apply(m)

	fe := helper.FieldErrors{}
	if err := checkRef[model.KelasModel](ctx, tx, fe, "kelas_id", "kelas_id", m.FaseKelasID); err != nil {
		return err
	}

	// cek unik dulu; di Postgres statement gagal membatalkan seluruh transaksi
	var dup int64
	if err := tx.WithContext(ctx).Model(&model.FaseModel{}).
		Where("fase_nama = ? AND fase_id <> ?", m.FaseNama, m.FaseID).
		Count(&dup).Error; err != nil {
		return fmt.Errorf("check fase unik: %w", err)
	}
	if dup > 0 {
		fe.Add("fase", "fase dengan nama ini sudah ada")
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}

	if err := persist(ctx, tx, m, isNew); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FieldErrors{"fase": {"fase dengan nama ini sudah ada"}}
		}
		return fmt.Errorf("save fase: %w", err)
	}
	return nil
}

func SaveKelas(ctx context.Context, tx *gorm.DB, m *model.KelasModel, req dto.KelasRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if isNew {
		if err := req.RequireCreate().ErrOrNil(); err != nil {
			return err
		}
	}
	req.Apply(m)
	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save kelas: %w", err)
	}
	return nil
}

func SaveElement(ctx context.Context, tx *gorm.DB, m *model.ElementModel, req dto.ElementRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	req.Apply(m)

	fe := helper.FieldErrors{}
	if err := checkRef[model.KurikulumModel](ctx, tx, fe, "kurikulum_id", "kurikulum_id", m.ElementKurikulumID); err != nil {
		return err
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}
	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save element: %w", err)
	}
	return nil
}

func SaveTujuan(ctx context.Context, tx *gorm.DB, m *model.TujuanPembelajaranModel, req dto.TujuanRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	req.Apply(m)

	fe := helper.FieldErrors{}
	if err := checkRef[model.KurikulumModel](ctx, tx, fe, "kurikulum_id", "kurikulum_id", m.TujuanKurikulumID); err != nil {
		return err
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}
	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save tujuan pembelajaran: %w", err)
	}
	return nil
}

func SaveMateri(ctx context.Context, tx *gorm.DB, m *model.MateriModel, req dto.MateriRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	fe := helper.FieldErrors{}
	if err := req.Apply(m); err != nil {
		fe = mergeFieldErrors(fe, err)
	}

	if err := checkRef[model.KurikulumModel](ctx, tx, fe, "kurikulum_id", "kurikulum_id", m.MateriKurikulumID); err != nil {
		return err
	}
	if err := checkRef[model.FaseModel](ctx, tx, fe, "fase_id", "fase_id", m.MateriFaseID); err != nil {
		return err
	}
	if err := checkRef[model.KelasModel](ctx, tx, fe, "kelas_id", "kelas_id", m.MateriKelasID); err != nil {
		return err
	}

	var tujuans []model.TujuanPembelajaranModel
	if req.TujuanIDs != nil {
		var err error
		if tujuans, err = loadByIDs[model.TujuanPembelajaranModel](ctx, tx, "tujuan_id", *req.TujuanIDs); err != nil {
			fe.Add("tujuan_pembelajaran_ids", err.Error())
		}
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}

	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save materi: %w", err)
	}
	if req.TujuanIDs != nil {
		if err := replaceAssoc(ctx, tx, m, "TujuanPembelajaran", tujuans); err != nil {
			return fmt.Errorf("replace tujuan pembelajaran: %w", err)
		}
	}
	return nil
}

func SaveMateriItem(ctx context.Context, tx *gorm.DB, m *model.MateriItemModel, req dto.MateriItemRequest, isNew bool) error {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	fe := helper.FieldErrors{}
	if err := req.Apply(m); err != nil {
		fe = mergeFieldErrors(fe, err)
	}
	if err := checkRef[model.MateriModel](ctx, tx, fe, "materi_id", "materi_id", m.MateriItemMateriID); err != nil {
		return err
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}
	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save materi item: %w", err)
	}
	return nil
}

func SaveMateriItemVideo(ctx context.Context, tx *gorm.DB, m *model.MateriItemVideoModel, req dto.VideoRequest, isNew bool) error {
	req.Normalize()
	fe := helper.FieldErrors{}
	if err := req.Apply(m); err != nil {
		fe = mergeFieldErrors(fe, err)
	}
	if err := checkRef[model.MateriItemModel](ctx, tx, fe, "materi_item_id", "materi_item_id", m.VideoMateriItemID); err != nil {
		return err
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}
	if err := persist(ctx, tx, m, isNew); err != nil {
		return fmt.Errorf("save video: %w", err)
	}
	return nil
}

/* ---------- internal ---------- */

// persist tanpa menyentuh asosiasi; relasi many2many diurus terpisah via Replace.
func persist(ctx context.Context, tx *gorm.DB, m interface{}, isNew bool) error {
	q := tx.WithContext(ctx).Omit(clause.Associations)
	if isNew {
		return q.Create(m).Error
	}
	return q.Save(m).Error
}

func replaceAssoc[T any](ctx context.Context, tx *gorm.DB, owner interface{}, name string, values []T) error {
	assoc := tx.WithContext(ctx).Model(owner).Association(name)
	if len(values) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

// checkRef: FK opsional; kalau diisi, record-nya harus ada.
// Id yang tidak ada → field error; gagal query → error biasa (500).
func checkRef[M any](ctx context.Context, tx *gorm.DB, fe helper.FieldErrors, field, pk string, id *uint) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := tx.WithContext(ctx).Model(new(M)).Where(pk+" = ?", *id).Count(&n).Error; err != nil {
		return fmt.Errorf("cek referensi %s: %w", field, err)
	}
	if n == 0 {
		fe.Add(field, fmt.Sprintf("id %d tidak ditemukan", *id))
	}
	return nil
}

// loadByIDs: semua id harus ada (duplikat diabaikan).
func loadByIDs[M any](ctx context.Context, tx *gorm.DB, pk string, ids []uint) ([]M, error) {
	uniq := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	out := []M{}
	if len(uniq) == 0 {
		return out, nil
	}
	if err := tx.WithContext(ctx).Where(pk+" IN ?", uniq).Order(pk + " ASC").Find(&out).Error; err != nil {
		return nil, errors.New("gagal memuat referensi")
	}
	if len(out) != len(uniq) {
		return nil, errors.New("sebagian id tidak ditemukan")
	}
	return out, nil
}

func mergeFieldErrors(dst helper.FieldErrors, err error) helper.FieldErrors {
	if src, ok := err.(helper.FieldErrors); ok {
		for k, msgs := range src {
			dst[k] = append(dst[k], msgs...)
		}
		return dst
	}
	dst.Add("non_field_errors", err.Error())
	return dst
}
