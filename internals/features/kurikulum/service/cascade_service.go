package service

import (
	"context"
	"fmt"

	"kurikulum_backend/internals/features/kurikulum/model"

	"gorm.io/gorm"
)

/* =========================================================
   Cascade delete (eksplisit, satu transaksi)
   Kurikulum → Element, Materi, TujuanPembelajaran, join fase
   Fase      → Materi, join kurikulum
   Kelas     → Materi (fase.kelas_id di-NULL-kan)
   Materi    → MateriItem → Video, join tujuan
   ========================================================= */

func DeleteKurikulum(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.KurikulumModel{}, "kurikulum_id", id); err != nil {
			return err
		}
		if err := deleteMaterisWhere(tx, "materi_kurikulum_id = ?", id); err != nil {
			return err
		}
		if err := tx.Where("element_kurikulum_id = ?", id).Delete(&model.ElementModel{}).Error; err != nil {
			return fmt.Errorf("delete elements: %w", err)
		}

		var tujuanIDs []uint
		if err := tx.Model(&model.TujuanPembelajaranModel{}).
			Where("tujuan_kurikulum_id = ?", id).
			Pluck("tujuan_id", &tujuanIDs).Error; err != nil {
			return fmt.Errorf("pluck tujuan: %w", err)
		}
		if len(tujuanIDs) > 0 {
			if err := tx.Exec("DELETE FROM "+model.MateriTujuanTable+" WHERE tujuan_id IN ?", tujuanIDs).Error; err != nil {
				return fmt.Errorf("unlink tujuan: %w", err)
			}
			if err := tx.Where("tujuan_id IN ?", tujuanIDs).Delete(&model.TujuanPembelajaranModel{}).Error; err != nil {
				return fmt.Errorf("delete tujuan: %w", err)
			}
		}

		if err := tx.Exec("DELETE FROM "+model.KurikulumFaseTable+" WHERE kurikulum_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink fases: %w", err)
		}
		if err := tx.Delete(&model.KurikulumModel{}, id).Error; err != nil {
			return fmt.Errorf("delete kurikulum: %w", err)
		}
		return nil
	})
}

func DeleteFase(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.FaseModel{}, "fase_id", id); err != nil {
			return err
		}
		if err := deleteMaterisWhere(tx, "materi_fase_id = ?", id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+model.KurikulumFaseTable+" WHERE fase_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink kurikulums: %w", err)
		}
		if err := tx.Delete(&model.FaseModel{}, id).Error; err != nil {
			return fmt.Errorf("delete fase: %w", err)
		}
		return nil
	})
}

func DeleteKelas(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.KelasModel{}, "kelas_id", id); err != nil {
			return err
		}
		if err := deleteMaterisWhere(tx, "materi_kelas_id = ?", id); err != nil {
			return err
		}
		if err := tx.Model(&model.FaseModel{}).
			Where("fase_kelas_id = ?", id).
			Update("fase_kelas_id", nil).Error; err != nil {
			return fmt.Errorf("detach fases: %w", err)
		}
		if err := tx.Delete(&model.KelasModel{}, id).Error; err != nil {
			return fmt.Errorf("delete kelas: %w", err)
		}
		return nil
	})
}

func DeleteElement(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.ElementModel{}, "element_id", id); err != nil {
			return err
		}
		return tx.Delete(&model.ElementModel{}, id).Error
	})
}

func DeleteTujuan(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.TujuanPembelajaranModel{}, "tujuan_id", id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+model.MateriTujuanTable+" WHERE tujuan_id = ?", id).Error; err != nil {
			return fmt.Errorf("unlink materis: %w", err)
		}
		return tx.Delete(&model.TujuanPembelajaranModel{}, id).Error
	})
}

func DeleteMateri(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.MateriModel{}, "materi_id", id); err != nil {
			return err
		}
		return deleteMaterisWhere(tx, "materi_id = ?", id)
	})
}

func DeleteMateriItem(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.MateriItemModel{}, "materi_item_id", id); err != nil {
			return err
		}
		return deleteItems(tx, []uint{id})
	})
}

func DeleteMateriItemVideo(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.MateriItemVideoModel{}, "video_id", id); err != nil {
			return err
		}
		return tx.Delete(&model.MateriItemVideoModel{}, id).Error
	})
}

/* ---------- internal ---------- */

func mustExist(tx *gorm.DB, m interface{}, pk string, id uint) error {
	var n int64
	if err := tx.Model(m).Where(pk+" = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check %s: %w", pk, err)
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteMaterisWhere(tx *gorm.DB, cond string, args ...interface{}) error {
	var ids []uint
	if err := tx.Model(&model.MateriModel{}).Where(cond, args...).Pluck("materi_id", &ids).Error; err != nil {
		return fmt.Errorf("pluck materi: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	var itemIDs []uint
	if err := tx.Model(&model.MateriItemModel{}).
		Where("materi_item_materi_id IN ?", ids).
		Pluck("materi_item_id", &itemIDs).Error; err != nil {
		return fmt.Errorf("pluck materi items: %w", err)
	}
	if err := deleteItems(tx, itemIDs); err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM "+model.MateriTujuanTable+" WHERE materi_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("unlink tujuan: %w", err)
	}
	if err := tx.Where("materi_id IN ?", ids).Delete(&model.MateriModel{}).Error; err != nil {
		return fmt.Errorf("delete materis: %w", err)
	}
	return nil
}

func deleteItems(tx *gorm.DB, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	if err := tx.Where("video_materi_item_id IN ?", itemIDs).Delete(&model.MateriItemVideoModel{}).Error; err != nil {
		return fmt.Errorf("delete videos: %w", err)
	}
	if err := tx.Where("materi_item_id IN ?", itemIDs).Delete(&model.MateriItemModel{}).Error; err != nil {
		return fmt.Errorf("delete materi items: %w", err)
	}
	return nil
}
