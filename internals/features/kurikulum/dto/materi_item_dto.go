// file: internals/features/kurikulum/dto/materi_item_dto.go
package dto

import (
	"time"

	"kurikulum_backend/internals/constants"
	"kurikulum_backend/internals/features/kurikulum/model"
	helper "kurikulum_backend/internals/helpers"
)

/* ===============================
   MATERI ITEM
=================================*/

type MateriRef struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type MateriItemDetail struct {
	MateriItemResponse
	MateriID *uint      `json:"materi_id"`
	Materi   *MateriRef `json:"materi"`
}

func FromMateriItemDetail(m *model.MateriItemModel) MateriItemDetail {
	out := MateriItemDetail{
		MateriItemResponse: FromMateriItemResponse(m),
		MateriID:           m.MateriItemMateriID,
	}
	if m.Materi != nil {
		out.Materi = &MateriRef{ID: m.Materi.MateriID, Nama: m.Materi.MateriNama}
	}
	return out
}

type MateriItemRequest struct {
	MateriID    PatchField[uint]   `json:"materi_id"`
	QCApprove   *bool              `json:"qc_approve"`
	Nama        *string            `json:"nama" validate:"omitempty,max=255"`
	Deskripsi   PatchField[string] `json:"deskripsi"`
	ModuleQC    PatchField[string] `json:"module_qc"`
	ModuleQCPDF PatchField[string] `json:"module_qc_pdf"`
}

func (r *MateriItemRequest) Normalize() {
	trimPtr(&r.Nama)
	trimPatch(&r.Deskripsi)
	trimPatch(&r.ModuleQC)
	trimPatch(&r.ModuleQCPDF)
	idPatch(&r.MateriID)
}

func (r MateriItemRequest) Apply(m *model.MateriItemModel) error {
	fe := helper.FieldErrors{}
	if r.MateriID.Present {
		m.MateriItemMateriID = r.MateriID.Value
	}
	if r.QCApprove != nil {
		m.MateriItemQCApprove = *r.QCApprove
	}
	if r.Nama != nil {
		m.MateriItemNama = *r.Nama
	}
	if r.Deskripsi.Present {
		m.MateriItemDeskripsi = r.Deskripsi.Value
	}
	if r.ModuleQC.Present {
		if p, err := helper.NormalizeUpload(constants.UploadModule, r.ModuleQC.Value); err != nil {
			fe.Add("module_qc", err.Error())
		} else {
			m.MateriItemModuleQC = p
		}
	}
	if r.ModuleQCPDF.Present {
		if p, err := helper.NormalizeUpload(constants.UploadModulePDF, r.ModuleQCPDF.Value); err != nil {
			fe.Add("module_qc_pdf", err.Error())
		} else {
			m.MateriItemModuleQCPDF = p
		}
	}
	return fe.ErrOrNil()
}

/* ===============================
   VIDEO
=================================*/

type VideoDetail struct {
	VideoResponse
	MateriItemID *uint     `json:"materi_item_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromVideoDetail(m *model.MateriItemVideoModel) VideoDetail {
	return VideoDetail{
		VideoResponse: FromVideoResponse(m),
		MateriItemID:  m.VideoMateriItemID,
		CreatedAt:     m.VideoCreatedAt,
	}
}

type VideoRequest struct {
	MateriItemID PatchField[uint]   `json:"materi_item_id"`
	Video        PatchField[string] `json:"video"`
}

func (r *VideoRequest) Normalize() {
	trimPatch(&r.Video)
	idPatch(&r.MateriItemID)
}

func (r VideoRequest) Apply(m *model.MateriItemVideoModel) error {
	if r.MateriItemID.Present {
		m.VideoMateriItemID = r.MateriItemID.Value
	}
	if r.Video.Present {
		p, err := helper.NormalizeUpload(constants.UploadVideo, r.Video.Value)
		if err != nil {
			return helper.FieldErrors{"video": {err.Error()}}
		}
		m.VideoPath = p
	}
	return nil
}
