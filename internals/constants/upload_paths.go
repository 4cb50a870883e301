package constants

// UploadCategory: prefix path penyimpanan + jenis file yang diterima.
type UploadCategory struct {
	Name   string
	Prefix string
	Types  []int
}

var (
	UploadModule    = UploadCategory{Name: "module", Prefix: "kurikulum/module/", Types: []int{FileTypeDOCX, FileTypePDF, FileTypePPT}}
	UploadModulePDF = UploadCategory{Name: "module_pdf", Prefix: "kurikulum/module_pdf/", Types: []int{FileTypePDF}}
	UploadVideo     = UploadCategory{Name: "video", Prefix: "kurikulum/videos/", Types: []int{FileTypeVideo}}
	UploadRPP       = UploadCategory{Name: "rpp", Prefix: "kurikulum/rpp/", Types: []int{FileTypeDOCX, FileTypePDF}}
)

func (u UploadCategory) Accepts(filename string) bool {
	t := DetectFileTypeFromExt(filename)
	for _, ok := range u.Types {
		if ok == t {
			return true
		}
	}
	return false
}
