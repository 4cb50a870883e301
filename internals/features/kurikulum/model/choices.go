package model

// Jenjang: tipe sekolah untuk Kelas.
type Jenjang string

const (
	JenjangSD  Jenjang = "SD"
	JenjangSMP Jenjang = "SMP"
	JenjangSMA Jenjang = "SMA"
	JenjangSMK Jenjang = "SMK"
)

var JenjangChoices = []Jenjang{JenjangSD, JenjangSMP, JenjangSMA, JenjangSMK}

func (j Jenjang) Valid() bool {
	for _, c := range JenjangChoices {
		if c == j {
			return true
		}
	}
	return false
}

// ProgrammingLanguage: bahasa pemrograman yang diajarkan sebuah materi. Kosong = belum diisi.
type ProgrammingLanguage string

const (
	LangScratch    ProgrammingLanguage = "scratch"
	LangBlockly    ProgrammingLanguage = "blockly"
	LangPython     ProgrammingLanguage = "python"
	LangJavaScript ProgrammingLanguage = "javascript"
	LangHTMLCSS    ProgrammingLanguage = "html_css"
	LangJava       ProgrammingLanguage = "java"
	LangCPP        ProgrammingLanguage = "cpp"
	LangLainnya    ProgrammingLanguage = "lainnya"
)

var ProgrammingLanguageChoices = []ProgrammingLanguage{
	LangScratch, LangBlockly, LangPython, LangJavaScript, LangHTMLCSS, LangJava, LangCPP, LangLainnya,
}

func (p ProgrammingLanguage) Valid() bool {
	if p == "" {
		return true
	}
	for _, c := range ProgrammingLanguageChoices {
		if c == p {
			return true
		}
	}
	return false
}

// All dipakai AutoMigrate; urutan parent dulu.
func All() []interface{} {
	return []interface{}{
		&KurikulumModel{},
		&KelasModel{},
		&FaseModel{},
		&ElementModel{},
		&TujuanPembelajaranModel{},
		&MateriModel{},
		&MateriItemModel{},
		&MateriItemVideoModel{},
	}
}
