package helper

import (
	"fmt"
	"path"
	"strings"

	"kurikulum_backend/internals/constants"
)

var mediaBaseURL = "/media/"

// SetMediaBaseURL dipanggil sekali saat boot (dari MEDIA_BASE_URL).
func SetMediaBaseURL(base string) {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	mediaBaseURL = base
}

// MediaURL: path relatif → URL absolut. nil/kosong → nil.
func MediaURL(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	s := strings.TrimSpace(*p)
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return &s
	}
	u := mediaBaseURL + strings.TrimPrefix(s, "/")
	return &u
}

// NormalizeUpload merapikan referensi file sebelum disimpan:
//   - nil / kosong → nil
//   - URL media (MEDIA_BASE_URL/...) → path relatif
//   - nama file polos → <prefix kategori>/<nama file>
//
// Ekstensi harus sesuai kategori.
func NormalizeUpload(cat constants.UploadCategory, raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	s = strings.TrimPrefix(s, mediaBaseURL)
	s = strings.TrimPrefix(path.Clean("/"+s), "/")
	if !strings.HasPrefix(s, cat.Prefix) {
		s = cat.Prefix + path.Base(s)
	}
	if !cat.Accepts(s) {
		return nil, fmt.Errorf("jenis file %q tidak diterima untuk %s", path.Ext(s), cat.Name)
	}
	return &s, nil
}
