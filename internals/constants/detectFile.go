package constants

import (
	"path/filepath"
	"strings"
)

// Jenis file dari ekstensi.
const (
	FileTypeAudio   = 2
	FileTypeDOCX    = 3
	FileTypePDF     = 4
	FileTypePPT     = 5
	FileTypeImage   = 6
	FileTypeVideo   = 7
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDOCX
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx":
		return FileTypePPT
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	case ".mp4", ".webm", ".mov", ".mkv":
		return FileTypeVideo
	default:
		return FileTypeUnknown // Tidak diketahui
	}
}
