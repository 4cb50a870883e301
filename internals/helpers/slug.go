package helper

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify mengubah teks bebas jadi slug [a-z0-9-], hilangkan diakritik,
// kompres "-", trim ujung, enforce maxLen (default 100 jika <=0).
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diakritik (é → e, dll)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	return s
}

// EnsureUniqueSlug mencari slug unik pada tabel tertentu: base, base-2, base-3, ...
// Baris dengan pk = excludeID (record yang sedang diedit) tidak dihitung.
func EnsureUniqueSlug(ctx context.Context, db *gorm.DB, base, table, column, pk string, excludeID uint) (string, error) {
	// fast path: cek slug exact ada/tidak
	var count int64
	if err := db.WithContext(ctx).Table(table).
		Where(column+" = ? AND "+pk+" <> ?", base, excludeID).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	// cari suffix terbesar; slug hanya [a-z0-9-] jadi aman dipakai LIKE
	var slugs []string
	if err := db.WithContext(ctx).Table(table).
		Where(column+" LIKE ? AND "+pk+" <> ?", base+"-%", excludeID).
		Pluck(column, &slugs).Error; err != nil {
		return "", err
	}
	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, s := range slugs {
		if m := re.FindStringSubmatch(s); len(m) == 2 {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxN {
				maxN = n
			}
		}
	}
	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
