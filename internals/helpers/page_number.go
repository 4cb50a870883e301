package helper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Page-number pagination (endpoint publik)
   Envelope: {count, next, previous, results}
=================================*/

const (
	PageQueryParam     = "page"
	PageSizeQueryParam = "page_size"
)

var ErrInvalidPage = fiber.NewError(fiber.StatusNotFound, "Invalid page.")

type PageEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type PageRequest struct {
	Number   int
	Last     bool
	PageSize int
}

// ParsePageRequest membaca ?page= (angka >=1 atau "last") & ?page_size= (dibatasi maxSize).
func ParsePageRequest(c *fiber.Ctx, defaultSize, maxSize int) (PageRequest, error) {
	req := PageRequest{Number: 1, PageSize: defaultSize}

	raw := strings.TrimSpace(c.Query(PageQueryParam))
	switch {
	case raw == "":
	case raw == "last":
		req.Last = true
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return req, ErrInvalidPage
		}
		req.Number = n
	}

	if n, err := strconv.Atoi(strings.TrimSpace(c.Query(PageSizeQueryParam))); err == nil && n > 0 {
		req.PageSize = n
	}
	if maxSize > 0 && req.PageSize > maxSize {
		req.PageSize = maxSize
	}
	if req.PageSize < 1 {
		req.PageSize = 1
	}
	return req, nil
}

// NumPages: minimal 1 supaya halaman pertama dari list kosong tetap valid.
func NumPages(count, size int) int {
	if count == 0 {
		return 1
	}
	return (count + size - 1) / size
}

// PaginateSlice memotong list yang sudah dimaterialisasi. Mengembalikan potongan + nomor halaman efektif.
func PaginateSlice[T any](items []T, req PageRequest) ([]T, int, error) {
	pages := NumPages(len(items), req.PageSize)
	number := req.Number
	if req.Last {
		number = pages
	}
	if number < 1 || number > pages {
		return nil, 0, ErrInvalidPage
	}
	start := (number - 1) * req.PageSize
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], number, nil
}

// PageLinks menghasilkan URL next/previous dari URL request asli.
// Previous menuju halaman 1 membuang parameter page.
func PageLinks(rawURL string, number, pages int) (next, previous *string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil
	}
	if number < pages {
		q := u.Query()
		q.Set(PageQueryParam, strconv.Itoa(number+1))
		u.RawQuery = q.Encode()
		s := u.String()
		next = &s
	}
	if number > 1 {
		q := u.Query()
		if number-1 == 1 {
			q.Del(PageQueryParam)
		} else {
			q.Set(PageQueryParam, strconv.Itoa(number-1))
		}
		u.RawQuery = q.Encode()
		s := u.String()
		previous = &s
	}
	return next, previous
}

// NewPageEnvelope = PaginateSlice + PageLinks dari request Fiber.
func NewPageEnvelope[T any](c *fiber.Ctx, items []T, req PageRequest) (PageEnvelope[T], error) {
	page, number, err := PaginateSlice(items, req)
	if err != nil {
		return PageEnvelope[T]{}, err
	}
	if page == nil {
		page = []T{}
	}
	// RequestURI selalu path+query, juga untuk request line bentuk absolut (http://host/path)
	next, prev := PageLinks(c.BaseURL()+string(c.Request().URI().RequestURI()), number, NumPages(len(items), req.PageSize))
	return PageEnvelope[T]{
		Count:    len(items),
		Next:     next,
		Previous: prev,
		Results:  page,
	}, nil
}
