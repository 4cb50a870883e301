package helper

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateSliceConcatenatesToWhole(t *testing.T) {
	items := seq(23)
	size := 5
	var all []int
	for p := 1; p <= NumPages(len(items), size); p++ {
		page, n, err := PaginateSlice(items, PageRequest{Number: p, PageSize: size})
		require.NoError(t, err)
		assert.Equal(t, p, n)
		all = append(all, page...)
	}
	assert.Equal(t, items, all)
}

func TestPaginateSliceBounds(t *testing.T) {
	_, _, err := PaginateSlice(seq(10), PageRequest{Number: 3, PageSize: 5})
	assert.ErrorIs(t, err, ErrInvalidPage)

	page, n, err := PaginateSlice([]int{}, PageRequest{Number: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, page)

	page, n, err = PaginateSlice(seq(11), PageRequest{Last: true, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{10}, page)
}

func TestPageLinks(t *testing.T) {
	next, prev := PageLinks("http://x/curriculum-overview/?search=py", 1, 3)
	require.NotNil(t, next)
	assert.Nil(t, prev)
	assert.Equal(t, "http://x/curriculum-overview/?page=2&search=py", *next)

	next, prev = PageLinks("http://x/o/?page=2&search=py", 2, 3)
	assert.Equal(t, "http://x/o/?page=3&search=py", *next)
	assert.Equal(t, "http://x/o/?search=py", *prev)

	next, prev = PageLinks("http://x/o/?page=3", 3, 3)
	assert.Nil(t, next)
	assert.Equal(t, "http://x/o/?page=2", *prev)
}

func TestParsePageRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		req, err := ParsePageRequest(c, 10, 100)
		if err != nil {
			return err
		}
		return c.JSON(req)
	})

	cases := []struct {
		query    string
		status   int
		number   int
		last     bool
		pageSize int
	}{
		{"", 200, 1, false, 10},
		{"?page=4&page_size=7", 200, 4, false, 7},
		{"?page=last", 200, 1, true, 10},
		{"?page_size=1000", 200, 1, false, 100},
		{"?page_size=-3", 200, 1, false, 10},
		{"?page=0", 404, 0, false, 0},
		{"?page=abc", 404, 0, false, 0},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.query)
		if tc.status != 200 {
			continue
		}
		var got PageRequest
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, tc.number, got.Number, tc.query)
		assert.Equal(t, tc.last, got.Last, tc.query)
		assert.Equal(t, tc.pageSize, got.PageSize, tc.query)
	}
}

func TestNewPageEnvelope_AbsoluteFormTarget(t *testing.T) {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		req, err := ParsePageRequest(c, 2, 10)
		if err != nil {
			return err
		}
		env, err := NewPageEnvelope(c, seq(5), req)
		if err != nil {
			return err
		}
		return c.JSON(env)
	})

	for _, target := range []string{
		"/items?page=2&q=py",
		"http://example.com/items?page=2&q=py",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
		require.NoError(t, err, target)
		require.Equal(t, 200, resp.StatusCode, target)

		var env PageEnvelope[int]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env), target)
		require.NotNil(t, env.Next, target)
		require.NotNil(t, env.Previous, target)
		assert.Equal(t, "http://example.com/items?page=3&q=py", *env.Next, target)
		assert.Equal(t, "http://example.com/items?q=py", *env.Previous, target)
		assert.Equal(t, []int{2, 3}, env.Results, target)
	}
}
