package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, target string) (PageParams, error) {
	t.Helper()

	var params PageParams
	var parseErr error

	app := fiber.New()
	app.Get("/records", func(c *fiber.Ctx) error {
		params, parseErr = ParsePageParams(c, 10, 100)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	return params, parseErr
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    PageParams
		wantErr bool
	}{
		{name: "defaults", target: "/records", want: PageParams{Page: 1, PageSize: 10}},
		{name: "explicit", target: "/records?page=3&page_size=50", want: PageParams{Page: 3, PageSize: 50}},
		{name: "max page size", target: "/records?page_size=100", want: PageParams{Page: 1, PageSize: 100}},
		{name: "zero page", target: "/records?page=0", wantErr: true},
		{name: "negative page", target: "/records?page=-2", wantErr: true},
		{name: "non-numeric page", target: "/records?page=abc", wantErr: true},
		{name: "page size too large", target: "/records?page_size=101", wantErr: true},
		{name: "zero page size", target: "/records?page_size=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parse(t, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10), "empty result still has one page")
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}
