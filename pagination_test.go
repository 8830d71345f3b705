package blog_test

import (
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "absent defaults to one", raw: "", want: 1},
		{name: "explicit page", raw: "3", want: 3},
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "negative rejected", raw: "-2", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "float rejected", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := blog.ParsePage(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, blog.PageOffset(1))
	assert.Equal(t, 10, blog.PageOffset(2))
	assert.Equal(t, 90, blog.PageOffset(10))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 10, want: 1},
		{total: 11, want: 2},
		{total: 95, want: 10},
		{total: 100, want: 10},
		{total: 101, want: 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, blog.TotalPages(tt.total), "total=%d", tt.total)
	}
}
