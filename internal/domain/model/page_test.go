package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		content   []int
		number    int
		size      int
		total     int64
		wantPages int
		wantLast  bool
	}{
		{name: "empty", size: 10, wantPages: 0, wantLast: true},
		{name: "exact fit", content: []int{1, 2}, size: 2, total: 4, wantPages: 2, wantLast: false},
		{name: "partial last page", content: []int{5}, number: 2, size: 2, total: 5, wantPages: 3, wantLast: true},
		{name: "no size", content: []int{1, 2, 3}, total: 3, wantPages: 1, wantLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.content, tt.number, tt.size, tt.total)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantLast, page.Last())
			assert.Equal(t, len(tt.content), page.NumberOfElements)
			assert.NotNil(t, page.Content)
		})
	}
}
