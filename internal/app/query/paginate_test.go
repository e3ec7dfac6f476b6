package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		requested      int
		pageSize       int
		wantNumber     int
		wantTotalPages int
		wantFirst      int
		wantLen        int
	}{
		{
			name:  "First page of 45 items at size 20",
			total: 45, requested: 1, pageSize: 20,
			wantNumber: 1, wantTotalPages: 3, wantFirst: 1, wantLen: 20,
		},
		{
			name:  "Middle page",
			total: 45, requested: 2, pageSize: 20,
			wantNumber: 2, wantTotalPages: 3, wantFirst: 21, wantLen: 20,
		},
		{
			name:  "Last partial page",
			total: 45, requested: 3, pageSize: 20,
			wantNumber: 3, wantTotalPages: 3, wantFirst: 41, wantLen: 5,
		},
		{
			name:  "Page zero clamps to first",
			total: 45, requested: 0, pageSize: 20,
			wantNumber: 1, wantTotalPages: 3, wantFirst: 1, wantLen: 20,
		},
		{
			name:  "Negative page clamps to first",
			total: 45, requested: -5, pageSize: 20,
			wantNumber: 1, wantTotalPages: 3, wantFirst: 1, wantLen: 20,
		},
		{
			name:  "Past the end clamps to last",
			total: 45, requested: 99, pageSize: 20,
			wantNumber: 3, wantTotalPages: 3, wantFirst: 41, wantLen: 5,
		},
		{
			name:  "Exact multiple of page size",
			total: 40, requested: 2, pageSize: 20,
			wantNumber: 2, wantTotalPages: 2, wantFirst: 21, wantLen: 20,
		},
		{
			name:  "Fewer items than one page",
			total: 7, requested: 1, pageSize: 20,
			wantNumber: 1, wantTotalPages: 1, wantFirst: 1, wantLen: 7,
		},
		{
			name:  "Empty collection reports one empty page",
			total: 0, requested: 3, pageSize: 20,
			wantNumber: 1, wantTotalPages: 1, wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(sequence(tt.total), tt.requested, tt.pageSize)

			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalInstances)
			assert.Len(t, page.Items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.Items[0])
			}
		})
	}
}

func TestPaginate_InvalidPageSizeFallsBackToDefault(t *testing.T) {
	page := Paginate(sequence(45), 1, 0)

	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, 3, page.TotalPages)
}
