package dto_test

import (
	"testing"

	"pms/internal/domains/room/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmenities(t *testing.T) {
	assert.Equal(t, []string{"wifi", "tv", "mini bar"}, dto.SplitAmenities(" wifi, tv,,mini bar "))
	assert.Equal(t, []string{}, dto.SplitAmenities(""))
}

func TestListRoomsRequest_ToFilter(t *testing.T) {
	floor := 2

	tests := []struct {
		name      string
		req       dto.ListRoomsRequest
		wantWhere string
	}{
		{name: "all is no filter", req: dto.ListRoomsRequest{Status: "all", Type: "all"}, wantWhere: ""},
		{
			name:      "status and type",
			req:       dto.ListRoomsRequest{Status: "available", Type: "suite"},
			wantWhere: "(rooms.status = :status AND rooms.type = :type)",
		},
		{
			name:      "search with floor",
			req:       dto.ListRoomsRequest{Search: "wifi", Floor: &floor},
			wantWhere: "((LOWER(CAST(rooms.number AS TEXT)) LIKE LOWER(:search_number) ESCAPE '!' OR LOWER(CAST(rooms.type AS TEXT)) LIKE LOWER(:search_type) ESCAPE '!' OR LOWER(CAST(rooms.amenities AS TEXT)) LIKE LOWER(:search_amenities) ESCAPE '!') AND rooms.floor = :floor)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.req.ToFilter()
			where, _ := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
		})
	}
}
