package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridroute/gridroute/search"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		input   string
		want    search.Coord
		wantErr bool
	}{
		{"0,0", search.Coord{Row: 0, Col: 0}, false},
		{"3,12", search.Coord{Row: 3, Col: 12}, false},
		{" 2 , 5 ", search.Coord{Row: 2, Col: 5}, false},
		{"7", search.Coord{}, true},
		{"1,2,3", search.Coord{}, true},
		{"a,b", search.Coord{}, true},
		{"", search.Coord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCoord(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
