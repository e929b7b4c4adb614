package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Sort
		wantErr bool
	}{
		{name: "breed asc", raw: "breed:asc", want: Sort{Field: SortFieldBreed, Direction: SortAsc}},
		{name: "age desc", raw: "age:desc", want: Sort{Field: SortFieldAge, Direction: SortDesc}},
		{name: "пробелы вокруг частей", raw: " age : asc ", want: Sort{Field: SortFieldAge, Direction: SortAsc}},
		{name: "без направления", raw: "breed", wantErr: true},
		{name: "неизвестное поле", raw: "name:asc", wantErr: true},
		{name: "неизвестное направление", raw: "breed:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want.Field)+":"+string(tt.want.Direction), got.String())
		})
	}
}
