package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

func TestProductKeyDerivation(t *testing.T) {
	e := NewEngine(types.DefaultMappings())

	tests := []struct {
		name    string
		rawKey  string
		wantCat string
		wantKey string
	}{
		{"standard key", "AB-CO-1234", "AB_CO", "1234"},
		{"longer tail", "CO-RF-FR-R92B-58", "CO_RF", "FR-R92B-58"},
		{"too short for tail", "AB-CO", "AB_CO", ""},
		{"shorter than category prefix", "AB", "AB", ""},
		{"empty key", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Products([]types.RawProduct{{ProductID: intp(1), ProductKey: strp(tt.rawKey)}})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantCat, got[0].CategoryID)
			assert.Equal(t, tt.wantKey, got[0].ProductKey)
		})
	}
}

func TestProductEndDateChaining(t *testing.T) {
	e := NewEngine(types.DefaultMappings())

	t.Run("each row ends one day before its successor", func(t *testing.T) {
		raws := []types.RawProduct{
			{ProductID: intp(1), ProductKey: strp("AB-CO-X"), StartDate: datep(t, "2020-01-01")},
			{ProductID: intp(2), ProductKey: strp("AB-CO-X"), StartDate: datep(t, "2021-01-01")},
		}
		got := e.Products(raws)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].EndDate)
		assert.Equal(t, "2020-12-31", got[0].EndDate.Format("2006-01-02"))
		assert.Nil(t, got[1].EndDate)
	})

	t.Run("chains are per product key", func(t *testing.T) {
		raws := []types.RawProduct{
			{ProductID: intp(1), ProductKey: strp("AB-CO-X"), StartDate: datep(t, "2020-01-01")},
			{ProductID: intp(2), ProductKey: strp("AB-CO-Y"), StartDate: datep(t, "2021-06-01")},
		}
		got := e.Products(raws)
		require.Len(t, got, 2)
		assert.Nil(t, got[0].EndDate)
		assert.Nil(t, got[1].EndDate)
	})

	t.Run("raw end date is ignored", func(t *testing.T) {
		raws := []types.RawProduct{
			{ProductID: intp(1), ProductKey: strp("AB-CO-X"), StartDate: datep(t, "2020-01-01"), EndDate: datep(t, "2019-01-01")},
		}
		got := e.Products(raws)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].EndDate)
	})

	t.Run("three row chain", func(t *testing.T) {
		raws := []types.RawProduct{
			{ProductID: intp(3), ProductKey: strp("AB-CO-Z"), StartDate: datep(t, "2022-01-01")},
			{ProductID: intp(1), ProductKey: strp("AB-CO-Z"), StartDate: datep(t, "2020-01-01")},
			{ProductID: intp(2), ProductKey: strp("AB-CO-Z"), StartDate: datep(t, "2021-01-01")},
		}
		got := e.Products(raws)
		require.Len(t, got, 3)
		require.NotNil(t, got[0].EndDate)
		require.NotNil(t, got[1].EndDate)
		assert.Equal(t, "2020-12-31", got[0].EndDate.Format("2006-01-02"))
		assert.Equal(t, "2021-12-31", got[1].EndDate.Format("2006-01-02"))
		assert.Nil(t, got[2].EndDate)
	})
}

func TestProductNormalization(t *testing.T) {
	e := NewEngine(types.DefaultMappings())

	t.Run("null cost becomes zero", func(t *testing.T) {
		got := e.Products([]types.RawProduct{{ProductID: intp(1), ProductKey: strp("AB-CO-K")}})
		require.Len(t, got, 1)
		assert.True(t, got[0].Cost.Equal(decimal.Zero))
	})

	t.Run("negative cost passes through uncorrected", func(t *testing.T) {
		got := e.Products([]types.RawProduct{{ProductID: intp(1), ProductKey: strp("AB-CO-K"), Cost: decp(t, "-12.5")}})
		require.Len(t, got, 1)
		assert.True(t, got[0].Cost.Equal(*decp(t, "-12.5")))
	})

	t.Run("line codes map through the lookup table", func(t *testing.T) {
		tests := []struct {
			code *string
			want string
		}{
			{strp("M"), "Mountain"},
			{strp(" r "), "Road"},
			{strp("S"), "Other Sales"},
			{strp("t"), "Touring"},
			{strp("Q"), types.NotAvailable},
			{nil, types.NotAvailable},
		}
		for _, tt := range tests {
			got := e.Products([]types.RawProduct{{ProductID: intp(1), ProductKey: strp("AB-CO-K"), LineCode: tt.code}})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Line)
		}
	})
}
