package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha(t *testing.T) {
	f, err := ParseFecha("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", f.String())

	f, err = ParseFecha("2024-05-01T22:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", f.String())

	_, err = ParseFecha("01/05/2024")
	assert.Error(t, err)
}

func TestFecha_JSON(t *testing.T) {
	var v struct {
		Fecha Fecha `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha": "2023-12-31"}`), &v))
	assert.Equal(t, NewFecha(2023, time.December, 31), v.Fecha)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha": "2023-12-31"}`, string(out))
}

func TestFecha_NullNoModifica(t *testing.T) {
	v := struct {
		Fecha Fecha `json:"fecha"`
	}{Fecha: NewFecha(2024, time.January, 2)}

	require.NoError(t, json.Unmarshal([]byte(`{"fecha": null}`), &v))

	assert.Equal(t, "2024-01-02", v.Fecha.String())
}

func TestFecha_CeroSerializaNull(t *testing.T) {
	out, err := json.Marshal(Fecha{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestFecha_Scan(t *testing.T) {
	var f Fecha
	require.NoError(t, f.Scan(time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-02-29", f.String())

	require.NoError(t, f.Scan([]byte("2022-07-15")))
	assert.Equal(t, "2022-07-15", f.String())

	require.NoError(t, f.Scan(nil))
	assert.True(t, f.IsZero())

	assert.Error(t, f.Scan(42))
}

func TestFecha_Value(t *testing.T) {
	v, err := NewFecha(2024, time.March, 3).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", v)

	v, err = Fecha{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRequiereRestaurante(t *testing.T) {
	assert.True(t, RequiereRestaurante(RolChef))
	assert.True(t, RequiereRestaurante(RolEncargado))
	assert.False(t, RequiereRestaurante(RolAdmin))
}
