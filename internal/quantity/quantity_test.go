package quantity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var q Quantity
	_, ok := q.Get()
	assert.False(t, ok)
	assert.Equal(t, Absent, q)
	assert.Equal(t, 3.0, q.Or(3))

	zero := Of(0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
	assert.NotEqual(t, Absent, zero)
}

func TestFinite(t *testing.T) {
	assert.True(t, Of(1).Finite())
	assert.False(t, Absent.Finite())
	assert.False(t, Of(math.NaN()).Finite())
	assert.False(t, Of(math.Inf(-1)).Finite())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Quantity
		wantErr bool
	}{
		{"12", Of(12), false},
		{" -3.5 ", Of(-3.5), false},
		{"1e-9", Of(1e-9), false},
		{"", Absent, false},
		{"null", Absent, false},
		{"-", Absent, false},
		{"volts", Absent, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONAbsentIsNull(t *testing.T) {
	type record struct {
		V Quantity `json:"v"`
		R Quantity `json:"r"`
	}
	data, err := json.Marshal(record{V: Of(12)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":12,"r":null}`, string(data))

	var back record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Of(12), back.V)
	assert.False(t, back.R.Present())

	_, err = json.Marshal(record{V: Of(math.NaN())})
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	type inputs struct {
		Velocity Quantity `yaml:"velocity"`
		Angle    Quantity `yaml:"angle"`
		Height   Quantity `yaml:"height"`
	}
	var in inputs
	require.NoError(t, yaml.Unmarshal([]byte("velocity: 20\nangle: \"45\"\nheight: null\n"), &in))
	assert.Equal(t, Of(20), in.Velocity)
	assert.Equal(t, Of(45), in.Angle)
	assert.False(t, in.Height.Present())

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "height: null")
}

func TestSetIsImmutable(t *testing.T) {
	src := map[string]Quantity{"voltage": Of(12), "current": Absent}
	s := NewSet(src)
	src["voltage"] = Of(1)

	assert.Equal(t, Of(12), s.Get("voltage"))
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Has("current"))
	assert.Equal(t, []string{"voltage"}, s.Names())

	s2 := s.With("resistance", Of(4))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s2.Len())
	assert.Equal(t, 2, s2.Count("voltage", "current", "resistance"))

	s3 := s2.With("voltage", Absent)
	assert.False(t, s3.Has("voltage"))
	assert.True(t, s2.Has("voltage"))
}
