package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	taipei101 := Coordinate{Lat: 25.033976, Lng: 121.564472}
	taipeiStation := Coordinate{Lat: 25.047924, Lng: 121.517081}

	t.Run("returns zero for identical coordinates", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, Distance(taipei101, taipei101))
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, Distance(taipei101, taipeiStation), Distance(taipeiStation, taipei101), 1e-12)
	})

	t.Run("matches a known city-scale distance", func(t *testing.T) {
		t.Parallel()

		// Taipei 101 to Taipei Main Station is roughly 5km.
		got := Distance(taipei101, taipeiStation)
		assert.InDelta(t, 5.0, got, 0.3)
	})

	t.Run("one degree of latitude is about 111km", func(t *testing.T) {
		t.Parallel()

		got := Distance(Coordinate{Lat: 0, Lng: 0}, Coordinate{Lat: 1, Lng: 0})
		assert.InDelta(t, 111.19, got, 0.05)
	})
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		km   float64
		want string
	}{
		{name: "sub-kilometer renders truncated meters", km: 0.5, want: "500 m"},
		{name: "meters truncate rather than round", km: 0.1239, want: "123 m"},
		{name: "just under one kilometer stays in meters", km: 0.9999, want: "999 m"},
		{name: "one kilometer switches to kilometers", km: 1.0, want: "1.0 km"},
		{name: "kilometers keep one decimal place", km: 12.345, want: "12.3 km"},
		{name: "zero distance", km: 0, want: "0 m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, FormatDistance(tc.km))
		})
	}
}

func TestRoundKm(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.23, RoundKm(1.2341), 1e-9)
	assert.InDelta(t, 1.24, RoundKm(1.236), 1e-9)
	assert.InDelta(t, 0.0, RoundKm(0), 1e-9)
}

func TestCoordinatePointRoundTrip(t *testing.T) {
	t.Parallel()

	coord := Coordinate{Lat: 25.03, Lng: 121.56}
	assert.Equal(t, coord, FromPoint(coord.Point()))
}
