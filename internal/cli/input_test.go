package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithStopFlags(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("name", "", "")
	set.Int("passengers", 0, "")
	set.Float64("distance", 0, "")
	set.Float64("time", 0, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func TestStopDetailsFromFlags(t *testing.T) {
	c := contextWithStopFlags(t,
		"--name", "  Central Station ",
		"--passengers", "12",
		"--distance", "2.5",
		"--time", "6",
	)

	d, err := stopDetailsFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, "Central Station", d.Name)
	assert.Equal(t, 12, d.Passengers)
	assert.Equal(t, 2.5, d.DistanceKM)
	assert.Equal(t, 6.0, d.TimeMinutes)
}

func TestStopDetailsFromFlagsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"empty name", []string{"--name", "   "}},
		{"negative passengers", []string{"--name", "X", "--passengers", "-1"}},
		{"negative distance", []string{"--name", "X", "--distance", "-0.5"}},
		{"negative time", []string{"--name", "X", "--time", "-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := contextWithStopFlags(t, tc.args...)
			_, err := stopDetailsFromFlags(c)
			assert.Error(t, err)
		})
	}
}
