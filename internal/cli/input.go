package cli

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"

	"bus-route-service/internal/domain"
)

var validate = validator.New()

func stopFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "new stop name", Required: true},
		&cli.IntFlag{Name: "passengers", Usage: "waiting passengers"},
		&cli.Float64Flag{Name: "distance", Usage: "distance to next stop (km)"},
		&cli.Float64Flag{Name: "time", Usage: "time to next stop (min)"},
	}
}

// stopDetailsFromFlags maps insert flags to stop details and rejects values
// that violate the data model (empty name, negative counts or weights).
func stopDetailsFromFlags(c *cli.Context) (domain.StopDetails, error) {
	d := domain.StopDetails{
		Name:        strings.TrimSpace(c.String("name")),
		Passengers:  c.Int("passengers"),
		DistanceKM:  c.Float64("distance"),
		TimeMinutes: c.Float64("time"),
	}
	if err := validate.Struct(d); err != nil {
		return domain.StopDetails{}, fmt.Errorf("invalid stop input: %w", err)
	}
	return d, nil
}
