package cli

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"bus-route-service/internal/adapters/csvfile"
	"bus-route-service/internal/domain"
	"bus-route-service/internal/services"
)

func viewCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "view",
		Usage: "print the full route in ring order",
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}
			if route.Len() == 0 {
				fmt.Println("Route is empty.")
				return nil
			}
			idx := 1
			for s := range route.Stops() {
				printStop(idx, s)
				idx++
			}
			return nil
		},
	}
}

func findCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "look up a stop by name or id",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "stop name (case-insensitive)"},
			&cli.IntFlag{Name: "id", Usage: "stop id"},
		},
		Action: func(c *cli.Context) error {
			if c.String("name") == "" && !c.IsSet("id") {
				return errors.New("find: either --name or --id is required")
			}
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}

			var (
				stop domain.Stop
				ok   bool
			)
			if name := c.String("name"); name != "" {
				stop, ok = route.FindByName(name)
			} else {
				stop, ok = route.FindByID(c.Int("id"))
			}
			if !ok {
				fmt.Println("Stop not found.")
				return nil
			}
			printStop(0, stop)
			return nil
		},
	}
}

func insertCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "insert",
		Usage: "add a stop at the end, after a named stop, or at a position",
		Flags: append(stopFlags(),
			&cli.StringFlag{Name: "after", Usage: "insert after the stop with this name"},
			&cli.IntFlag{Name: "position", Usage: "insert at this 1-based position"},
		),
		Action: func(c *cli.Context) error {
			if c.IsSet("after") && c.IsSet("position") {
				return errors.New("insert: --after and --position are mutually exclusive")
			}
			details, err := stopDetailsFromFlags(c)
			if err != nil {
				return err
			}

			route, err := env.load(c.Context)
			if err != nil {
				return err
			}

			switch {
			case c.IsSet("after"):
				stop, found := route.InsertAfter(c.String("after"), details)
				if found {
					fmt.Printf("Inserted %q (id %d) after %q.\n", stop.Name, stop.ID, c.String("after"))
				} else {
					fmt.Printf("Stop %q not found; appended %q (id %d) at end.\n", c.String("after"), stop.Name, stop.ID)
				}
			case c.IsSet("position"):
				stop := route.InsertAt(c.Int("position"), details)
				fmt.Printf("Inserted %q (id %d) at position %d (or end if past the last stop).\n", stop.Name, stop.ID, c.Int("position"))
			default:
				stop := route.InsertEnd(details)
				fmt.Printf("Inserted %q (id %d) at end.\n", stop.Name, stop.ID)
			}

			return env.save(c.Context, route)
		},
	}
}

func deleteCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "remove the first stop matching a name",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "stop name (case-insensitive)", Required: true},
		},
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}
			if !route.DeleteByName(c.String("name")) {
				fmt.Println("Stop not found.")
				return nil
			}
			fmt.Printf("Deleted %q.\n", c.String("name"))
			return env.save(c.Context, route)
		},
	}
}

func passengersCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "passengers",
		Usage: "show the passengers waiting at a stop",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "stop name (case-insensitive)", Required: true},
		},
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}
			stop, ok := route.FindByName(c.String("name"))
			if !ok {
				fmt.Println("Stop not found.")
				return nil
			}
			fmt.Printf("Passengers waiting at %q: %d\n", stop.Name, stop.Passengers)
			return nil
		},
	}
}

func totalCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "total",
		Usage: "show total distance and time over the full ring",
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}
			total := route.Total()
			fmt.Printf("Total distance of route: %.2f km\n", total.DistanceKM)
			fmt.Printf("Total time of route: %.2f minutes\n", total.TimeMinutes)
			return nil
		},
	}
}

func betweenCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "between",
		Usage: "show distance and time travelling forward between two stops",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "start stop name", Required: true},
			&cli.StringFlag{Name: "to", Usage: "end stop name", Required: true},
		},
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}

			leg, err := route.Between(c.String("from"), c.String("to"))
			if errors.Is(err, domain.ErrUnreachable) {
				fmt.Println("One or both stops not found.")
				return nil
			}
			if err != nil {
				// ring corruption; surface it
				return err
			}
			fmt.Printf("Distance from %q to %q: %.2f km\n", c.String("from"), c.String("to"), leg.DistanceKM)
			fmt.Printf("Time: %.2f minutes\n", leg.TimeMinutes)
			return nil
		},
	}
}

func seedCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "replace the route with the built-in sample",
		Action: func(c *cli.Context) error {
			route := services.SampleRoute()
			if err := env.save(c.Context, route); err != nil {
				return err
			}
			fmt.Printf("Sample route populated (%d stops).\n", route.Len())
			return nil
		},
	}
}

func exportCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the route to a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "destination CSV path", Required: true},
		},
		Action: func(c *cli.Context) error {
			route, err := env.load(c.Context)
			if err != nil {
				return err
			}
			n, err := services.ExportRoute(c.Context, route, csvfile.NewStore(c.String("file")))
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d stops to %s\n", n, c.String("file"))
			return nil
		},
	}
}

func importCommand(env *commandEnv) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "replace the route with the contents of a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "source CSV path", Required: true},
		},
		Action: func(c *cli.Context) error {
			route := domain.New()
			n, err := services.ImportRoute(c.Context, route, csvfile.NewStore(c.String("file")))
			if err != nil {
				return err
			}
			if err := env.save(c.Context, route); err != nil {
				return err
			}
			fmt.Printf("Loaded %d stops from %s\n", n, c.String("file"))
			return nil
		},
	}
}

func printStop(idx int, s domain.Stop) {
	if idx > 0 {
		fmt.Printf("%2d) ", idx)
	}
	fmt.Printf("ID:%d  Name:%q  Passengers:%d  dist_to_next:%.2f km  time_to_next:%.2f min\n",
		s.ID, s.Name, s.Passengers, s.DistanceKM, s.TimeMinutes)
}
