package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"bus-route-service/internal/domain"
)

// CSV file backed implementation of the RouteStore port.
//
// Format: header row id,name,passengers,distance_to_next,time_to_next, one
// data row per stop in ring order, numeric edge weights rendered with six
// fractional digits. Field separators inside a name are not escaped; that is
// an accepted limitation of the format, not something this adapter repairs.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// stopRow is the on-disk row shape.
type stopRow struct {
	ID          int    `csv:"id"`
	Name        string `csv:"name"`
	Passengers  int    `csv:"passengers"`
	DistanceKM  fixed6 `csv:"distance_to_next"`
	TimeMinutes fixed6 `csv:"time_to_next"`
}

// fixed6 renders a float with exactly six fractional digits, enough for an
// exact round-trip within floating-point tolerance.
type fixed6 float64

func (f fixed6) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(f), 'f', 6, 64), nil
}

func (f *fixed6) UnmarshalCSV(field string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return err
	}
	*f = fixed6(v)
	return nil
}

// Save writes the full stop sequence, replacing the previous file contents.
// The rows go to a temporary file first and are renamed into place, so a
// failed write never leaves a truncated route behind.
func (s *Store) Save(ctx context.Context, stops []domain.Stop) error {
	rows := make([]stopRow, 0, len(stops))
	for _, st := range stops {
		rows = append(rows, stopRow{
			ID:          st.ID,
			Name:        st.Name,
			Passengers:  st.Passengers,
			DistanceKM:  fixed6(st.DistanceKM),
			TimeMinutes: fixed6(st.TimeMinutes),
		})
	}

	tmp := s.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("save route csv: create %q: %w", tmp, err)
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save route csv: marshal rows: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save route csv: close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save route csv: rename into %q: %w", s.Path, err)
	}
	return nil
}

// Load reads the stored sequence back in order. Rows that do not carry a
// parsable name, passenger count and pair of edge weights are skipped with a
// warning rather than aborting the whole load.
func (s *Store) Load(ctx context.Context) ([]domain.StopDetails, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load route csv: open %q: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Tolerate rows with missing columns; they are skipped below.
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("load route csv: %q has no header row", s.Path)
		}
		return nil, fmt.Errorf("load route csv: read header: %w", err)
	}

	var stops []domain.StopDetails
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load route csv: read row: %w", err)
		}
		line++

		details, ok := parseRow(record)
		if !ok {
			log.Warn().Str("file", s.Path).Int("line", line).Msg("Skipping malformed route row")
			continue
		}
		stops = append(stops, details)
	}
	return stops, nil
}

// parseRow maps one data row to stop details. The id column is ignored
// entirely; the route re-mints ids on import.
func parseRow(record []string) (domain.StopDetails, bool) {
	if len(record) < 5 {
		return domain.StopDetails{}, false
	}

	name := record[1]
	if name == "" {
		return domain.StopDetails{}, false
	}
	passengers, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return domain.StopDetails{}, false
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return domain.StopDetails{}, false
	}
	minutes, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return domain.StopDetails{}, false
	}

	return domain.StopDetails{
		Name:        name,
		Passengers:  passengers,
		DistanceKM:  distance,
		TimeMinutes: minutes,
	}, true
}
