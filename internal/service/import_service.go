package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/syntaxkim/project1/internal/repository"
	"github.com/syntaxkim/project1/pkg/utils/state"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
	"gorm.io/gorm"
)

var locationsUpdatedAtKey = "LOCATIONS_UPDATED_AT"

// ImportService loads the location reference data from a CSV file. The
// request path never writes locations; this job owns their lifecycle.
type ImportService struct {
	repo    *repository.LocationRepository
	state   *state.State
	csvPath string
}

// NewImportService creates an import service reading from csvPath.
func NewImportService(db *gorm.DB, csvPath string) *ImportService {
	stateManager, err := state.NewState(db)
	if err != nil {
		zaplogger.Fatal("failed to create state manager", zaplogger.Fields{"error": err})
	}
	return &ImportService{
		repo:    repository.NewLocationRepository(db),
		state:   stateManager,
		csvPath: csvPath,
	}
}

// UpdateLocations reimports the CSV unless the table is populated and the
// last import is younger than 24h. Expected columns, header row skipped:
// zipcode, city, lat, long, population.
func (s *ImportService) UpdateLocations() (int64, error) {
	updatedAt, err := s.state.Get(locationsUpdatedAtKey)
	if err == nil && updatedAt != "" {
		count, countErr := s.repo.Count()
		if countErr == nil && count > 0 && !s.isUpdateRequired(updatedAt) {
			zaplogger.Info("Locations update not required", zaplogger.Fields{
				locationsUpdatedAtKey: updatedAt,
			})
			return 0, nil
		}
	}

	zaplogger.Info("Locations update required", zaplogger.Fields{
		locationsUpdatedAtKey: updatedAt,
	})

	f, err := os.Open(s.csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open locations csv: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %v", err)
	}
	if len(records) <= 1 {
		return 0, fmt.Errorf("locations csv has no data rows")
	}

	records = records[1:] // Skip header row

	if err := s.repo.TruncateLocations(); err != nil {
		return 0, fmt.Errorf("failed to truncate table: %v", err)
	}

	batchSize := 500
	var totalInserted int64
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}

		inserted, err := s.repo.InsertLocations(records[i:end])
		if err != nil {
			return totalInserted, fmt.Errorf("failed to insert batch starting at index %d: %v", i, err)
		}
		totalInserted += inserted
	}

	if err := s.state.Set(locationsUpdatedAtKey, time.Now().Format("2006-01-02 15:04:05")); err != nil {
		return 0, fmt.Errorf("failed to update state: %v", err)
	}

	zaplogger.Info("Locations updated", zaplogger.Fields{
		"totalInserted": totalInserted,
	})

	return totalInserted, nil
}

func (s *ImportService) isUpdateRequired(updatedAt string) bool {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", updatedAt, time.Local)
	if err != nil {
		return true
	}
	return time.Since(t) > 24*time.Hour
}
