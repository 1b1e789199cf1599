package db

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/antigravity/golfshots/internal/loader"
	"github.com/antigravity/golfshots/internal/models"
)

// Snapshot is the read-only state of the service: the four source tables and
// the merged shot table, built once at startup. Handlers share a single
// Snapshot by reference; nothing mutates it afterwards.
type Snapshot struct {
	Clubs     []models.Club
	ClubTypes []models.ClubType
	Courses   []models.Course
	Shots     []models.Shot
	Merged    []models.MergedShot
}

// BuildSnapshot loads the four source files from dataDir and derives the
// merged shot table. A file that is missing or malformed is logged and its
// table left empty; partial data beats refusing to start. The returned error
// is reserved for the merge machinery itself.
func BuildSnapshot(dataDir string, logger *zap.Logger) (*Snapshot, error) {
	snap := &Snapshot{}

	clubs, err := loader.LoadClubs(filepath.Join(dataDir, loader.ClubFile))
	if err != nil {
		logger.Warn("loading clubs failed", zap.Error(err))
	} else {
		snap.Clubs = clubs
		logger.Info("loaded clubs", zap.Int("count", len(clubs)), zap.String("file", loader.ClubFile))
	}

	clubTypes, err := loader.LoadClubTypes(filepath.Join(dataDir, loader.ClubTypesFile))
	if err != nil {
		logger.Warn("loading club types failed", zap.Error(err))
	} else {
		snap.ClubTypes = clubTypes
		logger.Info("loaded club types", zap.Int("count", len(clubTypes)), zap.String("file", loader.ClubTypesFile))
	}

	courses, err := loader.LoadCourses(filepath.Join(dataDir, loader.CourseFile))
	if err != nil {
		logger.Warn("loading courses failed", zap.Error(err))
	} else {
		snap.Courses = courses
		logger.Info("loaded courses", zap.Int("count", len(courses)), zap.String("file", loader.CourseFile))
	}

	shots, err := loader.LoadShots(filepath.Join(dataDir, loader.ShotFile))
	if err != nil {
		logger.Warn("loading shots failed", zap.Error(err))
	} else {
		snap.Shots = shots
		logger.Info("loaded shots", zap.Int("count", len(shots)), zap.String("file", loader.ShotFile))
	}

	store, err := Open()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.InsertClubs(snap.Clubs); err != nil {
		return nil, err
	}
	if err := store.InsertClubTypes(snap.ClubTypes); err != nil {
		return nil, err
	}
	if err := store.InsertCourses(snap.Courses); err != nil {
		return nil, err
	}
	if err := store.InsertShots(snap.Shots); err != nil {
		return nil, err
	}

	merged, err := store.MergedShots()
	if err != nil {
		return nil, err
	}
	snap.Merged = merged
	logger.Info("merged shot data with club and club type information", zap.Int("rows", len(merged)))

	return snap, nil
}
