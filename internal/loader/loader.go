package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/antigravity/golfshots/internal/models"
)

// Source file names, relative to the data directory.
const (
	ClubFile      = "Golf-CLUB.json"
	ClubTypesFile = "Golf-CLUB_TYPES.json"
	CourseFile    = "Golf-COURSE.json"
	ShotFile      = "Golf-SHOT.json"
)

var (
	// ErrMissingFile reports an absent source file.
	ErrMissingFile = errors.New("data file missing")
	// ErrMalformedData reports a file whose content does not match the
	// expected {"data": [...]} record shape.
	ErrMalformedData = errors.New("malformed data file")
)

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, err
	}
	return raw, nil
}

// clubRecord matches the source file, where the primary key is named "id".
type clubRecord struct {
	ID          int     `json:"id"`
	ClubTypeID  int     `json:"clubTypeId"`
	ShaftLength float64 `json:"shaftLength"`
	FlexTypeID  int     `json:"flexTypeId"`
}

// LoadClubs reads the club table, exposing the source "id" column as clubId.
func LoadClubs(path string) ([]models.Club, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []clubRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedData, path)
	}
	clubs := make([]models.Club, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		clubs = append(clubs, models.Club{
			ClubID:      rec.ID,
			ClubTypeID:  rec.ClubTypeID,
			ShaftLength: rec.ShaftLength,
			FlexTypeID:  rec.FlexTypeID,
		})
	}
	return clubs, nil
}

// clubTypeRecord matches the source file, where the key is named "value".
type clubTypeRecord struct {
	Value     int     `json:"value"`
	Name      string  `json:"name"`
	LoftAngle float64 `json:"loftAngle"`
}

// LoadClubTypes reads the club-type lookup table, exposing the source
// "value" column as clubTypeId.
func LoadClubTypes(path string) ([]models.ClubType, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []clubTypeRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedData, path)
	}
	types := make([]models.ClubType, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		types = append(types, models.ClubType{
			ClubTypeID: rec.Value,
			Name:       rec.Name,
			LoftAngle:  rec.LoftAngle,
		})
	}
	return types, nil
}

// LoadCourses reads the course table. Each element of the data array is an
// object with exactly one entry mapping a string-encoded integer id to a
// course name; anything else rejects the file as malformed.
func LoadCourses(path string) ([]models.Course, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []map[string]string `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedData, path)
	}
	courses := make([]models.Course, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		if len(entry) != 1 {
			return nil, fmt.Errorf("%w: %s: course entry must have exactly one key", ErrMalformedData, path)
		}
		for id, name := range entry {
			courseID, err := strconv.Atoi(id)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: course id %q is not an integer", ErrMalformedData, path, id)
			}
			courses = append(courses, models.Course{CourseID: courseID, CourseName: name})
		}
	}
	return courses, nil
}

type shotRecord struct {
	ClubID     int        `json:"clubId"`
	Lie        models.Lie `json:"lie"`
	Meters     float64    `json:"meters"`
	HoleNumber int        `json:"holeNumber"`
}

// LoadShots reads the shot table and stores the derived yards column on
// every record.
func LoadShots(path string) ([]models.Shot, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []shotRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedData, path)
	}
	shots := make([]models.Shot, 0, len(envelope.Data))
	for _, rec := range envelope.Data {
		shots = append(shots, models.Shot{
			ClubID:     rec.ClubID,
			Lie:        rec.Lie,
			Meters:     rec.Meters,
			Yards:      rec.Meters * models.MetersToYards,
			HoleNumber: rec.HoleNumber,
		})
	}
	return shots, nil
}
