package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/golfshots/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadClubs_RenamesIDToClubID(t *testing.T) {
	path := writeFile(t, ClubFile, `{"data": [
		{"id": 1, "clubTypeId": 10, "shaftLength": 45.5, "flexTypeId": 2},
		{"id": 2, "clubTypeId": 11, "shaftLength": 38.0, "flexTypeId": 3}
	]}`)

	clubs, err := LoadClubs(path)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	assert.Equal(t, 1, clubs[0].ClubID)
	assert.Equal(t, 10, clubs[0].ClubTypeID)
	assert.Equal(t, 45.5, clubs[0].ShaftLength)
	assert.Equal(t, 2, clubs[0].FlexTypeID)
	assert.Equal(t, 2, clubs[1].ClubID)
}

func TestLoadClubs_MissingFile(t *testing.T) {
	_, err := LoadClubs(filepath.Join(t.TempDir(), ClubFile))
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestLoadClubs_InvalidJSON(t *testing.T) {
	path := writeFile(t, ClubFile, `{"data": [`)
	_, err := LoadClubs(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadClubs_MissingDataKey(t *testing.T) {
	path := writeFile(t, ClubFile, `{"records": []}`)
	_, err := LoadClubs(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadClubs_ArrayRoot(t *testing.T) {
	path := writeFile(t, ClubFile, `[{"id": 1}]`)
	_, err := LoadClubs(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadClubTypes_RenamesValueToClubTypeID(t *testing.T) {
	path := writeFile(t, ClubTypesFile, `{"data": [
		{"value": 10, "name": "Driver", "loftAngle": 10.5},
		{"value": 11, "name": "7 Iron", "loftAngle": 34.0}
	]}`)

	types, err := LoadClubTypes(path)
	require.NoError(t, err)
	require.Len(t, types, 2)

	assert.Equal(t, 10, types[0].ClubTypeID)
	assert.Equal(t, "Driver", types[0].Name)
	assert.Equal(t, 10.5, types[0].LoftAngle)
	assert.Equal(t, 11, types[1].ClubTypeID)
	assert.Equal(t, "7 Iron", types[1].Name)
}

func TestLoadCourses_FlattensSingleEntryMappings(t *testing.T) {
	path := writeFile(t, CourseFile, `{"data": [{"7": "Pebble Creek"}, {"12": "Oak Hollow"}]}`)

	courses, err := LoadCourses(path)
	require.NoError(t, err)

	want := []models.Course{
		{CourseID: 7, CourseName: "Pebble Creek"},
		{CourseID: 12, CourseName: "Oak Hollow"},
	}
	assert.Equal(t, want, courses)
}

func TestLoadCourses_MultiKeyEntry(t *testing.T) {
	path := writeFile(t, CourseFile, `{"data": [{"7": "Pebble Creek", "8": "Second Name"}]}`)
	_, err := LoadCourses(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadCourses_EmptyEntry(t *testing.T) {
	path := writeFile(t, CourseFile, `{"data": [{}]}`)
	_, err := LoadCourses(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadCourses_NonIntegerKey(t *testing.T) {
	path := writeFile(t, CourseFile, `{"data": [{"abc": "Pebble Creek"}]}`)
	_, err := LoadCourses(path)
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoadShots_DerivesYards(t *testing.T) {
	path := writeFile(t, ShotFile, `{"data": [
		{"clubId": 1, "lie": "TeeBox", "meters": 200, "holeNumber": 1},
		{"clubId": 2, "lie": "Fairway", "meters": 180, "holeNumber": 4},
		{"clubId": 0, "lie": "Green", "meters": 2.5, "holeNumber": 4}
	]}`)

	shots, err := LoadShots(path)
	require.NoError(t, err)
	require.Len(t, shots, 3)

	for _, s := range shots {
		assert.Equal(t, s.Meters*1.09361, s.Yards)
	}
	assert.Equal(t, models.Lie("Fairway"), shots[1].Lie)
	assert.Equal(t, 4, shots[1].HoleNumber)
	assert.Equal(t, 0, shots[2].ClubID)
}

func TestLoadShots_EmptyData(t *testing.T) {
	path := writeFile(t, ShotFile, `{"data": []}`)

	shots, err := LoadShots(path)
	require.NoError(t, err)
	assert.Empty(t, shots)
}
