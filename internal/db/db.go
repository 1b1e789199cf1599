package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/antigravity/golfshots/internal/models"
)

// Store holds the four source tables in an in-memory sqlite database and
// runs the merge query over them. It exists only for the duration of the
// startup snapshot build; nothing is persisted to disk.
type Store struct {
	db *sql.DB
}

func Open() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	createClubsTable := `CREATE TABLE clubs (
		club_id INTEGER PRIMARY KEY,
		club_type_id INTEGER,
		shaft_length REAL,
		flex_type_id INTEGER
	);`

	createClubTypesTable := `CREATE TABLE club_types (
		club_type_id INTEGER PRIMARY KEY,
		name TEXT,
		loft_angle REAL
	);`

	createCoursesTable := `CREATE TABLE courses (
		course_id INTEGER PRIMARY KEY,
		course_name TEXT
	);`

	createShotsTable := `CREATE TABLE shots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		club_id INTEGER,
		lie TEXT,
		meters REAL,
		yards REAL,
		hole_number INTEGER
	);`

	for _, stmt := range []string{createClubsTable, createClubTypesTable, createCoursesTable, createShotsTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// InsertClubs loads the club table. club_id is a primary key inserted with
// OR IGNORE, so the first record for a given id wins and later duplicates
// are dropped.
func (s *Store) InsertClubs(clubs []models.Club) error {
	for _, c := range clubs {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO clubs (club_id, club_type_id, shaft_length, flex_type_id) VALUES (?, ?, ?, ?)",
			c.ClubID, c.ClubTypeID, c.ShaftLength, c.FlexTypeID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// InsertClubTypes loads the club-type lookup table. Same keep-first
// duplicate policy as InsertClubs.
func (s *Store) InsertClubTypes(types []models.ClubType) error {
	for _, t := range types {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO club_types (club_type_id, name, loft_angle) VALUES (?, ?, ?)",
			t.ClubTypeID, t.Name, t.LoftAngle,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) InsertCourses(courses []models.Course) error {
	for _, c := range courses {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO courses (course_id, course_name) VALUES (?, ?)",
			c.CourseID, c.CourseName,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) InsertShots(shots []models.Shot) error {
	for _, sh := range shots {
		_, err := s.db.Exec(
			"INSERT INTO shots (club_id, lie, meters, yards, hole_number) VALUES (?, ?, ?, ?, ?)",
			sh.ClubID, string(sh.Lie), sh.Meters, sh.Yards, sh.HoleNumber,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// MergedShots left-joins shots with clubs, then with club types, preserving
// shot insertion order and cardinality. Rows whose club or club type did not
// match keep nil numeric fields and get the UnknownClub name sentinel.
func (s *Store) MergedShots() ([]models.MergedShot, error) {
	rows, err := s.db.Query(`
		SELECT sh.club_id, sh.lie, sh.meters, sh.yards, sh.hole_number,
		       c.club_type_id, c.shaft_length, c.flex_type_id,
		       t.name, t.loft_angle
		FROM shots sh
		LEFT JOIN clubs c ON sh.club_id = c.club_id
		LEFT JOIN club_types t ON c.club_type_id = t.club_type_id
		ORDER BY sh.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var merged []models.MergedShot
	for rows.Next() {
		var (
			m           models.MergedShot
			lie         string
			clubTypeID  sql.NullInt64
			shaftLength sql.NullFloat64
			flexTypeID  sql.NullInt64
			name        sql.NullString
			loftAngle   sql.NullFloat64
		)
		if err := rows.Scan(&m.ClubID, &lie, &m.Meters, &m.Yards, &m.HoleNumber,
			&clubTypeID, &shaftLength, &flexTypeID, &name, &loftAngle); err != nil {
			return nil, err
		}
		m.Lie = models.Lie(lie)
		if clubTypeID.Valid {
			v := int(clubTypeID.Int64)
			m.ClubTypeID = &v
		}
		if shaftLength.Valid {
			v := shaftLength.Float64
			m.ShaftLength = &v
		}
		if flexTypeID.Valid {
			v := int(flexTypeID.Int64)
			m.FlexTypeID = &v
		}
		if loftAngle.Valid {
			v := loftAngle.Float64
			m.LoftAngle = &v
		}
		if name.Valid {
			m.Name = name.String
		} else {
			m.Name = models.UnknownClub
		}
		merged = append(merged, m)
	}
	return merged, rows.Err()
}
