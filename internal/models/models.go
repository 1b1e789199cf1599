package models

// Lie is the terrain category a shot was played from.
type Lie string

const (
	LieTeeBox  Lie = "TeeBox"
	LieFairway Lie = "Fairway"
	LieRough   Lie = "Rough"
	LieBunker  Lie = "Bunker"
	LieGreen   Lie = "Green"
)

// MetersToYards converts a distance recorded in meters to yards.
const MetersToYards = 1.09361

// UnknownClub is the name filled in for shots whose club could not be
// resolved through the club and club-type tables.
const UnknownClub = "Unknown Club"

type Club struct {
	ClubID      int     `json:"clubId"`
	ClubTypeID  int     `json:"clubTypeId"`
	ShaftLength float64 `json:"shaftLength"`
	FlexTypeID  int     `json:"flexTypeId"`
}

type ClubType struct {
	ClubTypeID int     `json:"clubTypeId"`
	Name       string  `json:"name"`
	LoftAngle  float64 `json:"loftAngle"`
}

type Course struct {
	CourseID   int    `json:"courseId"`
	CourseName string `json:"courseName"`
}

type Shot struct {
	ClubID     int     `json:"clubId"`
	Lie        Lie     `json:"lie"`
	Meters     float64 `json:"meters"`
	Yards      float64 `json:"yards"`
	HoleNumber int     `json:"holeNumber"`
}

// MergedShot is a Shot joined with its Club and ClubType. Pointer fields
// are nil when the shot's clubId (or the club's clubTypeId) matched nothing.
// Name is always set: unmatched rows carry UnknownClub.
type MergedShot struct {
	ClubID      int      `json:"clubId"`
	Lie         Lie      `json:"lie"`
	Meters      float64  `json:"meters"`
	Yards       float64  `json:"yards"`
	HoleNumber  int      `json:"holeNumber"`
	ClubTypeID  *int     `json:"clubTypeId"`
	ShaftLength *float64 `json:"shaftLength"`
	FlexTypeID  *int     `json:"flexTypeId"`
	Name        string   `json:"name"`
	LoftAngle   *float64 `json:"loftAngle"`
}
