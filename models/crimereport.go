package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CrimeReport holds the normalized structure for a crime report stored in crime_reports
type CrimeReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DrNo         string             `bson:"dr_no" json:"dr_no"`
	DateReported string             `bson:"date_reported" json:"date_reported"`
	DateOccurred string             `bson:"date_occurred" json:"date_occurred"`
	TimeOccurred string             `bson:"time_occurred" json:"time_occurred"`
	Area         Area               `bson:"area" json:"area"`
	Crime        []CrimeCode        `bson:"crime" json:"crime"`
	Mocodes      *string            `bson:"mocodes" json:"mocodes"`
	Victim       Victim             `bson:"victim" json:"victim"`
	Weapon       Weapon             `bson:"weapon" json:"weapon"`
	Location     Location           `bson:"location" json:"location"`
	Status       Status             `bson:"status" json:"status"`
}

// Area holds the LAPD geographic area a report belongs to
type Area struct {
	No           string `bson:"no" json:"no"`
	Name         string `bson:"name" json:"name"`
	ReportDistNo string `bson:"report_dist_no" json:"report_dist_no"`
}

// CrimeCode is a single committed crime. Severity 1 is the primary crime and
// is the only entry that carries a description.
type CrimeCode struct {
	Severity    int     `bson:"severity" json:"severity"`
	Code        string  `bson:"code" json:"code"`
	Description *string `bson:"description" json:"description"`
}

// Victim holds the victim demographics, nil when absent from the source record
type Victim struct {
	Age     *int    `bson:"age" json:"age"`
	Sex     *string `bson:"sex" json:"sex"`
	Descent *string `bson:"descent" json:"descent"`
}

// Weapon is stored as an empty document when the source record has no weapon
type Weapon struct {
	Code        string `bson:"code,omitempty" json:"code,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// IsEmpty reports whether no weapon was recorded
func (w Weapon) IsEmpty() bool {
	return w.Code == "" && w.Description == ""
}

// Location holds the premises, address and coordinates of the incident
type Location struct {
	Premis      Premis      `bson:"premis" json:"premis"`
	Location    string      `bson:"location" json:"location"`
	Street      *string     `bson:"street" json:"street"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// Premis describes the type of structure or place where the crime occurred
type Premis struct {
	Code        string `bson:"code" json:"code"`
	Description string `bson:"description" json:"description"`
}

// Coordinates of the incident. (0,0) is the source's sentinel for a missing location.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Status holds the investigation status
type Status struct {
	Code        string `bson:"code" json:"code"`
	Description string `bson:"description" json:"description"`
}
