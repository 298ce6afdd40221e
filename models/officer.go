package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PoliceOfficer is a reference record from police_officers. The collection is
// loaded offline; the API only reads it to check that an officer exists.
type PoliceOfficer struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BadgeNo string             `bson:"badge_no" json:"badge_no"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
}
