package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Upvote is a single officer endorsement of a crime report, stored in upvotes.
// An officer can upvote a given report at most once.
type Upvote struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Officer    UpvoteOfficer      `bson:"officer" json:"officer"`
	Report     UpvoteReport       `bson:"report" json:"report"`
	UpvoteDate string             `bson:"upvote_date" json:"upvote_date"`
}

// UpvoteOfficer is the denormalized officer embedded in an upvote
type UpvoteOfficer struct {
	BadgeNo string `bson:"badge_no" json:"badge_no"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
}

// UpvoteReport is the denormalized report reference embedded in an upvote
type UpvoteReport struct {
	DrNo string `bson:"dr_no" json:"dr_no"`
	Area Area   `bson:"area" json:"area"`
}

// UpvoteInput is the request payload for creating an upvote. Nil pointers are
// missing keys.
type UpvoteInput struct {
	Officer    *OfficerInput `json:"officer"`
	Report     *ReportInput  `json:"report"`
	UpvoteDate *string       `json:"upvote_date"`
}

// OfficerInput is the officer section of an UpvoteInput
type OfficerInput struct {
	BadgeNo *FlexString `json:"badge_no"`
	Name    *string     `json:"name"`
	Email   *string     `json:"email"`
}

// ReportInput is the report section of an UpvoteInput
type ReportInput struct {
	DrNo *FlexString `json:"dr_no"`
	Area *AreaInput  `json:"area"`
}

// AreaInput is the area sent with an upvote. Codes may arrive as numbers.
type AreaInput struct {
	No           *FlexString `json:"no"`
	Name         *FlexString `json:"name"`
	ReportDistNo *FlexString `json:"report_dist_no"`
}

// ToArea converts the input into an Area, absent values become empty strings
func (a AreaInput) ToArea() Area {
	return Area{No: a.No.String(), Name: a.Name.String(), ReportDistNo: a.ReportDistNo.String()}
}

// ToUpvote converts a validated input into the stored document shape. The
// handler replaces the officer and area details with the stored records.
func (in UpvoteInput) ToUpvote() Upvote {
	u := Upvote{}
	if in.UpvoteDate != nil {
		u.UpvoteDate = *in.UpvoteDate
	}
	if in.Officer != nil {
		u.Officer.BadgeNo = in.Officer.BadgeNo.String()
		if in.Officer.Name != nil {
			u.Officer.Name = *in.Officer.Name
		}
		if in.Officer.Email != nil {
			u.Officer.Email = *in.Officer.Email
		}
	}
	if in.Report != nil {
		u.Report.DrNo = in.Report.DrNo.String()
		if in.Report.Area != nil {
			u.Report.Area = in.Report.Area.ToArea()
		}
	}
	return u
}

// WithReferences copies the officer name and email and the report area from
// the stored records over the client supplied values
func (u Upvote) WithReferences(report CrimeReport, officer PoliceOfficer) Upvote {
	u.Report.Area = report.Area
	u.Officer.Name = officer.Name
	u.Officer.Email = officer.Email
	return u
}
