package models

// CrimeCodeCount is a number of crime entries for one crime code
type CrimeCodeCount struct {
	Code  string `bson:"code" json:"code"`
	Count int    `bson:"count" json:"count"`
}

// DayCount is a number of reports for one calendar day (YYYY-MM-DD)
type DayCount struct {
	Date  string `bson:"date" json:"date"`
	Count int    `bson:"count" json:"count"`
}

// AreaTopCrimes lists the most common crimes of an area, most common first
type AreaTopCrimes struct {
	Area      string           `bson:"area" json:"area"`
	TopCrimes []AreaCrimeCount `bson:"top_crimes" json:"top_crimes"`
}

// AreaCrimeCount is a number of crime entries for one crime code within an area
type AreaCrimeCount struct {
	CrimeCode string `bson:"crime_code" json:"crime_code"`
	Count     int    `bson:"count" json:"count"`
}

// WeaponAreas is a weapon used for the same crime code in several areas
type WeaponAreas struct {
	CrimeCode string   `bson:"crime_code" json:"crime_code"`
	Weapon    string   `bson:"weapon" json:"weapon"`
	Areas     []string `bson:"areas" json:"areas"`
}

// ReportUpvotes is the number of upvotes a report received
type ReportUpvotes struct {
	DrNo        string `bson:"dr_no" json:"dr_no"`
	UpvoteCount int    `bson:"upvote_count" json:"upvote_count"`
}

// OfficerUpvotes is the number of upvotes an officer cast
type OfficerUpvotes struct {
	BadgeNo      string `bson:"badge_no" json:"badge_no"`
	Name         string `bson:"name" json:"name"`
	TotalUpvotes int    `bson:"total_upvotes" json:"total_upvotes"`
}

// OfficerAreaCoverage is the number of distinct areas an officer upvoted reports in
type OfficerAreaCoverage struct {
	BadgeNo          string `bson:"badge_no" json:"badge_no"`
	Name             string `bson:"name" json:"name"`
	TotalUniqueAreas int    `bson:"total_unique_areas" json:"total_unique_areas"`
}

// SharedEmail is an officer email seen under more than one badge number
type SharedEmail struct {
	OfficerEmail       string   `bson:"officer_email" json:"officer_email"`
	UniqueBadgeNumbers []string `bson:"unique_badge_numbers" json:"unique_badge_numbers"`
	ReportDrNos        []string `bson:"report_dr_nos" json:"report_dr_nos"`
}

// OfficerArea is an area touched by an officer's upvotes
type OfficerArea struct {
	Area Area `bson:"area" json:"area"`
}
