package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/linesmerrill/la-crime-api/models"
)

var (
	dayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	upvoteFields  = []string{"officer", "report", "upvote_date"}
	officerFields = []string{"badge_no", "name", "email"}
	reportFields  = []string{"dr_no", "area"}
)

// ValidateUpvote checks that the upvote payload carries all its top level keys
func ValidateUpvote(in *models.UpvoteInput) (bool, string) {
	if in == nil || (in.Officer == nil && in.Report == nil && in.UpvoteDate == nil) {
		return false, "Upvote data is missing."
	}
	if in.Officer == nil || in.Report == nil || in.UpvoteDate == nil {
		return false, fmt.Sprintf("Missing required fields: %s", strings.Join(upvoteFields, ", "))
	}
	return true, ""
}

// ValidateOfficer checks that the officer section carries badge_no, name and email
func ValidateOfficer(in *models.OfficerInput) (bool, string) {
	if in == nil || (in.BadgeNo == nil && in.Name == nil && in.Email == nil) {
		return false, "Officer data is missing."
	}
	if in.BadgeNo == nil || in.Name == nil || in.Email == nil {
		return false, fmt.Sprintf("Missing required officer fields: %s", strings.Join(officerFields, ", "))
	}
	return true, ""
}

// ValidateReport checks that the report section carries dr_no and area
func ValidateReport(in *models.ReportInput) (bool, string) {
	if in == nil || (in.DrNo == nil && in.Area == nil) {
		return false, "Report data is missing."
	}
	if in.DrNo == nil || in.Area == nil {
		return false, fmt.Sprintf("Missing required report fields: %s", strings.Join(reportFields, ", "))
	}
	return true, ""
}

// CheckUpvote runs every upvote check in order and reports the first failure
// as an input error. upvote_date must be a calendar date (YYYY-MM-DD).
func CheckUpvote(in *models.UpvoteInput) error {
	if ok, msg := ValidateUpvote(in); !ok {
		return models.NewInputError("", msg)
	}
	if ok, msg := ValidateOfficer(in.Officer); !ok {
		return models.NewInputError("", msg)
	}
	if ok, msg := ValidateReport(in.Report); !ok {
		return models.NewInputError("", msg)
	}
	if !IsValidDay(*in.UpvoteDate) {
		return models.NewInputError("upvote_date", "must be a string in 'YYYY-MM-DD' format")
	}
	return nil
}

// IsValidDay checks that day is a real calendar date in YYYY-MM-DD form
func IsValidDay(day string) bool {
	if !dayRegex.MatchString(day) {
		return false
	}
	_, err := time.Parse("2006-01-02", day)
	return err == nil
}
