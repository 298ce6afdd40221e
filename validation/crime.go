// Package validation checks inbound crime records and upvote payloads before
// they are normalized and written.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/linesmerrill/la-crime-api/models"
)

// Field keys and messages reported back to the caller
const (
	FieldDrNo        = "dr_no"
	FieldCrmCd       = "crm_cd"
	FieldVictAge     = "vict_age"
	FieldVictSex     = "vict_sex"
	FieldVictDescent = "vict_descent"
	FieldCoordinates = "coordinates"

	MsgInvalidDrNo        = "Invalid 'dr_no'. It must be a 9-digit number."
	MsgImmutableDrNo      = "'dr_no' cannot be changed."
	MsgMissingCrmCd       = "Missing primary crime code 'crm_cd'."
	MsgInvalidVictAge     = "Invalid victim age."
	MsgInvalidVictSex     = "Invalid victim sex."
	MsgInvalidVictDescent = "Invalid victim descent."
	MsgInvalidCoordinates = "Invalid Latitude or/and longitude."
)

var (
	drNoRegex = regexp.MustCompile(`^\d{9}$`)
	ageRegex  = regexp.MustCompile(`^\d{1,2}$`)

	validSexes = map[string]bool{"F": true, "M": true, "X": true}

	// LAPD victim descent codes
	validDescents = map[string]bool{
		"A": true, "B": true, "C": true, "D": true, "F": true, "G": true, "H": true,
		"I": true, "J": true, "K": true, "L": true, "O": true, "P": true, "S": true,
		"U": true, "V": true, "W": true, "X": true, "Z": true,
	}
)

// IsValidDrNo checks that dr_no is exactly 9 ASCII digits
func IsValidDrNo(drNo string) bool {
	return drNoRegex.MatchString(drNo)
}

// IsValidAge checks that age is a 1-2 digit number between 0 and 99
func IsValidAge(age string) bool {
	if !ageRegex.MatchString(age) {
		return false
	}
	n, err := strconv.Atoi(age)
	return err == nil && n >= 0 && n <= 99
}

// IsValidSex checks that sex is one of F, M or X
func IsValidSex(sex string) bool {
	return validSexes[sex]
}

// IsValidDescent checks that descent is a known descent code
func IsValidDescent(descent string) bool {
	return validDescents[descent]
}

// IsValidCoordinates rejects a missing or zero latitude or longitude
func IsValidCoordinates(lat, lon *models.FlexFloat) bool {
	return lat != nil && lon != nil && *lat != 0 && *lon != 0
}

// IsValidCrimeCode rejects a missing or blank crime code
func IsValidCrimeCode(code *models.FlexString) bool {
	return code != nil && strings.TrimSpace(code.String()) != ""
}

// ValidateFull checks a complete record. Every violation is collected; an
// empty map means the record is valid. dr_no, crm_cd and the coordinates are
// required, victim fields are checked when present.
func ValidateFull(raw models.RawCrimeInput) map[string]string {
	errs := map[string]string{}

	if raw.DrNo == nil || !IsValidDrNo(raw.DrNo.String()) {
		errs[FieldDrNo] = MsgInvalidDrNo
	}
	if !IsValidCrimeCode(raw.CrmCd) {
		errs[FieldCrmCd] = MsgMissingCrmCd
	}
	checkVictim(raw, errs)
	if !IsValidCoordinates(raw.Lat, raw.Lon) {
		errs[FieldCoordinates] = MsgInvalidCoordinates
	}
	return errs
}

// ValidatePartial checks only the fields present in update. When only one of
// lat/lon is updated the other one is taken from the existing report.
func ValidatePartial(update models.RawCrimeInput, existing models.CrimeReport) map[string]string {
	errs := map[string]string{}

	if update.DrNo != nil {
		switch {
		case !IsValidDrNo(update.DrNo.String()):
			errs[FieldDrNo] = MsgInvalidDrNo
		case update.DrNo.String() != existing.DrNo:
			errs[FieldDrNo] = MsgImmutableDrNo
		}
	}
	// crm_cd may be replaced but never blanked
	if update.CrmCd != nil && !IsValidCrimeCode(update.CrmCd) {
		errs[FieldCrmCd] = MsgMissingCrmCd
	}
	checkVictim(update, errs)

	if update.Lat != nil || update.Lon != nil {
		lat, lon := update.Lat, update.Lon
		if lat == nil {
			lat = models.FlexFloatPtr(existing.Location.Coordinates.Latitude)
		}
		if lon == nil {
			lon = models.FlexFloatPtr(existing.Location.Coordinates.Longitude)
		}
		if !IsValidCoordinates(lat, lon) {
			errs[FieldCoordinates] = MsgInvalidCoordinates
		}
	}
	return errs
}

func checkVictim(raw models.RawCrimeInput, errs map[string]string) {
	if raw.VictAge != nil && !IsValidAge(raw.VictAge.String()) {
		errs[FieldVictAge] = MsgInvalidVictAge
	}
	if raw.VictSex != nil && !IsValidSex(*raw.VictSex) {
		errs[FieldVictSex] = MsgInvalidVictSex
	}
	if raw.VictDescent != nil && !IsValidDescent(*raw.VictDescent) {
		errs[FieldVictDescent] = MsgInvalidVictDescent
	}
}
