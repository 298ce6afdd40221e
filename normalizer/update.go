package normalizer

import (
	"strconv"

	"github.com/linesmerrill/la-crime-api/models"
)

// Denormalize turns a stored report back into its flat form so a partial
// update can be merged over it and normalized again.
func Denormalize(report models.CrimeReport) models.RawCrimeInput {
	raw := models.RawCrimeInput{
		DrNo:        models.FlexStringPtr(report.DrNo),
		DateRptd:    models.StringPtr(report.DateReported),
		DateOcc:     models.StringPtr(report.DateOccurred),
		TimeOcc:     models.FlexStringPtr(report.TimeOccurred),
		Area:        models.FlexStringPtr(report.Area.No),
		AreaName:    models.StringPtr(report.Area.Name),
		RptDistNo:   models.FlexStringPtr(report.Area.ReportDistNo),
		Mocodes:     report.Mocodes,
		VictSex:     report.Victim.Sex,
		VictDescent: report.Victim.Descent,
		PremisCd:    models.FlexStringPtr(report.Location.Premis.Code),
		PremisDesc:  models.StringPtr(report.Location.Premis.Description),
		Location:    models.StringPtr(report.Location.Location),
		CrossStreet: report.Location.Street,
		Lat:         models.FlexFloatPtr(report.Location.Coordinates.Latitude),
		Lon:         models.FlexFloatPtr(report.Location.Coordinates.Longitude),
		Status:      models.StringPtr(report.Status.Code),
		StatusDesc:  models.StringPtr(report.Status.Description),
	}

	if report.Victim.Age != nil {
		raw.VictAge = models.FlexStringPtr(strconv.Itoa(*report.Victim.Age))
	}
	if !report.Weapon.IsEmpty() {
		raw.WeaponUsedCd = models.FlexStringPtr(report.Weapon.Code)
		raw.WeaponDesc = models.StringPtr(report.Weapon.Description)
	}

	for _, c := range report.Crime {
		code := models.FlexStringPtr(c.Code)
		switch c.Severity {
		case 1:
			raw.CrmCd = code
			raw.CrmCdDesc = c.Description
		case 2:
			raw.CrmCd2 = code
		case 3:
			raw.CrmCd3 = code
		case 4:
			raw.CrmCd4 = code
		}
	}
	return raw
}

// UpdateFields returns the top level document fields of report touched by the
// flat fields present in update, ready to be used as a $set document.
func UpdateFields(update models.RawCrimeInput, report models.CrimeReport) map[string]interface{} {
	set := map[string]interface{}{}
	if update.DrNo != nil {
		set["dr_no"] = report.DrNo
	}
	if update.DateRptd != nil {
		set["date_reported"] = report.DateReported
	}
	if update.DateOcc != nil {
		set["date_occurred"] = report.DateOccurred
	}
	if update.TimeOcc != nil {
		set["time_occurred"] = report.TimeOccurred
	}
	if update.Area != nil || update.AreaName != nil || update.RptDistNo != nil {
		set["area"] = report.Area
	}
	if update.CrmCd != nil || update.CrmCd2 != nil || update.CrmCd3 != nil || update.CrmCd4 != nil || update.CrmCdDesc != nil {
		set["crime"] = report.Crime
	}
	if update.Mocodes != nil {
		set["mocodes"] = report.Mocodes
	}
	if update.VictAge != nil || update.VictSex != nil || update.VictDescent != nil {
		set["victim"] = report.Victim
	}
	if update.WeaponUsedCd != nil || update.WeaponDesc != nil {
		set["weapon"] = report.Weapon
	}
	if update.PremisCd != nil || update.PremisDesc != nil || update.Location != nil ||
		update.CrossStreet != nil || update.Lat != nil || update.Lon != nil {
		set["location"] = report.Location
	}
	if update.Status != nil || update.StatusDesc != nil {
		set["status"] = report.Status
	}
	return set
}
