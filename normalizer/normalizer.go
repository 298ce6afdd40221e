// Package normalizer maps flat LA open data crime records onto the nested
// crime_reports document shape and back.
package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/linesmerrill/la-crime-api/models"
)

const (
	// DefaultStatusCode is stored when a record carries no status
	DefaultStatusCode = "IC"
	// DefaultStatusDescription is stored when a record carries no status description
	DefaultStatusDescription = "Invest Cont"
)

// ErrNoCrimeCode is returned when a record carries no crime code at all
var ErrNoCrimeCode = errors.New("record has no crime code")

// Normalize maps a raw record into a CrimeReport. It does not validate; callers
// run validation.ValidateFull first. It only fails on values that cannot be
// converted at all, such as a non numeric victim age, or when the crime
// sequence would be empty.
func Normalize(raw models.RawCrimeInput) (models.CrimeReport, error) {
	victim, err := victimData(raw)
	if err != nil {
		return models.CrimeReport{}, err
	}
	crimes := crimeCodes(raw)
	if len(crimes) == 0 {
		return models.CrimeReport{}, ErrNoCrimeCode
	}

	return models.CrimeReport{
		DrNo:         raw.DrNo.String(),
		DateReported: deref(raw.DateRptd),
		DateOccurred: deref(raw.DateOcc),
		TimeOccurred: raw.TimeOcc.String(),
		Area:         areaData(raw),
		Crime:        crimes,
		Mocodes:      raw.Mocodes,
		Victim:       victim,
		Weapon:       weaponData(raw),
		Location:     locationData(raw),
		Status:       statusData(raw),
	}, nil
}

func areaData(raw models.RawCrimeInput) models.Area {
	return models.Area{
		No:           raw.Area.String(),
		Name:         deref(raw.AreaName),
		ReportDistNo: raw.RptDistNo.String(),
	}
}

func victimData(raw models.RawCrimeInput) (models.Victim, error) {
	v := models.Victim{Sex: raw.VictSex, Descent: raw.VictDescent}
	if raw.VictAge != nil {
		age, err := strconv.Atoi(strings.TrimSpace(raw.VictAge.String()))
		if err != nil {
			return models.Victim{}, fmt.Errorf("vict_age %q is not a number", raw.VictAge.String())
		}
		v.Age = &age
	}
	return v, nil
}

// weaponData only fills the weapon when both the code and the description exist
func weaponData(raw models.RawCrimeInput) models.Weapon {
	code := raw.WeaponUsedCd.String()
	desc := deref(raw.WeaponDesc)
	if code == "" || desc == "" {
		return models.Weapon{}
	}
	return models.Weapon{Code: code, Description: desc}
}

// crimeCodes keeps the source order crm_cd, crm_cd_2..4 and skips empty codes.
// The primary description only goes on the severity 1 entry.
func crimeCodes(raw models.RawCrimeInput) []models.CrimeCode {
	codes := []*models.FlexString{raw.CrmCd, raw.CrmCd2, raw.CrmCd3, raw.CrmCd4}

	crimes := make([]models.CrimeCode, 0, len(codes))
	for i, c := range codes {
		code := strings.TrimSpace(c.String())
		if code == "" {
			continue
		}
		entry := models.CrimeCode{Severity: i + 1, Code: code}
		if i == 0 {
			entry.Description = raw.CrmCdDesc
		}
		crimes = append(crimes, entry)
	}
	return crimes
}

func locationData(raw models.RawCrimeInput) models.Location {
	var street *string
	if s := deref(raw.CrossStreet); s != "" {
		street = &s
	}
	var coords models.Coordinates
	if raw.Lat != nil {
		coords.Latitude = float64(*raw.Lat)
	}
	if raw.Lon != nil {
		coords.Longitude = float64(*raw.Lon)
	}
	return models.Location{
		Premis: models.Premis{
			Code:        raw.PremisCd.String(),
			Description: deref(raw.PremisDesc),
		},
		Location:    deref(raw.Location),
		Street:      street,
		Coordinates: coords,
	}
}

func statusData(raw models.RawCrimeInput) models.Status {
	s := models.Status{Code: DefaultStatusCode, Description: DefaultStatusDescription}
	if raw.Status != nil {
		s.Code = *raw.Status
	}
	if raw.StatusDesc != nil {
		s.Description = *raw.StatusDesc
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
