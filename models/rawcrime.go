package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawCrimeInput is a flat crime record as published by the LA open data feed.
// Every field is optional; a nil pointer means the key was absent or null.
type RawCrimeInput struct {
	DrNo         *FlexString `json:"dr_no,omitempty"`
	DateRptd     *string     `json:"date_rptd,omitempty"`
	DateOcc      *string     `json:"date_occ,omitempty"`
	TimeOcc      *FlexString `json:"time_occ,omitempty"`
	Area         *FlexString `json:"area,omitempty"`
	AreaName     *string     `json:"area_name,omitempty"`
	RptDistNo    *FlexString `json:"rpt_dist_no,omitempty"`
	CrmCd        *FlexString `json:"crm_cd,omitempty"`
	CrmCd2       *FlexString `json:"crm_cd_2,omitempty"`
	CrmCd3       *FlexString `json:"crm_cd_3,omitempty"`
	CrmCd4       *FlexString `json:"crm_cd_4,omitempty"`
	CrmCdDesc    *string     `json:"crm_cd_desc,omitempty"`
	Mocodes      *string     `json:"mocodes,omitempty"`
	VictAge      *FlexString `json:"vict_age,omitempty"`
	VictSex      *string     `json:"vict_sex,omitempty"`
	VictDescent  *string     `json:"vict_descent,omitempty"`
	WeaponUsedCd *FlexString `json:"weapon_used_cd,omitempty"`
	WeaponDesc   *string     `json:"weapon_desc,omitempty"`
	PremisCd     *FlexString `json:"premis_cd,omitempty"`
	PremisDesc   *string     `json:"premis_desc,omitempty"`
	Location     *string     `json:"location,omitempty"`
	CrossStreet  *string     `json:"cross_street,omitempty"`
	Lat          *FlexFloat  `json:"lat,omitempty"`
	Lon          *FlexFloat  `json:"lon,omitempty"`
	Status       *string     `json:"status,omitempty"`
	StatusDesc   *string     `json:"status_desc,omitempty"`
}

// IsEmpty reports whether no field at all was provided
func (r RawCrimeInput) IsEmpty() bool {
	return r == RawCrimeInput{}
}

// Merge returns a copy of r with every field present in update overriding r's value
func (r RawCrimeInput) Merge(update RawCrimeInput) RawCrimeInput {
	merged := r
	overlay(&merged.DrNo, update.DrNo)
	overlay(&merged.DateRptd, update.DateRptd)
	overlay(&merged.DateOcc, update.DateOcc)
	overlay(&merged.TimeOcc, update.TimeOcc)
	overlay(&merged.Area, update.Area)
	overlay(&merged.AreaName, update.AreaName)
	overlay(&merged.RptDistNo, update.RptDistNo)
	overlay(&merged.CrmCd, update.CrmCd)
	overlay(&merged.CrmCd2, update.CrmCd2)
	overlay(&merged.CrmCd3, update.CrmCd3)
	overlay(&merged.CrmCd4, update.CrmCd4)
	overlay(&merged.CrmCdDesc, update.CrmCdDesc)
	overlay(&merged.Mocodes, update.Mocodes)
	overlay(&merged.VictAge, update.VictAge)
	overlay(&merged.VictSex, update.VictSex)
	overlay(&merged.VictDescent, update.VictDescent)
	overlay(&merged.WeaponUsedCd, update.WeaponUsedCd)
	overlay(&merged.WeaponDesc, update.WeaponDesc)
	overlay(&merged.PremisCd, update.PremisCd)
	overlay(&merged.PremisDesc, update.PremisDesc)
	overlay(&merged.Location, update.Location)
	overlay(&merged.CrossStreet, update.CrossStreet)
	overlay(&merged.Lat, update.Lat)
	overlay(&merged.Lon, update.Lon)
	overlay(&merged.Status, update.Status)
	overlay(&merged.StatusDesc, update.StatusDesc)
	return merged
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// FlexString accepts both JSON strings and JSON numbers. The LA feed sends
// numeric codes as strings, hand written payloads often send them as numbers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying value
func (f *FlexString) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// FlexFloat accepts both JSON numbers and numeric strings ("34.0141")
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("expected numeric string, got %q", s)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("expected number, got %s", string(b))
	}
	*f = FlexFloat(v)
	return nil
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// FlexStringPtr returns a pointer to a FlexString holding s
func FlexStringPtr(s string) *FlexString {
	f := FlexString(s)
	return &f
}

// FlexFloatPtr returns a pointer to a FlexFloat holding v
func FlexFloatPtr(v float64) *FlexFloat {
	f := FlexFloat(v)
	return &f
}
