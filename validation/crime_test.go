package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/la-crime-api/models"
)

func TestIsValidDrNo(t *testing.T) {
	assert.True(t, IsValidDrNo("190326475"))
	assert.True(t, IsValidDrNo("000000001"))
	assert.False(t, IsValidDrNo("19032647"))
	assert.False(t, IsValidDrNo("1903264751"))
	assert.False(t, IsValidDrNo("19032647a"))
	assert.False(t, IsValidDrNo(" 190326475"))
	assert.False(t, IsValidDrNo("١٢٣٤٥٦٧٨٩"))
}

func TestIsValidAge(t *testing.T) {
	for _, age := range []string{"0", "7", "31", "99"} {
		assert.True(t, IsValidAge(age), age)
	}
	for _, age := range []string{"", "-1", "100", "3a", "4.5"} {
		assert.False(t, IsValidAge(age), age)
	}
}

func TestIsValidSexAndDescent(t *testing.T) {
	assert.True(t, IsValidSex("F"))
	assert.True(t, IsValidSex("X"))
	assert.False(t, IsValidSex("f"))
	assert.False(t, IsValidSex("H"))

	for _, d := range []string{"A", "B", "H", "W", "Z"} {
		assert.True(t, IsValidDescent(d), d)
	}
	assert.False(t, IsValidDescent("E"))
	assert.False(t, IsValidDescent(""))
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidCoordinates(models.FlexFloatPtr(34.05), models.FlexFloatPtr(-118.24)))
	assert.False(t, IsValidCoordinates(models.FlexFloatPtr(0), models.FlexFloatPtr(-118.24)))
	assert.False(t, IsValidCoordinates(models.FlexFloatPtr(34.05), models.FlexFloatPtr(0)))
	assert.False(t, IsValidCoordinates(nil, models.FlexFloatPtr(-118.24)))
}

func TestValidateFull(t *testing.T) {
	raw := models.RawCrimeInput{
		DrNo:        models.FlexStringPtr("190326475"),
		CrmCd:       models.FlexStringPtr("510"),
		VictAge:     models.FlexStringPtr("31"),
		VictSex:     models.StringPtr("M"),
		VictDescent: models.StringPtr("H"),
		Lat:         models.FlexFloatPtr(34.05),
		Lon:         models.FlexFloatPtr(-118.24),
	}
	assert.Empty(t, ValidateFull(raw))

	// victim fields are optional
	raw.VictAge, raw.VictSex, raw.VictDescent = nil, nil, nil
	assert.Empty(t, ValidateFull(raw))

	errs := ValidateFull(models.RawCrimeInput{VictDescent: models.StringPtr("Q")})
	assert.Equal(t, map[string]string{
		FieldDrNo:        MsgInvalidDrNo,
		FieldCrmCd:       MsgMissingCrmCd,
		FieldVictDescent: MsgInvalidVictDescent,
		FieldCoordinates: MsgInvalidCoordinates,
	}, errs)
}

func TestValidateFullRequiresCrimeCode(t *testing.T) {
	raw := models.RawCrimeInput{
		DrNo: models.FlexStringPtr("190326475"),
		Lat:  models.FlexFloatPtr(34.03),
		Lon:  models.FlexFloatPtr(-118.35),
	}
	assert.Equal(t, map[string]string{FieldCrmCd: MsgMissingCrmCd}, ValidateFull(raw))

	raw.CrmCd = models.FlexStringPtr("  ")
	assert.Equal(t, map[string]string{FieldCrmCd: MsgMissingCrmCd}, ValidateFull(raw))

	// secondary codes alone do not make a primary crime
	raw.CrmCd, raw.CrmCd2 = nil, models.FlexStringPtr("998")
	assert.Equal(t, map[string]string{FieldCrmCd: MsgMissingCrmCd}, ValidateFull(raw))

	raw.CrmCd = models.FlexStringPtr("510")
	assert.Empty(t, ValidateFull(raw))
}

func TestValidatePartial(t *testing.T) {
	existing := models.CrimeReport{
		DrNo: "190326475",
		Location: models.Location{
			Coordinates: models.Coordinates{Latitude: 34.05, Longitude: -118.24},
		},
	}

	assert.Empty(t, ValidatePartial(models.RawCrimeInput{VictSex: models.StringPtr("F")}, existing))
	assert.Empty(t, ValidatePartial(models.RawCrimeInput{DrNo: models.FlexStringPtr("190326475")}, existing))
	assert.Empty(t, ValidatePartial(models.RawCrimeInput{Lat: models.FlexFloatPtr(34.1)}, existing))

	errs := ValidatePartial(models.RawCrimeInput{DrNo: models.FlexStringPtr("190326476")}, existing)
	assert.Equal(t, MsgImmutableDrNo, errs[FieldDrNo])

	errs = ValidatePartial(models.RawCrimeInput{DrNo: models.FlexStringPtr("12")}, existing)
	assert.Equal(t, MsgInvalidDrNo, errs[FieldDrNo])

	errs = ValidatePartial(models.RawCrimeInput{Lon: models.FlexFloatPtr(0)}, existing)
	assert.Equal(t, MsgInvalidCoordinates, errs[FieldCoordinates])

	assert.Empty(t, ValidatePartial(models.RawCrimeInput{CrmCd: models.FlexStringPtr("624")}, existing))
	errs = ValidatePartial(models.RawCrimeInput{CrmCd: models.FlexStringPtr("")}, existing)
	assert.Equal(t, map[string]string{FieldCrmCd: MsgMissingCrmCd}, errs)

	errs = ValidatePartial(models.RawCrimeInput{VictAge: models.FlexStringPtr("120")}, existing)
	assert.Equal(t, map[string]string{FieldVictAge: MsgInvalidVictAge}, errs)
}
