package importer

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestRecordsFromSheetHeaderFallbacks(t *testing.T) {
	f := workbook(t, [][]any{
		{"Name", "Suburb", "Province", "Full Address", "Phone Number", "Gel Manicure", "Parking", "vegan_polish", "Latitude", "Reviews", "Price ($-$$$)"},
		{"Top End Nails", "Y = Darwin", "Northern Territory", "1 Smith St", "(08) 8981 5432", "Yes", "no", "TRUE", "-12.46", "17", "$$"},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"Glow", "Hobart", "TAS", "", "", "1", "", "", "not a number", "", "fancy"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadWorkbookFrom(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank rows are dropped")

	recs := RecordsFromSheet(rows)
	first := recs[0]
	assert.Equal(t, "Top End Nails", first.Name)
	assert.Equal(t, "Darwin", first.City)
	assert.Equal(t, "Northern Territory", first.State)
	assert.Equal(t, "1 Smith St", first.Address)
	assert.Equal(t, "(08) 8981 5432", first.Phone)
	assert.True(t, first.Flags["gel_nails"])
	assert.False(t, first.Flags["parking"])
	assert.True(t, first.Flags["vegan_polish"])
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, -12.46, *first.Latitude, 1e-9)
	require.NotNil(t, first.ReviewCount)
	assert.Equal(t, 17, *first.ReviewCount)
	require.NotNil(t, first.PriceRange)
	assert.Equal(t, "mid-range", *first.PriceRange)

	second := recs[1]
	assert.Equal(t, 2, second.Row)
	assert.Nil(t, second.Latitude)
	assert.Nil(t, second.PriceRange)
	assert.True(t, second.Flags["gel_nails"])
}

func TestLookupPrefersFirstNonEmptySpelling(t *testing.T) {
	row := SheetRow{"business name": "", "name": "Fallback", "city": "Perth"}
	assert.Equal(t, "Fallback", row.Lookup(nameHeaders...))
	assert.Equal(t, "", row.Lookup(emailHeaders...))
}

func TestCleanCityName(t *testing.T) {
	assert.Equal(t, "Darwin", CleanCityName("Y = Darwin"))
	assert.Equal(t, "Darwin", CleanCityName("Y=Darwin "))
	assert.Equal(t, "Alice Springs", CleanCityName(" Alice Springs "))
	assert.Equal(t, "Darwin", CleanCityName("Darwin ="))
	assert.Equal(t, "Perth", CleanCityName("= Perth"))
}

func TestYesNo(t *testing.T) {
	for _, v := range []string{"Yes", "TRUE", "1", " yes "} {
		assert.True(t, YesNo(v), v)
	}
	for _, v := range []string{"No", "", "0", "x", "maybe"} {
		assert.False(t, YesNo(v), v)
	}
}

func TestGenerators(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	assert.Regexp(t, regexp.MustCompile(`^\(08\) \d{4} \d{4}$`), GeneratePhone(rng, "WA"))
	assert.Regexp(t, regexp.MustCompile(`^\(02\) `), GeneratePhone(rng, "XX"))

	for i := 0; i < 50; i++ {
		pc := GeneratePostcode(rng, "NT")
		assert.GreaterOrEqual(t, pc, 800)
		assert.LessOrEqual(t, pc, 899)
	}
	assert.Regexp(t, regexp.MustCompile(`^\d+ .+, Darwin NT 08\d\d$`), GenerateAddress(rng, "Darwin", "NT", 0))
	assert.Equal(t, "https://www.topendnails.com.au", WebsiteFor("Top End Nails"))
}

func TestCatalogueRecordsAreNumbered(t *testing.T) {
	recs := CatalogueRecords(rand.New(rand.NewSource(1)))
	require.NotEmpty(t, recs)
	for i, r := range recs {
		assert.Equal(t, i+1, r.Row)
	}
}
