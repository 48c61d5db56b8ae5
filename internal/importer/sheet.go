package importer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/models"
)

// Header spellings seen across the salon spreadsheets, most specific first.
var (
	nameHeaders        = []string{"Business Name", "Name", "Salon Name"}
	addressHeaders     = []string{"Address", "Full Address", "Street Address"}
	cityHeaders        = []string{"City", "Suburb", "Town"}
	stateHeaders       = []string{"State", "Province", "Region"}
	phoneHeaders       = []string{"Phone", "Phone Number", "Telephone"}
	websiteHeaders     = []string{"Website", "URL", "Site"}
	emailHeaders       = []string{"Email", "Email Address"}
	descriptionHeaders = []string{"Description", "About"}
	latitudeHeaders    = []string{"Latitude", "Lat"}
	longitudeHeaders   = []string{"Longitude", "Lng", "Lon"}
	ratingHeaders      = []string{"Rating", "Google Rating"}
	reviewHeaders      = []string{"Reviews", "Review Count", "Number of Reviews"}
	priceHeaders       = []string{"Price ($-$$$)", "Price Range", "Price"}
	hoursHeaders       = []string{"Working Hours", "Opening Hours", "Hours"}
	closedOnHeaders    = []string{"Closed On"}
)

// flagHeaders maps spreadsheet amenity/service columns onto flag columns.
var flagHeaders = map[string]string{
	"manicure":                 "manicure",
	"gel manicure":             "gel_nails",
	"gel nails":                "gel_nails",
	"gel extensions":           "nail_extensions",
	"nail extensions":          "nail_extensions",
	"acrylic nails":            "acrylic_nails",
	"pedicure":                 "pedicure",
	"sns dip powder":           "dip_powder",
	"dip powder":               "dip_powder",
	"shellac":                  "shellac",
	"nail art":                 "nail_art",
	"nail repair":              "nail_repair",
	"cuticle care":             "cuticle_care",
	"qualified technicians":    "certified_technicians",
	"experienced team":         "experienced_staff",
	"quick service":            "quick_service",
	"master nail artist":       "master_artist",
	"bridal nails":             "bridal_nails",
	"appointment required":     "appointment_only",
	"walk-ins welcome":         "accepts_walk_ins",
	"group bookings":           "group_bookings",
	"mobile nails":             "mobile_nails",
	"child friendly":           "kid_friendly",
	"pet friendly":             "pet_friendly",
	"lgbtqi+ friendly":         "lgbtqi_friendly",
	"wheel chair accessable":   "wheelchair_accessible",
	"wheelchair accessible":    "wheelchair_accessible",
	"complimentary drink":      "complimentary_drink",
	"heated massage chairs":    "heated_massage_chairs",
	"foot spas":                "foot_spas",
	"free wi-fi":               "free_wifi",
	"parking":                  "parking",
	"clean & ethical products": "eco_friendly_products",
	"vegan polish":             "vegan_polish",
	"female owned":             "female_owned",
}

var cityPrefix = regexp.MustCompile(`Y\s*=\s*(.+)`)

// CleanCityName unwraps values like "Y = Darwin" left by a broken export and
// drops any "=" left dangling at either end.
func CleanCityName(v string) string {
	if m := cityPrefix.FindStringSubmatch(v); m != nil {
		v = m[1]
	}
	return strings.Trim(v, "= \t")
}

func YesNo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// NormalizePriceRange maps "$".."$$$" and words onto budget/mid-range/premium.
func NormalizePriceRange(v string) *string {
	var out string
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "$", "budget", "low", "cheap":
		out = "budget"
	case "$$", "mid", "medium", "moderate", "mid-range":
		out = "mid-range"
	case "$$$", "high", "expensive", "premium", "luxury":
		out = "premium"
	default:
		return nil
	}
	return &out
}

// SheetRow is one data row keyed by trimmed header text.
type SheetRow map[string]string

// Lookup returns the first non-empty value among the header spellings,
// matched case-insensitively.
func (r SheetRow) Lookup(headers ...string) string {
	for _, h := range headers {
		if v, ok := r[strings.ToLower(h)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (r SheetRow) floatValue(headers ...string) *float64 {
	v := r.Lookup(headers...)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (r SheetRow) intValue(headers ...string) *int {
	f := r.floatValue(headers...)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// Int is intValue with a zero default.
func (r SheetRow) Int(headers ...string) int {
	if n := r.intValue(headers...); n != nil {
		return *n
	}
	return 0
}

// ReadWorkbook parses the first sheet of an xlsx file into rows.
func ReadWorkbook(path string) ([]SheetRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func ReadWorkbookFrom(r io.Reader) ([]SheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readFirstSheet(f)
}

func readFirstSheet(f *excelize.File) ([]SheetRow, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]SheetRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := SheetRow{}
		empty := true
		for i, v := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, dup := row[header[i]]; dup {
				continue
			}
			row[header[i]] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}

// RecordsFromSheet converts sheet rows to import records. Row numbers are
// 1-based data rows.
func RecordsFromSheet(rows []SheetRow) []Record {
	out := make([]Record, 0, len(rows))
	for i, r := range rows {
		rec := Record{
			Row:         i + 1,
			Name:        r.Lookup(nameHeaders...),
			Address:     r.Lookup(addressHeaders...),
			City:        CleanCityName(r.Lookup(cityHeaders...)),
			State:       r.Lookup(stateHeaders...),
			Phone:       r.Lookup(phoneHeaders...),
			Website:     r.Lookup(websiteHeaders...),
			Email:       r.Lookup(emailHeaders...),
			Description: r.Lookup(descriptionHeaders...),
			Latitude:    r.floatValue(latitudeHeaders...),
			Longitude:   r.floatValue(longitudeHeaders...),
			Rating:      r.floatValue(ratingHeaders...),
			ReviewCount: r.intValue(reviewHeaders...),
			PriceRange:  NormalizePriceRange(r.Lookup(priceHeaders...)),
			Flags:       map[string]bool{},
		}
		if h := r.Lookup(hoursHeaders...); h != "" {
			rec.OpeningHours = salon.HoursFromSheet(h, r.Lookup(closedOnHeaders...))
		}

		for header, v := range r {
			flag, ok := flagHeaders[header]
			if !ok && models.IsFlag(header) {
				flag, ok = header, true
			}
			if ok {
				rec.Flags[flag] = rec.Flags[flag] || YesNo(v)
			}
		}
		out = append(out, rec)
	}
	return out
}
