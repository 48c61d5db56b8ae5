package importer

import (
	"fmt"
	"math/rand"
	"strings"
)

type sampleSalon struct {
	name, city, state, address, phone string
}

var sampleSalons = []sampleSalon{
	{"Sydney Nail Studio", "Sydney", "NSW", "123 George St, Sydney NSW 2000", "(02) 9876 5432"},
	{"Bondi Beach Nails", "Bondi", "NSW", "456 Campbell Parade, Bondi Beach NSW 2026", "(02) 9234 5678"},
	{"Parramatta Nail Bar", "Parramatta", "NSW", "789 Church St, Parramatta NSW 2150", "(02) 9876 1234"},
	{"Manly Manicure", "Manly", "NSW", "321 The Corso, Manly NSW 2095", "(02) 9567 8901"},
	{"Chatswood Nail Lounge", "Chatswood", "NSW", "654 Pacific Hwy, Chatswood NSW 2067", "(02) 9432 1098"},

	{"Melbourne Nail Emporium", "Melbourne", "VIC", "111 Collins St, Melbourne VIC 3000", "(03) 9876 5432"},
	{"St Kilda Nail Spa", "St Kilda", "VIC", "222 Fitzroy St, St Kilda VIC 3182", "(03) 9234 5678"},
	{"Richmond Nail Design", "Richmond", "VIC", "333 Swan St, Richmond VIC 3121", "(03) 9876 1234"},
	{"Prahran Nail Studio", "Prahran", "VIC", "444 Chapel St, Prahran VIC 3181", "(03) 9567 8901"},
	{"Fitzroy Nail Bar", "Fitzroy", "VIC", "555 Brunswick St, Fitzroy VIC 3065", "(03) 9432 1098"},

	{"Brisbane Nail Centre", "Brisbane", "QLD", "666 Queen St, Brisbane QLD 4000", "(07) 3876 5432"},
	{"Surfers Paradise Nails", "Surfers Paradise", "QLD", "777 Gold Coast Hwy, Surfers Paradise QLD 4217", "(07) 5234 5678"},
	{"Fortitude Valley Nail Lounge", "Fortitude Valley", "QLD", "888 Brunswick St, Fortitude Valley QLD 4006", "(07) 3876 1234"},
	{"Cairns Nail Studio", "Cairns", "QLD", "999 Esplanade, Cairns QLD 4870", "(07) 4067 8901"},
	{"Toowoomba Nail Bar", "Toowoomba", "QLD", "1010 Ruthven St, Toowoomba QLD 4350", "(07) 4632 1098"},

	{"Perth Nail Gallery", "Perth", "WA", "1111 Hay St, Perth WA 6000", "(08) 9876 5432"},
	{"Fremantle Nail Spa", "Fremantle", "WA", "1212 South Terrace, Fremantle WA 6160", "(08) 9234 5678"},
	{"Scarborough Beach Nails", "Scarborough", "WA", "1313 West Coast Hwy, Scarborough WA 6019", "(08) 9876 1234"},
	{"Joondalup Nail Design", "Joondalup", "WA", "1414 Joondalup Dr, Joondalup WA 6027", "(08) 9567 8901"},
	{"Subiaco Nail Studio", "Subiaco", "WA", "1515 Rokeby Rd, Subiaco WA 6008", "(08) 9432 1098"},

	{"Adelaide Nail Boutique", "Adelaide", "SA", "1616 Rundle Mall, Adelaide SA 5000", "(08) 8876 5432"},
	{"Glenelg Nail Bar", "Glenelg", "SA", "1717 Jetty Rd, Glenelg SA 5045", "(08) 8234 5678"},
	{"Norwood Nail Lounge", "Norwood", "SA", "1818 The Parade, Norwood SA 5067", "(08) 8876 1234"},
	{"Hindmarsh Nail Studio", "Hindmarsh", "SA", "1919 Port Rd, Hindmarsh SA 5007", "(08) 8567 8901"},

	{"Hobart Nail Haven", "Hobart", "TAS", "2020 Elizabeth St, Hobart TAS 7000", "(03) 6234 5678"},
	{"Sandy Bay Nail Spa", "Sandy Bay", "TAS", "2121 Sandy Bay Rd, Sandy Bay TAS 7005", "(03) 6876 1234"},

	{"Darwin Nail Studio", "Darwin", "NT", "2222 Smith St, Darwin NT 0800", "(08) 8981 5432"},
	{"Casuarina Nail Bar", "Casuarina", "NT", "2323 Trower Rd, Casuarina NT 0810", "(08) 8927 1234"},

	{"Canberra Nail Gallery", "Canberra", "ACT", "2424 Northbourne Ave, Canberra ACT 2601", "(02) 6234 5678"},
	{"Civic Nail Lounge", "Civic", "ACT", "2525 City Walk, Civic ACT 2601", "(02) 6876 1234"},
}

// SampleRecords returns the fixed demo salon list.
func SampleRecords() []Record {
	out := make([]Record, 0, len(sampleSalons))
	for i, s := range sampleSalons {
		out = append(out, Record{
			Row:     i + 1,
			Name:    s.name,
			City:    s.city,
			State:   s.state,
			Address: s.address,
			Phone:   s.phone,
			Website: WebsiteFor(s.name),
		})
	}
	return out
}

type catalogueCity struct {
	city, state string
	salons      []string
}

var catalogue = []catalogueCity{
	{"Sydney", "NSW", []string{"Sydney Nail Studio", "CBD Nail Bar", "Harbour Nails", "Opera House Nails", "Bridge Nail Spa", "Royal Nail Lounge", "City Nail Gallery", "Metro Nail Design", "Urban Nail Studio", "Elite Nail Bar"}},
	{"Bondi", "NSW", []string{"Bondi Beach Nails", "Coastal Nail Studio", "Surf Nail Bar", "Beach Nail Spa", "Ocean Nail Lounge"}},
	{"Parramatta", "NSW", []string{"Parramatta Nail Bar", "West Side Nails", "Central Nail Studio", "Park Nail Gallery", "Metro West Nails"}},
	{"Newcastle", "NSW", []string{"Newcastle Nail Studio", "Hunter Nail Bar", "Steel City Nails", "Coastal Hunter Nails", "Port Nail Spa"}},
	{"Wollongong", "NSW", []string{"Wollongong Nail Gallery", "Illawarra Nails", "Gong Nail Bar", "South Coast Nails", "Steel City Nail Spa"}},
	{"Manly", "NSW", []string{"Manly Manicure", "Northern Beaches Nails", "Seaside Nail Studio", "Beach Walk Nails"}},
	{"Chatswood", "NSW", []string{"Chatswood Nail Lounge", "North Shore Nails", "Willoughby Nail Bar", "Upper North Shore Nails"}},

	{"Melbourne", "VIC", []string{"Melbourne Nail Emporium", "Collins Street Nails", "Bourke Street Nail Bar", "CBD Nail Studio", "Flinders Nail Gallery", "Queen Street Nails", "Swanston Nail Spa", "Little Collins Nails", "City Loop Nails", "Southbank Nail Lounge"}},
	{"St Kilda", "VIC", []string{"St Kilda Nail Spa", "Acland Street Nails", "Bayside Nail Studio", "Luna Park Nails", "Seaside Nail Bar"}},
	{"Richmond", "VIC", []string{"Richmond Nail Design", "Swan Street Nails", "Bridge Road Nail Bar", "East Melbourne Nails", "Yarra Nail Studio"}},
	{"Prahran", "VIC", []string{"Prahran Nail Studio", "Chapel Street Nails", "South Yarra Nail Bar", "Toorak Nail Lounge"}},
	{"Fitzroy", "VIC", []string{"Fitzroy Nail Bar", "Brunswick Street Nails", "Gertrude Street Nail Studio", "Collingwood Nails"}},
	{"Geelong", "VIC", []string{"Geelong Nail Gallery", "Waterfront Nails", "Bay City Nail Studio", "Corio Bay Nails"}},
	{"Ballarat", "VIC", []string{"Ballarat Nail Studio", "Sovereign Hill Nails", "Golden Point Nail Bar", "Lake Wendouree Nails"}},

	{"Brisbane", "QLD", []string{"Brisbane Nail Centre", "Queen Street Nails", "Riverside Nail Studio", "Story Bridge Nails", "South Bank Nail Bar", "Fortitude Valley Nails", "West End Nail Gallery", "New Farm Nail Spa", "Kangaroo Point Nails", "Eagle Street Nail Lounge"}},
	{"Gold Coast", "QLD", []string{"Gold Coast Nail Studio", "Surfers Paradise Nails", "Broadbeach Nail Bar", "Miami Nail Spa", "Burleigh Nails", "Currumbin Nail Studio"}},
	{"Cairns", "QLD", []string{"Cairns Nail Studio", "Tropical Nail Bar", "Reef City Nails", "Esplanade Nail Spa", "Port Douglas Nails"}},
	{"Townsville", "QLD", []string{"Townsville Nail Gallery", "Castle Hill Nails", "Magnetic Island Nail Studio", "North Queensland Nails"}},
	{"Sunshine Coast", "QLD", []string{"Sunshine Coast Nails", "Noosa Nail Studio", "Caloundra Nail Bar", "Mooloolaba Nail Spa"}},
	{"Toowoomba", "QLD", []string{"Toowoomba Nail Bar", "Garden City Nails", "Darling Downs Nail Studio"}},

	{"Perth", "WA", []string{"Perth Nail Gallery", "Swan River Nails", "Kings Park Nail Studio", "CBD Perth Nails", "Hay Street Nail Bar", "Murray Street Nails", "Northbridge Nail Spa", "West Perth Nails", "East Perth Nail Studio", "South Perth Nail Lounge"}},
	{"Fremantle", "WA", []string{"Fremantle Nail Spa", "Port City Nails", "Cappuccino Strip Nails", "Historic Fremantle Nails", "South Terrace Nail Bar"}},
	{"Joondalup", "WA", []string{"Joondalup Nail Design", "Lakeside Nail Studio", "Northern Suburbs Nails"}},
	{"Bunbury", "WA", []string{"Bunbury Nail Gallery", "South West Nail Studio", "Koombana Bay Nails"}},

	{"Adelaide", "SA", []string{"Adelaide Nail Boutique", "Rundle Mall Nails", "King William Street Nail Bar", "North Terrace Nail Studio", "Hindley Street Nails", "Gouger Street Nail Spa", "Festival City Nails", "River Torrens Nail Gallery"}},
	{"Glenelg", "SA", []string{"Glenelg Nail Bar", "Jetty Road Nails", "Seaside Nail Studio", "Holdfast Bay Nails"}},
	{"Mount Gambier", "SA", []string{"Mount Gambier Nail Studio", "Limestone Coast Nails", "Blue Lake Nail Bar"}},

	{"Hobart", "TAS", []string{"Hobart Nail Haven", "Salamanca Nail Studio", "Battery Point Nails", "Mount Wellington Nail Bar", "Derwent River Nails", "MONA Nail Gallery"}},
	{"Launceston", "TAS", []string{"Launceston Nail Gallery", "Tamar Valley Nails", "Northern Tasmania Nail Studio", "Cataract Gorge Nails"}},

	{"Darwin", "NT", []string{"Darwin Nail Studio", "Top End Nails", "Waterfront Nail Bar", "Mitchell Street Nails", "Mindil Beach Nail Spa", "Cullen Bay Nails"}},
	{"Alice Springs", "NT", []string{"Alice Springs Nail Gallery", "Red Centre Nails", "Outback Nail Studio", "MacDonnell Ranges Nails"}},

	{"Canberra", "ACT", []string{"Canberra Nail Gallery", "Parliament House Nails", "Lake Burley Griffin Nail Studio", "Civic Nail Bar", "Barton Nail Spa", "Braddon Nails"}},
	{"Civic", "ACT", []string{"Civic Nail Lounge", "City Walk Nails", "Canberra Centre Nail Studio"}},
}

// CatalogueRecords expands the city catalogue into records with generated
// addresses and phone numbers.
func CatalogueRecords(rng *rand.Rand) []Record {
	var out []Record
	for _, c := range catalogue {
		for i, name := range c.salons {
			out = append(out, Record{
				Row:     len(out) + 1,
				Name:    name,
				City:    c.city,
				State:   c.state,
				Address: GenerateAddress(rng, c.city, c.state, i),
				Phone:   GeneratePhone(rng, c.state),
				Website: WebsiteFor(name),
			})
		}
	}
	return out
}

var streets = []string{
	"George Street", "King Street", "Queen Street", "Collins Street", "Bourke Street",
	"Flinders Street", "Elizabeth Street", "Pitt Street", "Castlereagh Street",
	"York Street", "Sussex Street", "Kent Street", "Clarence Street", "Bridge Street",
	"Hunter Street", "Martin Place", "Park Street", "Liverpool Street", "Oxford Street",
	"William Street", "Crown Street", "Chapel Street", "High Street", "Main Street",
}

var areaCodes = map[string]string{
	"NSW": "02", "VIC": "03", "QLD": "07", "WA": "08",
	"SA": "08", "TAS": "03", "NT": "08", "ACT": "02",
}

var postcodeRanges = map[string][2]int{
	"NSW": {2000, 2999},
	"VIC": {3000, 3999},
	"QLD": {4000, 4999},
	"WA":  {6000, 6999},
	"SA":  {5000, 5999},
	"TAS": {7000, 7999},
	"NT":  {800, 899},
	"ACT": {2600, 2699},
}

func GenerateAddress(rng *rand.Rand, city, state string, index int) string {
	num := 100 + index*50 + rng.Intn(40)
	street := streets[rng.Intn(len(streets))]
	return fmt.Sprintf("%d %s, %s %s %04d", num, street, city, state, GeneratePostcode(rng, state))
}

func GeneratePhone(rng *rand.Rand, state string) string {
	code, ok := areaCodes[state]
	if !ok {
		code = "02"
	}
	n := fmt.Sprintf("%d", rng.Intn(90000000)+10000000)
	return fmt.Sprintf("(%s) %s %s", code, n[:4], n[4:])
}

func GeneratePostcode(rng *rand.Rand, state string) int {
	r, ok := postcodeRanges[state]
	if !ok {
		r = postcodeRanges["NSW"]
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}

func WebsiteFor(name string) string {
	return "https://www." + strings.Join(strings.Fields(strings.ToLower(name)), "") + ".com.au"
}
