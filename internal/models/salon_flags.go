package models

type SalonFlags struct {
	// Services
	Manicure       bool `gorm:"default:false" json:"manicure"`
	Pedicure       bool `gorm:"default:false" json:"pedicure"`
	GelNails       bool `gorm:"default:false" json:"gel_nails"`
	AcrylicNails   bool `gorm:"default:false" json:"acrylic_nails"`
	NailArt        bool `gorm:"default:false" json:"nail_art"`
	DipPowder      bool `gorm:"default:false" json:"dip_powder"`
	Shellac        bool `gorm:"default:false" json:"shellac"`
	NailExtensions bool `gorm:"default:false" json:"nail_extensions"`
	NailRepair     bool `gorm:"default:false" json:"nail_repair"`
	CuticleCare    bool `gorm:"default:false" json:"cuticle_care"`

	// Amenities
	KidFriendly          bool `gorm:"default:false" json:"kid_friendly"`
	Parking              bool `gorm:"default:false" json:"parking"`
	WheelchairAccessible bool `gorm:"default:false" json:"wheelchair_accessible"`
	AcceptsWalkIns       bool `gorm:"default:false" json:"accepts_walk_ins"`
	AppointmentOnly      bool `gorm:"default:false" json:"appointment_only"`
	CreditCardsAccepted  bool `gorm:"default:false" json:"credit_cards_accepted"`
	CashOnly             bool `gorm:"default:false" json:"cash_only"`
	GiftCardsAvailable   bool `gorm:"default:false" json:"gift_cards_available"`
	LoyaltyProgram       bool `gorm:"default:false" json:"loyalty_program"`
	OnlineBooking        bool `gorm:"default:false" json:"online_booking"`

	// Staff and atmosphere
	MasterArtist         bool `gorm:"default:false" json:"master_artist"`
	CertifiedTechnicians bool `gorm:"default:false" json:"certified_technicians"`
	ExperiencedStaff     bool `gorm:"default:false" json:"experienced_staff"`
	LuxuryExperience     bool `gorm:"default:false" json:"luxury_experience"`
	RelaxingAtmosphere   bool `gorm:"default:false" json:"relaxing_atmosphere"`
	ModernFacilities     bool `gorm:"default:false" json:"modern_facilities"`
	CleanHygienic        bool `gorm:"default:false" json:"clean_hygienic"`
	FriendlyService      bool `gorm:"default:false" json:"friendly_service"`
	QuickService         bool `gorm:"default:false" json:"quick_service"`
	PremiumProducts      bool `gorm:"default:false" json:"premium_products"`

	// Spreadsheet extras
	FreeWifi            bool `gorm:"default:false" json:"free_wifi"`
	ComplimentaryDrink  bool `gorm:"default:false" json:"complimentary_drink"`
	HeatedMassageChairs bool `gorm:"default:false" json:"heated_massage_chairs"`
	FootSpas            bool `gorm:"default:false" json:"foot_spas"`
	PetFriendly         bool `gorm:"default:false" json:"pet_friendly"`
	LGBTQIFriendly      bool `gorm:"default:false" json:"lgbtqi_friendly"`
	FemaleOwned         bool `gorm:"default:false" json:"female_owned"`
	BridalNails         bool `gorm:"default:false" json:"bridal_nails"`
	MobileNails         bool `gorm:"default:false" json:"mobile_nails"`
	GroupBookings       bool `gorm:"default:false" json:"group_bookings"`
	VeganPolish         bool `gorm:"default:false" json:"vegan_polish"`
	EcoFriendlyProducts bool `gorm:"default:false" json:"eco_friendly_products"`
}

// flagFields maps column names to the matching field. Order is the column order.
var flagFields = []struct {
	name  string
	field func(*SalonFlags) *bool
}{
	{"manicure", func(f *SalonFlags) *bool { return &f.Manicure }},
	{"pedicure", func(f *SalonFlags) *bool { return &f.Pedicure }},
	{"gel_nails", func(f *SalonFlags) *bool { return &f.GelNails }},
	{"acrylic_nails", func(f *SalonFlags) *bool { return &f.AcrylicNails }},
	{"nail_art", func(f *SalonFlags) *bool { return &f.NailArt }},
	{"dip_powder", func(f *SalonFlags) *bool { return &f.DipPowder }},
	{"shellac", func(f *SalonFlags) *bool { return &f.Shellac }},
	{"nail_extensions", func(f *SalonFlags) *bool { return &f.NailExtensions }},
	{"nail_repair", func(f *SalonFlags) *bool { return &f.NailRepair }},
	{"cuticle_care", func(f *SalonFlags) *bool { return &f.CuticleCare }},

	{"kid_friendly", func(f *SalonFlags) *bool { return &f.KidFriendly }},
	{"parking", func(f *SalonFlags) *bool { return &f.Parking }},
	{"wheelchair_accessible", func(f *SalonFlags) *bool { return &f.WheelchairAccessible }},
	{"accepts_walk_ins", func(f *SalonFlags) *bool { return &f.AcceptsWalkIns }},
	{"appointment_only", func(f *SalonFlags) *bool { return &f.AppointmentOnly }},
	{"credit_cards_accepted", func(f *SalonFlags) *bool { return &f.CreditCardsAccepted }},
	{"cash_only", func(f *SalonFlags) *bool { return &f.CashOnly }},
	{"gift_cards_available", func(f *SalonFlags) *bool { return &f.GiftCardsAvailable }},
	{"loyalty_program", func(f *SalonFlags) *bool { return &f.LoyaltyProgram }},
	{"online_booking", func(f *SalonFlags) *bool { return &f.OnlineBooking }},

	{"master_artist", func(f *SalonFlags) *bool { return &f.MasterArtist }},
	{"certified_technicians", func(f *SalonFlags) *bool { return &f.CertifiedTechnicians }},
	{"experienced_staff", func(f *SalonFlags) *bool { return &f.ExperiencedStaff }},
	{"luxury_experience", func(f *SalonFlags) *bool { return &f.LuxuryExperience }},
	{"relaxing_atmosphere", func(f *SalonFlags) *bool { return &f.RelaxingAtmosphere }},
	{"modern_facilities", func(f *SalonFlags) *bool { return &f.ModernFacilities }},
	{"clean_hygienic", func(f *SalonFlags) *bool { return &f.CleanHygienic }},
	{"friendly_service", func(f *SalonFlags) *bool { return &f.FriendlyService }},
	{"quick_service", func(f *SalonFlags) *bool { return &f.QuickService }},
	{"premium_products", func(f *SalonFlags) *bool { return &f.PremiumProducts }},

	{"free_wifi", func(f *SalonFlags) *bool { return &f.FreeWifi }},
	{"complimentary_drink", func(f *SalonFlags) *bool { return &f.ComplimentaryDrink }},
	{"heated_massage_chairs", func(f *SalonFlags) *bool { return &f.HeatedMassageChairs }},
	{"foot_spas", func(f *SalonFlags) *bool { return &f.FootSpas }},
	{"pet_friendly", func(f *SalonFlags) *bool { return &f.PetFriendly }},
	{"lgbtqi_friendly", func(f *SalonFlags) *bool { return &f.LGBTQIFriendly }},
	{"female_owned", func(f *SalonFlags) *bool { return &f.FemaleOwned }},
	{"bridal_nails", func(f *SalonFlags) *bool { return &f.BridalNails }},
	{"mobile_nails", func(f *SalonFlags) *bool { return &f.MobileNails }},
	{"group_bookings", func(f *SalonFlags) *bool { return &f.GroupBookings }},
	{"vegan_polish", func(f *SalonFlags) *bool { return &f.VeganPolish }},
	{"eco_friendly_products", func(f *SalonFlags) *bool { return &f.EcoFriendlyProducts }},
}

var flagIndex = func() map[string]int {
	m := make(map[string]int, len(flagFields))
	for i, f := range flagFields {
		m[f.name] = i
	}
	return m
}()

// FlagNames returns every flag column name in column order.
func FlagNames() []string {
	out := make([]string, len(flagFields))
	for i, f := range flagFields {
		out[i] = f.name
	}
	return out
}

func IsFlag(name string) bool {
	_, ok := flagIndex[name]
	return ok
}

// Set assigns a flag by column name and reports whether the name is known.
func (f *SalonFlags) Set(name string, v bool) bool {
	i, ok := flagIndex[name]
	if !ok {
		return false
	}
	*flagFields[i].field(f) = v
	return true
}

func (f *SalonFlags) Get(name string) bool {
	i, ok := flagIndex[name]
	if !ok {
		return false
	}
	return *flagFields[i].field(f)
}

// Apply sets every flag present in m.
func (f *SalonFlags) Apply(m map[string]bool) {
	for k, v := range m {
		f.Set(k, v)
	}
}

// Map returns all flags keyed by column name.
func (f *SalonFlags) Map() map[string]bool {
	out := make(map[string]bool, len(flagFields))
	for _, ff := range flagFields {
		out[ff.name] = *ff.field(f)
	}
	return out
}
