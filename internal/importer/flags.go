package importer

import (
	"math/rand"

	"github.com/nailnav/nailnav/internal/models"
)

// FlagAssigner decides the boolean columns written for a record.
type FlagAssigner func(rec *Record) map[string]bool

// SheetFlags writes exactly what the source provided.
func SheetFlags() FlagAssigner {
	return func(rec *Record) map[string]bool {
		return rec.Flags
	}
}

// Probabilities maps a flag to the chance it is set. 1 always sets it.
type Probabilities map[string]float64

// SampleProbabilities is used for generated demo salons.
var SampleProbabilities = Probabilities{
	"kid_friendly":          0.7,
	"parking":               0.8,
	"wheelchair_accessible": 0.6,
	"accepts_walk_ins":      0.7,
	"appointment_only":      0.3,
	"credit_cards_accepted": 0.9,
	"cash_only":             0.1,
	"gift_cards_available":  0.6,
	"loyalty_program":       0.4,
	"online_booking":        0.5,

	"manicure":        1,
	"pedicure":        0.8,
	"gel_nails":       0.7,
	"acrylic_nails":   0.6,
	"nail_art":        0.5,
	"dip_powder":      0.4,
	"shellac":         0.6,
	"nail_extensions": 0.5,
	"nail_repair":     0.7,
	"cuticle_care":    0.8,

	"master_artist":         0.2,
	"certified_technicians": 0.7,
	"experienced_staff":     0.8,
	"luxury_experience":     0.3,
	"relaxing_atmosphere":   0.6,
	"modern_facilities":     0.5,
	"clean_hygienic":        0.9,
	"friendly_service":      0.8,
	"quick_service":         0.6,
	"premium_products":      0.4,
}

// ExpandProbabilities is used when bulk-generating the city catalogue.
var ExpandProbabilities = Probabilities{
	"manicure":        1,
	"pedicure":        0.85,
	"gel_nails":       0.75,
	"acrylic_nails":   0.65,
	"nail_art":        0.6,
	"dip_powder":      0.5,
	"shellac":         0.7,
	"nail_extensions": 0.6,
	"nail_repair":     0.75,
	"cuticle_care":    0.8,

	"kid_friendly":          0.6,
	"parking":               0.7,
	"wheelchair_accessible": 0.4,
	"accepts_walk_ins":      0.65,
	"appointment_only":      0.25,
	"credit_cards_accepted": 0.95,
	"cash_only":             0.1,
	"gift_cards_available":  0.5,
	"loyalty_program":       0.3,
	"online_booking":        0.4,

	"master_artist":         0.15,
	"certified_technicians": 0.6,
	"experienced_staff":     0.7,
	"luxury_experience":     0.2,
	"relaxing_atmosphere":   0.6,
	"modern_facilities":     0.5,
	"clean_hygienic":        0.95,
	"friendly_service":      0.8,
	"quick_service":         0.5,
	"premium_products":      0.35,
}

// RandomFlags draws every flag in p independently. Source values are ignored.
func RandomFlags(rng *rand.Rand, p Probabilities) FlagAssigner {
	return func(*Record) map[string]bool {
		out := make(map[string]bool, len(p))
		// fixed order keeps runs reproducible for a seeded rng
		for _, name := range models.FlagNames() {
			prob, ok := p[name]
			if !ok {
				continue
			}
			out[name] = prob >= 1 || rng.Float64() < prob
		}
		return out
	}
}

// FullServiceFlags marks every service and most amenities, with a few
// premium attributes drawn at random. Source values are ignored.
func FullServiceFlags(rng *rand.Rand) FlagAssigner {
	fixed := map[string]bool{
		"kid_friendly":          true,
		"parking":               true,
		"wheelchair_accessible": true,
		"accepts_walk_ins":      true,
		"appointment_only":      false,
		"credit_cards_accepted": true,
		"cash_only":             false,
		"gift_cards_available":  true,
		"loyalty_program":       false,
		"online_booking":        true,

		"manicure":        true,
		"pedicure":        true,
		"gel_nails":       true,
		"acrylic_nails":   true,
		"nail_art":        true,
		"dip_powder":      true,
		"shellac":         true,
		"nail_extensions": true,
		"nail_repair":     true,
		"cuticle_care":    true,

		"certified_technicians": true,
		"experienced_staff":     true,
		"relaxing_atmosphere":   true,
		"clean_hygienic":        true,
		"friendly_service":      true,
	}
	random := RandomFlags(rng, Probabilities{
		"master_artist":     0.3,
		"luxury_experience": 0.2,
		"modern_facilities": 0.4,
		"quick_service":     0.5,
		"premium_products":  0.3,
	})
	return func(rec *Record) map[string]bool {
		out := random(rec)
		for k, v := range fixed {
			out[k] = v
		}
		return out
	}
}
