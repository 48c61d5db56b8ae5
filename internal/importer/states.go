package importer

import (
	"errors"
	"strings"

	"github.com/nailnav/nailnav/internal/models"
)

var ErrNoStates = errors.New("importer: no states loaded")

const DefaultStateCode = "NSW"

// stateVariants are extra keys registered for a state with this exact name.
var stateVariants = map[string][]string{
	"New South Wales":              {"nsw", "new south wales"},
	"Victoria":                     {"vic", "victoria"},
	"Queensland":                   {"qld", "queensland"},
	"Western Australia":            {"wa", "western australia"},
	"South Australia":              {"sa", "south australia"},
	"Tasmania":                     {"tas", "tasmania"},
	"Northern Territory":           {"nt", "northern territory"},
	"Australian Capital Territory": {"act", "australian capital territory"},
}

type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPartial
	MatchDefault
)

func (m MatchKind) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	default:
		return "default"
	}
}

type stateKey struct {
	key string
	id  uint
}

// StateResolver maps free-text state input to a state id: exact key first,
// then the first key (in registration order) that contains or is contained
// by the input, then NSW.
type StateResolver struct {
	exact    map[string]uint
	ordered  []stateKey
	fallback uint
	codes    map[uint]string
}

func NewStateResolver(states []models.State) (*StateResolver, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	r := &StateResolver{
		exact: map[string]uint{},
		codes: map[uint]string{},
	}
	for _, s := range states {
		r.add(strings.ToLower(s.Name), s.ID)
		r.add(strings.ToLower(s.Code), s.ID)
		for _, v := range stateVariants[s.Name] {
			r.add(v, s.ID)
		}
		r.codes[s.ID] = s.Code
	}

	id, ok := r.exact[strings.ToLower(DefaultStateCode)]
	if !ok {
		return nil, errors.New("importer: default state NSW missing")
	}
	r.fallback = id
	return r, nil
}

// add keeps the first registration position of a key and lets later
// registrations overwrite its id.
func (r *StateResolver) add(key string, id uint) {
	if key == "" {
		return
	}
	if _, ok := r.exact[key]; !ok {
		r.ordered = append(r.ordered, stateKey{key: key})
	}
	r.exact[key] = id
	for i := range r.ordered {
		if r.ordered[i].key == key {
			r.ordered[i].id = id
		}
	}
}

func (r *StateResolver) Resolve(input string) (uint, MatchKind) {
	in := strings.ToLower(strings.TrimSpace(input))

	if id, ok := r.exact[in]; ok {
		return id, MatchExact
	}

	if in != "" {
		for _, k := range r.ordered {
			if strings.Contains(k.key, in) || strings.Contains(in, k.key) {
				return k.id, MatchPartial
			}
		}
	}

	return r.fallback, MatchDefault
}

// Code returns the abbreviation for a resolved id.
func (r *StateResolver) Code(id uint) string {
	return r.codes[id]
}
