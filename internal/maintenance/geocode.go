package maintenance

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Geocoder resolves a free-text address. ok is false when nothing matched.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (lat, lng float64, ok bool, err error)
}

type GeocodeResult struct {
	Pending  int
	Geocoded int
	Failed   int
}

// Geocode fills coordinates for salons that have none. Rate limiting is the
// geocoder's concern.
func (s *Service) Geocode(ctx context.Context, g Geocoder, country string) (*GeocodeResult, error) {
	refs, err := s.store.ListSalonsMissingCoords(ctx)
	if err != nil {
		return nil, err
	}
	if country == "" {
		country = "Australia"
	}

	res := &GeocodeResult{Pending: len(refs)}
	for i, r := range refs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		query := GeocodeQuery(r, country)
		lat, lng, ok, err := g.Geocode(ctx, query)
		if err != nil || !ok {
			res.Failed++
			s.log.Warn("geocode miss",
				zap.Uint("salon_id", r.ID),
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}

		if err := s.store.SetCoordinates(ctx, r.ID, lat, lng); err != nil {
			res.Failed++
			s.log.Warn("save coordinates failed", zap.Uint("salon_id", r.ID), zap.Error(err))
			continue
		}
		res.Geocoded++
		s.log.Info("geocoded",
			zap.Int("n", i+1),
			zap.Int("of", len(refs)),
			zap.String("salon", r.Name),
		)
	}
	return res, nil
}

func GeocodeQuery(r SalonRef, country string) string {
	parts := []string{StreetAddress(r.Address), r.City, r.State, country}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

var (
	unitPrefix    = regexp.MustCompile(`(?i)^(?:Shop|Unit|Kiosk|Suite|Level|Store|Building)\s+[A-Za-z0-9]+\s+`)
	slashPrefix   = regexp.MustCompile(`^[A-Za-z0-9]+[,/]\s*`)
	streetStart   = regexp.MustCompile(`^\d+[A-Za-z]?(?:-\d+[A-Za-z]?)?\s+[A-Za-z]`)
	streetLine    = regexp.MustCompile(`(?i)^(\d+[A-Za-z]?(?:-\d+[A-Za-z]?)?\s+(?:[A-Za-z]+\s+)*(?:St|Street|Rd|Road|Ave|Avenue|Dr|Drive|Parade|Terrace|Blvd|Boulevard|Pl|Place|Ct|Court|Lane|La|Way|Crescent|Cres))\b`)
	afterComma    = regexp.MustCompile(`,\s*(\d+.*)`)
	unitSlash     = regexp.MustCompile(`(?i)(?:(?:Shop|Unit|Kiosk|Suite|Level|Store)\s+)?[A-Za-z0-9]+/`)
	shoppingWords = regexp.MustCompile(`(?i)\s*,?\s*Shopping\s+(?:Cen(?:ter|tre)|Village|Mall|Arcade)\s*,?`)
	spaces        = regexp.MustCompile(`\s+`)
	doubleComma   = regexp.MustCompile(`\s*,\s*,\s*`)
)

// StreetAddress pulls "15 Temple Terrace" out of strings like
// "Oasis shopping village, T30, 15 Temple Terrace, Palmerston".
func StreetAddress(addr string) string {
	if addr == "" {
		return addr
	}

	for _, part := range strings.Split(addr, ",") {
		p := strings.TrimSpace(part)
		p = unitPrefix.ReplaceAllString(p, "")
		p = slashPrefix.ReplaceAllString(p, "")
		if !streetStart.MatchString(p) {
			continue
		}
		if m := streetLine.FindStringSubmatch(p); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	cleaned := addr
	if m := afterComma.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}
	cleaned = unitSlash.ReplaceAllString(cleaned, "")
	cleaned = shoppingWords.ReplaceAllString(cleaned, "")
	cleaned = doubleComma.ReplaceAllString(cleaned, ", ")
	cleaned = spaces.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, ", ")
}

func (r SalonRef) String() string {
	return fmt.Sprintf("#%d %s", r.ID, r.Name)
}
