package importer

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, store *fakeStore, opts Options, recs []Record) *Result {
	t.Helper()
	res, err := New(store, zap.NewNop(), opts).Run(context.Background(), recs)
	require.NoError(t, err)
	return res
}

func TestSydneyEndToEnd(t *testing.T) {
	store := newFakeStore()

	res := run(t, store, Options{Policy: Skip}, []Record{{
		Name:    "Sydney Nail Studio",
		City:    "Sydney",
		State:   "NSW",
		Address: "123 George St, Sydney NSW 2000",
	}})

	require.Len(t, store.cities, 1)
	assert.Equal(t, "Sydney", store.cities[0].Name)
	assert.Equal(t, uint(nswID), store.cities[0].StateID)

	require.Len(t, store.salons, 1)
	s := store.salons[0]
	assert.Equal(t, "Sydney Nail Studio", s.Name)
	assert.Equal(t, store.cities[0].ID, *s.CityID)
	assert.Equal(t, "sydney-nail-studio-sydney", s.Slug)
	assert.Equal(t, "123 George St, Sydney NSW 2000", s.Address)

	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.CitiesCreated)
}

func TestCityLookupIsMemoizedWithinRun(t *testing.T) {
	store := newFakeStore()

	run(t, store, Options{Policy: AlwaysInsert}, []Record{
		{Name: "A", City: "Sydney", State: "NSW"},
		{Name: "B", City: "Sydney", State: "new south wales"},
		{Name: "C", City: "Sydney", State: "VIC"},
	})

	require.Len(t, store.cities, 2)
	assert.Equal(t, *store.salons[0].CityID, *store.salons[1].CityID)
	assert.NotEqual(t, *store.salons[0].CityID, *store.salons[2].CityID)
	// one lookup per distinct (name, state)
	assert.Equal(t, 2, store.findCalls)
}

func TestCityResolverReusesExistingRow(t *testing.T) {
	store := newFakeStore()
	store.cities = append(store.cities, modelsCity(7, "Perth", waID))

	r := NewCityResolver(store)
	id, err := r.Resolve(context.Background(), "Perth", waID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, 0, r.Created())
}

func TestMalformedRowDoesNotAbortRun(t *testing.T) {
	store := newFakeStore()
	store.failSalon["Broken Nails"] = errors.New(`insert or update on table "salons" violates foreign key constraint`)

	recs := []Record{
		{Name: "One", City: "Perth", State: "WA"},
		{Name: "Two", City: "Perth", State: "WA"},
		{Name: "  ", City: "Perth", State: "WA"},
		{Name: "Four", City: "Perth", State: "WA"},
		{Name: "Broken Nails", City: "Perth", State: "WA"},
		{Name: "Six", City: "Perth", State: "WA"},
	}
	res := run(t, store, Options{Policy: AlwaysInsert}, recs)

	assert.Equal(t, 4, res.Inserted)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, 3, res.Failed[0].Row)
	assert.ErrorIs(t, res.Failed[0], ErrMissingName)
	assert.Equal(t, 5, res.Failed[1].Row)
	assert.Len(t, store.salons, 4)
}

func TestSkipPolicyIsIdempotent(t *testing.T) {
	store := newFakeStore()
	recs := SampleRecords()

	first := run(t, store, Options{Policy: Skip}, recs)
	second := run(t, store, Options{Policy: Skip}, recs)

	assert.Equal(t, len(recs), first.Inserted)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, len(recs), second.Skipped)
	assert.Len(t, store.salons, len(recs))
}

func TestAlwaysInsertDuplicatesAcrossRuns(t *testing.T) {
	store := newFakeStore()
	recs := []Record{{Name: "Glow", City: "Hobart", State: "TAS"}}

	run(t, store, Options{Policy: AlwaysInsert}, recs)
	run(t, store, Options{Policy: AlwaysInsert}, recs)

	require.Len(t, store.salons, 2)
	assert.Equal(t, store.salons[0].Slug, store.salons[1].Slug)
	assert.Len(t, store.cities, 1)
}

func TestOverwriteReplacesExistingRow(t *testing.T) {
	store := newFakeStore()
	run(t, store, Options{Policy: Skip}, []Record{{Name: "Glow", City: "Hobart", State: "TAS", Phone: "old"}})

	res := run(t, store, Options{Policy: Overwrite}, []Record{{Name: "Glow", City: "Hobart", State: "TAS", Phone: "new"}})

	assert.Equal(t, 1, res.Updated)
	require.Len(t, store.salons, 1)
	assert.Equal(t, "new", store.salons[0].Phone)
	assert.Equal(t, uint(1), store.salons[0].ID)
}

func TestUnknownStateFallsBackToNSW(t *testing.T) {
	store := newFakeStore()
	res := run(t, store, Options{}, []Record{{Name: "X", City: "Springfield", State: "Ohio"}})

	assert.Equal(t, 1, res.StateDefaults)
	assert.Equal(t, uint(nswID), store.cities[0].StateID)
}

func TestEmptyCityBecomesUnknown(t *testing.T) {
	store := newFakeStore()
	run(t, store, Options{}, []Record{{Name: "X", State: "VIC"}})
	assert.Equal(t, "Unknown", store.cities[0].Name)
}

func TestRecountFailureIsLoggedNotReturned(t *testing.T) {
	store := newFakeStore()
	store.recountErr = errors.New(`function update_city_salon_counts() does not exist`)

	res := run(t, store, Options{Recount: true}, []Record{{Name: "X", City: "Perth", State: "WA"}})
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, store.recounts)
}

func TestImporterUsesThrottleEveryRow(t *testing.T) {
	store := newFakeStore()
	var pauses []time.Duration
	th := &BatchThrottle{Every: 10, Pause: 500 * time.Millisecond, Sleep: func(_ context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}}

	run(t, store, Options{Policy: AlwaysInsert, Throttle: th}, CatalogueRecords(rand.New(rand.NewSource(1)))[:25])

	assert.Equal(t, []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, pauses)
}

func TestRunStopsWhenThrottleIsCancelled(t *testing.T) {
	store := newFakeStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	th := NewBatchThrottle(1, time.Hour)
	res, err := New(store, zap.NewNop(), Options{Policy: AlwaysInsert, Throttle: th}).
		Run(ctx, []Record{{Name: "A", City: "Perth", State: "WA"}, {Name: "B", City: "Perth", State: "WA"}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Inserted)
}

func TestRandomFlagsAreApplied(t *testing.T) {
	store := newFakeStore()
	rng := rand.New(rand.NewSource(42))

	run(t, store, Options{Policy: AlwaysInsert, Flags: RandomFlags(rng, SampleProbabilities)}, SampleRecords()[:5])

	for _, s := range store.salons {
		assert.True(t, s.Manicure, s.Name)
	}
}

func TestSheetFlagsAreWrittenAsRead(t *testing.T) {
	store := newFakeStore()
	run(t, store, Options{}, []Record{{
		Name: "X", City: "Perth", State: "WA",
		Flags: map[string]bool{"gel_nails": true, "vegan_polish": true},
	}})

	s := store.salons[0]
	assert.True(t, s.GelNails)
	assert.True(t, s.VeganPolish)
	assert.False(t, s.Manicure)
}
