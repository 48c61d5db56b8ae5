package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalonFlagsSetGet(t *testing.T) {
	var f SalonFlags

	assert.True(t, f.Set("gel_nails", true))
	assert.True(t, f.GelNails)
	assert.True(t, f.Get("gel_nails"))

	assert.False(t, f.Set("not_a_flag", true))
	assert.False(t, f.Get("not_a_flag"))
}

func TestSalonFlagsApplyAndMap(t *testing.T) {
	var f SalonFlags
	f.Apply(map[string]bool{"parking": true, "lgbtqi_friendly": true, "bogus": true})

	m := f.Map()
	assert.Len(t, m, len(FlagNames()))
	assert.True(t, m["parking"])
	assert.True(t, m["lgbtqi_friendly"])
	assert.False(t, m["manicure"])
	assert.NotContains(t, m, "bogus")
}

func TestFlagNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range FlagNames() {
		assert.False(t, seen[n], n)
		seen[n] = true
		assert.True(t, IsFlag(n))
	}
	assert.Equal(t, "manicure", FlagNames()[0])
}
