package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackagesNameVariants(t *testing.T) {
	p := NewPackages("python-dateutil", "Pandas", " ", "zope.interface")

	assert.True(t, p.Installed("python_dateutil"))
	assert.True(t, p.Installed("PYTHON-DATEUTIL"))
	assert.True(t, p.Installed("pandas"))
	assert.True(t, p.Installed("zope_interface"))
	assert.False(t, p.Installed("requests"))
	assert.Equal(t, 3, p.Len())

	p.Add("requests")
	assert.True(t, p.Installed("requests"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "a_b_c", Canonical(" A-b.C "))
	assert.Equal(t, "", Canonical("  "))
}

func TestBuildModulesIncludesShortNames(t *testing.T) {
	// test binaries carry build info; tolerate toolchains that do not
	names := BuildModules()
	for _, n := range names {
		assert.NotEmpty(t, n)
	}
}

func TestConfigPresence(t *testing.T) {
	c := NewConfig(map[string]any{
		"API_KEY":     "secret",
		"EMPTY":       "  ",
		"NULL":        nil,
		"AUTO_ENRICH": true,
		"backends": map[string]any{
			"insee": map[string]any{"token": "t0k"},
		},
	})

	assert.True(t, c.Present("API_KEY"))
	assert.True(t, c.Present("api_key"))
	assert.False(t, c.Present("EMPTY"))
	assert.False(t, c.Present("NULL"))
	assert.False(t, c.Present("MISSING"))
	assert.True(t, c.Present("AUTO_ENRICH"))
	assert.True(t, c.Present("backends.insee.token"))
	assert.Equal(t, "t0k", c.Value("BACKENDS.INSEE.TOKEN"))
	assert.Equal(t, 5, c.Keys())
}
