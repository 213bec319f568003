package constraint

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// assertValidTriple checks a picked triple against all three pairwise
// compatibility matrices at once.
func assertValidTriple(t *testing.T, dev catalog.DeviceType, os catalog.OS, nav catalog.Browser) {
	t.Helper()
	assert.True(t, catalog.Contains(catalog.DeviceTypeOS[dev], os),
		"os %s invalid for device %s", os, dev)
	assert.True(t, catalog.Contains(catalog.DeviceTypeNavigator[dev], nav),
		"browser %s invalid for device %s", nav, dev)
	assert.True(t, catalog.Contains(catalog.OSNavigator[os], nav),
		"browser %s invalid for os %s", nav, os)
}

func TestPickDefaults(t *testing.T) {
	rng := newRng()

	t.Run("no filters defaults to desktop", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			dev, os, nav, err := Pick(rng, Unset(), Unset(), Unset())
			require.NoError(t, err)
			assert.Equal(t, catalog.DeviceDesktop, dev)
			assertValidTriple(t, dev, os, nav)
		}
	})

	t.Run("os filter widens device default", func(t *testing.T) {
		sawMobile := false
		for i := 0; i < 100; i++ {
			dev, os, nav, err := Pick(rng, Unset(), Exactly("android"), Unset())
			require.NoError(t, err)
			assert.Equal(t, catalog.OSAndroid, os)
			assertValidTriple(t, dev, os, nav)
			if dev == catalog.DeviceSmartphone || dev == catalog.DeviceTablet {
				sawMobile = true
			}
		}
		assert.True(t, sawMobile, "android should produce mobile device types")
	})
}

func TestPickFilters(t *testing.T) {
	rng := newRng()

	t.Run("single values pin the triple", func(t *testing.T) {
		dev, os, nav, err := Pick(rng, Exactly("desktop"), Exactly("win"), Exactly("ie"))
		require.NoError(t, err)
		assert.Equal(t, catalog.DeviceDesktop, dev)
		assert.Equal(t, catalog.OSWindows, os)
		assert.Equal(t, catalog.BrowserIE, nav)
	})

	t.Run("multi-value filters stay inside the set", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			_, os, nav, err := Pick(rng, Unset(), Exactly("win", "linux"), Exactly("chrome", "firefox"))
			require.NoError(t, err)
			assert.Contains(t, []catalog.OS{catalog.OSWindows, catalog.OSLinux}, os)
			assert.Contains(t, []catalog.Browser{catalog.BrowserChrome, catalog.BrowserFirefox}, nav)
		}
	})

	t.Run("all sentinel expands an axis", func(t *testing.T) {
		seen := make(map[catalog.DeviceType]bool)
		for i := 0; i < 300; i++ {
			dev, os, nav, err := Pick(rng, Exactly(All), Unset(), Unset())
			require.NoError(t, err)
			assertValidTriple(t, dev, os, nav)
			seen[dev] = true
		}
		assert.Len(t, seen, 3, "all device types should appear")
	})

	t.Run("all mixed into a list still expands", func(t *testing.T) {
		seen := make(map[catalog.OS]bool)
		for i := 0; i < 300; i++ {
			_, os, _, err := Pick(rng, Exactly(All), Exactly("win", All), Unset())
			require.NoError(t, err)
			seen[os] = true
		}
		assert.Len(t, seen, 4, "all OS families should appear")
	})
}

func TestPickInvalidValues(t *testing.T) {
	rng := newRng()

	cases := []struct {
		name       string
		deviceType Filter
		os         Filter
		navigator  Filter
		option     string
		value      string
	}{
		{"bad os", Unset(), Exactly("solaris"), Unset(), "os", "solaris"},
		{"bad navigator", Unset(), Unset(), Exactly("netscape"), "navigator", "netscape"},
		{"bad device type", Exactly("fridge"), Unset(), Unset(), "device_type", "fridge"},
		{"bad value in list", Unset(), Exactly("win", "templeos"), Unset(), "os", "templeos"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := Pick(rng, tc.deviceType, tc.os, tc.navigator)
			require.Error(t, err)

			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.option, invalid.Option)
			assert.Contains(t, invalid.Values, tc.value)
			assert.Contains(t, err.Error(), tc.option)
			assert.Contains(t, err.Error(), tc.value)
		})
	}
}

func TestPickConflicts(t *testing.T) {
	rng := newRng()

	cases := []struct {
		name       string
		deviceType Filter
		os         Filter
		navigator  Filter
	}{
		// Windows smartphones don't exist in the matrix.
		{"win smartphone", Exactly("smartphone"), Exactly("win"), Exactly("firefox")},
		// IE never shipped for Android.
		{"android ie", Unset(), Exactly("android"), Exactly("ie")},
		// IE on a tablet.
		{"tablet ie", Exactly("tablet"), Unset(), Exactly("ie")},
		// Mac IE is not modeled.
		{"mac ie", Unset(), Exactly("mac"), Exactly("ie")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := Pick(rng, tc.deviceType, tc.os, tc.navigator)
			require.Error(t, err)

			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid))
			assert.Empty(t, invalid.Option)
			assert.Contains(t, invalid.Reason, "conflict")
		})
	}
}

func TestPickUniformOverVariants(t *testing.T) {
	rng := newRng()

	// desktop + win admits chrome, firefox and ie; a few hundred draws
	// should surface all three.
	seen := make(map[catalog.Browser]bool)
	for i := 0; i < 300; i++ {
		_, _, nav, err := Pick(rng, Exactly("desktop"), Exactly("win"), Unset())
		require.NoError(t, err)
		seen[nav] = true
	}
	assert.Len(t, seen, 3)
}
