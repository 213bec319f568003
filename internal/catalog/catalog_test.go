package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrixConsistency verifies the four pairwise mappings agree with each
// other: the solver assumes a triple admitted by all of them at once is
// genuinely valid.
func TestMatrixConsistency(t *testing.T) {
	t.Run("device-os mappings are mirror images", func(t *testing.T) {
		for dev, oses := range DeviceTypeOS {
			for _, os := range oses {
				assert.True(t, Contains(OSDeviceType[os], dev),
					"OSDeviceType[%s] should contain %s", os, dev)
			}
		}
		for os, devs := range OSDeviceType {
			for _, dev := range devs {
				assert.True(t, Contains(DeviceTypeOS[dev], os),
					"DeviceTypeOS[%s] should contain %s", dev, os)
			}
		}
	})

	t.Run("device-browser mappings are mirror images", func(t *testing.T) {
		for dev, navs := range DeviceTypeNavigator {
			for _, nav := range navs {
				assert.True(t, Contains(NavigatorDeviceType[nav], dev))
			}
		}
		for nav, devs := range NavigatorDeviceType {
			for _, dev := range devs {
				assert.True(t, Contains(DeviceTypeNavigator[dev], nav))
			}
		}
	})

	t.Run("os-browser mappings are mirror images", func(t *testing.T) {
		for os, navs := range OSNavigator {
			for _, nav := range navs {
				assert.True(t, Contains(NavigatorOS[nav], os))
			}
		}
		for nav, oses := range NavigatorOS {
			for _, os := range oses {
				assert.True(t, Contains(OSNavigator[os], nav))
			}
		}
	})

	t.Run("every admitted triple is transitively consistent", func(t *testing.T) {
		// A browser allowed on a device must be allowed on at least one OS
		// of that device, otherwise the solver could paint itself into a
		// corner.
		for dev, navs := range DeviceTypeNavigator {
			for _, nav := range navs {
				found := false
				for _, os := range DeviceTypeOS[dev] {
					if Contains(OSNavigator[os], nav) {
						found = true
						break
					}
				}
				assert.True(t, found, "browser %s on device %s has no valid OS", nav, dev)
			}
		}
	})
}

func TestEnumHelpers(t *testing.T) {
	assert.True(t, ValidOS("win"))
	assert.True(t, ValidOS("android"))
	assert.False(t, ValidOS("os2"))

	assert.True(t, ValidBrowser("ie"))
	assert.False(t, ValidBrowser("safari"))

	assert.True(t, ValidDeviceType("tablet"))
	assert.False(t, ValidDeviceType("console"))
}

func TestPlatformTables(t *testing.T) {
	for _, os := range OSes {
		assert.NotEmpty(t, OSPlatform[os], "OSPlatform[%s]", os)
		assert.NotEmpty(t, OSCPU[os], "OSCPU[%s]", os)
	}
}

// TestMacChromeBuildRangeCoverage ensures every macOS release the generator
// can pick has a Chrome minor-build range, so the Mac+Chrome rewrite never
// hits a missing key.
func TestMacChromeBuildRangeCoverage(t *testing.T) {
	for _, platform := range OSPlatform[OSMac] {
		_, ver, ok := strings.Cut(platform, "OS X ")
		require.True(t, ok, "malformed mac platform %q", platform)
		r, found := MacChromeBuildRange[ver]
		require.True(t, found, "no chrome build range for %q", ver)
		assert.Less(t, r[0], r[1], "empty range for %q", ver)
	}
}

func TestFirefoxReleaseTable(t *testing.T) {
	require.NotEmpty(t, FirefoxReleases)
	for _, rel := range FirefoxReleases {
		assert.NotEmpty(t, rel.Version)
		assert.False(t, rel.Date.IsZero(), "version %s has no date", rel.Version)
	}
	// Spot-check the endpoints of the transcribed table.
	assert.Equal(t, "0.9", FirefoxReleases[0].Version)
	assert.Equal(t, "84.0.2", FirefoxReleases[len(FirefoxReleases)-1].Version)
}

func TestChromeBuildTable(t *testing.T) {
	require.NotEmpty(t, ChromeBuilds)
	for _, b := range ChromeBuilds {
		assert.LessOrEqual(t, b.MinBuild, b.MaxBuild, "major %d", b.Major)
		assert.Greater(t, b.Major, 0)
	}
}

func TestIETable(t *testing.T) {
	require.Len(t, IEVersions, 4)
	for _, ie := range IEVersions {
		assert.Contains(t, ie.Display, "MSIE")
		assert.NotEmpty(t, ie.Trident)
	}
}

func TestDeviceCatalogs(t *testing.T) {
	assert.NotEmpty(t, SmartphoneDevices)
	assert.NotEmpty(t, TabletDevices)
	for _, list := range [][]string{SmartphoneDevices, TabletDevices} {
		seen := make(map[string]bool, len(list))
		for _, id := range list {
			assert.NotEmpty(t, id)
			assert.False(t, seen[id], "duplicate device id %q", id)
			seen[id] = true
		}
	}
}
