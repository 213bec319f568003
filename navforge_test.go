package navforge

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

func seeded(t *testing.T, seed int64) *Generator {
	t.Helper()
	return New(WithSeed(seed))
}

// validTriple checks the generated ids against all three compatibility
// matrices at once.
func validTriple(t *testing.T, dev catalog.DeviceType, os catalog.OS, nav catalog.Browser) {
	t.Helper()
	require.True(t, catalog.Contains(catalog.DeviceTypeOS[dev], os))
	require.True(t, catalog.Contains(catalog.DeviceTypeNavigator[dev], nav))
	require.True(t, catalog.Contains(catalog.OSNavigator[os], nav))
}

// impliedDeviceType recovers the device class from a generated config: the
// desktop OSes map one-to-one, Android splits on the UA shape.
func impliedDeviceType(config string, userAgent string) catalog.DeviceType {
	if config != "android" {
		return catalog.DeviceDesktop
	}
	if strings.Contains(userAgent, "; Tablet") || strings.Contains(userAgent, "Safari/537.36") && !strings.Contains(userAgent, "Mobile Safari") {
		return catalog.DeviceTablet
	}
	return catalog.DeviceSmartphone
}

func TestNavigatorAllValidFilterCombinations(t *testing.T) {
	gen := seeded(t, 1)

	oses := append(OSes(), "", All)
	navs := append(Navigators(), "", All)
	devs := append(DeviceTypes(), "", All)

	for _, os := range oses {
		for _, nav := range navs {
			for _, dev := range devs {
				var opts []Option
				if os != "" {
					opts = append(opts, WithOS(os))
				}
				if nav != "" {
					opts = append(opts, WithNavigator(nav))
				}
				if dev != "" {
					opts = append(opts, WithDeviceType(dev))
				}

				config, err := gen.Navigator(opts...)
				if err != nil {
					// The only acceptable failure mode is a genuine
					// matrix conflict, never a crash or a bad record.
					var invalid *InvalidOptionError
					require.True(t, errors.As(err, &invalid),
						"os=%q nav=%q dev=%q: %v", os, nav, dev, err)
					continue
				}

				osID := catalog.OS(config.OSID)
				navID := catalog.Browser(config.NavigatorID)
				devID := impliedDeviceType(config.OSID, config.UserAgent)
				validTriple(t, devID, osID, navID)
				assert.NotEmpty(t, config.UserAgent)
			}
		}
	}
}

func TestNavigatorInvalidValuesFailWithOptionName(t *testing.T) {
	gen := seeded(t, 2)

	cases := []struct {
		name   string
		opt    Option
		option string
	}{
		{"os", WithOS("amiga"), "os"},
		{"navigator", WithNavigator("lynx"), "navigator"},
		{"device_type", WithDeviceType("toaster"), "device_type"},
		{"platform alias", WithPlatform("amiga"), "os"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gen.Navigator(tc.opt)
			require.Error(t, err)

			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.option, invalid.Option)
		})
	}
}

func TestNavigatorConflictingFiltersFail(t *testing.T) {
	gen := seeded(t, 3)

	// Windows smartphones don't exist in the matrix.
	_, err := gen.Navigator(
		WithOS("win"),
		WithNavigator("firefox"),
		WithDeviceType("smartphone"),
	)
	require.Error(t, err)

	var invalid *InvalidOptionError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Reason, "conflict")
}

func TestUserAgentMatchesNavigatorUnderFixedSeed(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		ua, err := New(WithSeed(seed)).UserAgent()
		require.NoError(t, err)

		config, err := New(WithSeed(seed)).Navigator()
		require.NoError(t, err)

		assert.Equal(t, config.UserAgent, ua, "seed %d", seed)
	}
}

func TestChromeAndIEHeadersCarryMozillaPrefix(t *testing.T) {
	gen := seeded(t, 4)

	for i := 0; i < 200; i++ {
		config, err := gen.Navigator(WithNavigator("chrome", "ie"), WithDeviceType(All))
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(config.UserAgent, "Mozilla/5.0"),
			"header %q", config.UserAgent)
		assert.Equal(t, strings.TrimPrefix(config.UserAgent, "Mozilla/"), config.AppVersion)
	}
}

var firefoxBuildIDPattern = regexp.MustCompile(`^\d{14}$`)

func TestFirefoxBuildIDShape(t *testing.T) {
	gen := seeded(t, 5)

	for i := 0; i < 100; i++ {
		config, err := gen.Navigator(WithNavigator("firefox"), WithOS(All), WithDeviceType(All))
		require.NoError(t, err)
		assert.Regexp(t, firefoxBuildIDPattern, config.BuildID)
	}
}

func TestMacChromePlatformGranularity(t *testing.T) {
	gen := seeded(t, 6)

	t.Run("chrome uses underscores and a third component", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			config, err := gen.Navigator(WithOS("mac"), WithNavigator("chrome"))
			require.NoError(t, err)

			_, ver, ok := strings.Cut(config.UserAgent, "Mac OS X ")
			require.True(t, ok, "header %q", config.UserAgent)
			ver, _, _ = strings.Cut(ver, ")")
			assert.NotContains(t, ver, ".")
			assert.Len(t, strings.Split(ver, "_"), 3, "version token %q", ver)
		}
	})

	t.Run("firefox keeps the two-component dotted release", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			config, err := gen.Navigator(WithOS("mac"), WithNavigator("firefox"))
			require.NoError(t, err)

			_, ver, ok := strings.Cut(config.UserAgent, "Mac OS X ")
			require.True(t, ok)
			ver, _, _ = strings.Cut(ver, ";")
			assert.NotContains(t, ver, "_")
			assert.Len(t, strings.Split(ver, "."), 2, "version token %q", ver)
		}
	})
}

var winChromePattern = regexp.MustCompile(
	`^Mozilla/5\.0 \(Windows NT [\d.]+(; (WOW64|Win64; x64))?\) ` +
		`AppleWebKit/537\.36 \(KHTML, like Gecko\) ` +
		`Chrome/\d+\.0\.\d+\.\d+ Safari/537\.36$`)

func TestWindowsChromeHeaderShape(t *testing.T) {
	gen := seeded(t, 7)

	for i := 0; i < 100; i++ {
		ua, err := gen.UserAgent(WithOS("win"), WithNavigator("chrome"))
		require.NoError(t, err)
		assert.Regexp(t, winChromePattern, ua)
	}
}

func TestAndroidFirefoxTablet(t *testing.T) {
	gen := seeded(t, 8)

	for i := 0; i < 50; i++ {
		nav, err := gen.NavigatorJS(WithOS("android"), WithNavigator("firefox"), WithDeviceType("tablet"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(nav.UserAgent, "Mozilla/5.0 (Android"),
			"header %q", nav.UserAgent)
		assert.Contains(t, nav.UserAgent, "; Tablet")
		assert.True(t, strings.HasPrefix(nav.Platform, "Linux arm"))
		assert.True(t, strings.HasPrefix(nav.AppVersion, "5.0 (Android"))
	}
}

func TestNavigatorFixedFields(t *testing.T) {
	gen := seeded(t, 9)

	config, err := gen.Navigator(WithOS(All), WithDeviceType(All))
	require.NoError(t, err)

	assert.Equal(t, "Mozilla", config.AppCodeName)
	assert.Equal(t, "Gecko", config.Product)
	assert.Empty(t, config.VendorSub)
}

func TestNavigatorJSKeying(t *testing.T) {
	config, err := New(WithSeed(10)).Navigator(WithNavigator("chrome"))
	require.NoError(t, err)
	js, err := New(WithSeed(10)).NavigatorJS(WithNavigator("chrome"))
	require.NoError(t, err)

	if diff := cmp.Diff(config.JS(), js); diff != "" {
		t.Fatalf("JS view mismatch (-want +got):\n%s", diff)
	}

	raw, err := json.Marshal(js)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, want := range []string{
		"appCodeName", "appName", "appVersion", "platform", "userAgent",
		"oscpu", "product", "productSub", "vendor", "vendorSub", "buildID",
	} {
		assert.Contains(t, keys, want)
	}

	assert.Equal(t, "Google Inc.", js.Vendor)
	assert.Equal(t, "20030107", js.ProductSub)
}

func TestPlatformAliasEmitsDeprecationWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	gen := New(WithSeed(11), WithLogger(zap.New(core)))

	config, err := gen.Navigator(WithPlatform("linux"))
	require.NoError(t, err)
	assert.Equal(t, "linux", config.OSID)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "platform option is deprecated")

	// The supported spelling stays silent.
	_, err = gen.Navigator(WithOS("linux"))
	require.NoError(t, err)
	assert.Len(t, logs.All(), 1)
}

func TestPackageLevelHelpers(t *testing.T) {
	ua, err := UserAgent(WithOS("win"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0"))

	config, err := Navigator(WithNavigator("firefox"))
	require.NoError(t, err)
	assert.Equal(t, "firefox", config.NavigatorID)

	js, err := NavigatorJS(WithDeviceType("smartphone"))
	require.NoError(t, err)
	assert.NotEmpty(t, js.UserAgent)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	gen := seeded(t, 12)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := gen.Navigator(WithOS(All), WithDeviceType(All))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestEnumAccessors(t *testing.T) {
	assert.ElementsMatch(t, []string{"desktop", "smartphone", "tablet"}, DeviceTypes())
	assert.ElementsMatch(t, []string{"win", "mac", "linux", "android"}, OSes())
	assert.ElementsMatch(t, []string{"chrome", "firefox", "ie"}, Navigators())
}
