// Package assemble derives the platform, oscpu and app-identity strings for
// a chosen (device type, OS, browser) triple and renders the final
// User-Agent header. Browser and OS quirks live here: the Windows CPU-token
// suffix, the Mac+Chrome underscore rewrite, Android device models.
package assemble

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/xkilldash9x/navforge/internal/catalog"
	"github.com/xkilldash9x/navforge/internal/sampler"
)

// System carries the OS-derived components of an identity.
//
// PlatformVersion is the bare OS release name, UAPlatform is the token
// embedded in the User-Agent header, Platform feeds navigator.platform and
// OSCPU feeds navigator.oscpu.
type System struct {
	PlatformVersion string
	Platform        string
	UAPlatform      string
	OSCPU           string
}

// App carries the browser-derived components of an identity. GeckoTrail is
// only set for Firefox, TridentVersion only for Internet Explorer.
type App struct {
	Name           string
	ProductSub     string
	Vendor         string
	BuildVersion   string
	BuildID        string
	GeckoTrail     string
	TridentVersion string
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

// chromeMacPlatform rewrites a Firefox-style macOS platform token into the
// Chrome form: dots become underscores and a sampled minor build is
// appended, e.g. "Macintosh; Intel Mac OS X 10.8" -> "... 10_8_2".
func chromeMacPlatform(rng *rand.Rand, platform string) string {
	_, ver, ok := strings.Cut(platform, "OS X ")
	if !ok {
		panic(fmt.Sprintf("assemble: malformed macOS platform %q", platform))
	}
	minor := sampler.MacChromeMinor(rng, ver)
	macVer := strings.ReplaceAll(ver, ".", "_") + "_" + fmt.Sprint(minor)
	return "Macintosh; Intel Mac OS X " + macVer
}

// SystemComponents builds the platform strings for the chosen triple.
// Android combined with a desktop device type or with IE is a solver bug,
// not a user error, and panics.
func SystemComponents(rng *rand.Rand, deviceType catalog.DeviceType, os catalog.OS, browser catalog.Browser) System {
	switch os {
	case catalog.OSWindows:
		platformVersion := pick(rng, catalog.OSPlatform[catalog.OSWindows])
		platform := platformVersion
		if cpu := pick(rng, catalog.OSCPU[catalog.OSWindows]); cpu != "" {
			platform = platformVersion + "; " + cpu
		}
		return System{
			PlatformVersion: platformVersion,
			Platform:        platform,
			UAPlatform:      platform,
			OSCPU:           platform,
		}

	case catalog.OSLinux:
		cpu := pick(rng, catalog.OSCPU[catalog.OSLinux])
		platformVersion := pick(rng, catalog.OSPlatform[catalog.OSLinux])
		platform := platformVersion + " " + cpu
		return System{
			PlatformVersion: platformVersion,
			Platform:        platform,
			UAPlatform:      platform,
			OSCPU:           "Linux " + cpu,
		}

	case catalog.OSMac:
		platformVersion := pick(rng, catalog.OSPlatform[catalog.OSMac])
		platform := platformVersion
		if browser == catalog.BrowserChrome {
			platform = chromeMacPlatform(rng, platform)
		}
		return System{
			PlatformVersion: platformVersion,
			Platform:        "MacIntel",
			UAPlatform:      platform,
			OSCPU:           "Intel Mac OS X " + platform[strings.LastIndex(platform, " ")+1:],
		}

	case catalog.OSAndroid:
		if browser != catalog.BrowserFirefox && browser != catalog.BrowserChrome {
			panic(fmt.Sprintf("assemble: android does not support browser %q", browser))
		}
		if deviceType != catalog.DeviceSmartphone && deviceType != catalog.DeviceTablet {
			panic(fmt.Sprintf("assemble: android does not support device type %q", deviceType))
		}
		platformVersion := pick(rng, catalog.OSPlatform[catalog.OSAndroid])
		var uaPlatform string
		if browser == catalog.BrowserFirefox {
			if deviceType == catalog.DeviceSmartphone {
				uaPlatform = platformVersion + "; Mobile"
			} else {
				uaPlatform = platformVersion + "; Tablet"
			}
		} else {
			uaPlatform = "Linux; " + platformVersion + "; " + pick(rng, catalog.SmartphoneDevices)
		}
		oscpu := "Linux " + pick(rng, catalog.OSCPU[catalog.OSAndroid])
		return System{
			PlatformVersion: platformVersion,
			Platform:        oscpu,
			UAPlatform:      uaPlatform,
			OSCPU:           oscpu,
		}
	}
	panic(fmt.Sprintf("assemble: unknown os %q", os))
}

// AppComponents builds the browser-identity fields for the chosen pair.
//
// Firefox reports the fixed gecko trail on desktop OSes and its own version
// on Android. IE 11 unified its app name with Gecko-derived browsers; 8-10
// still identify as "Microsoft Internet Explorer".
func AppComponents(rng *rand.Rand, os catalog.OS, browser catalog.Browser) App {
	switch browser {
	case catalog.BrowserFirefox:
		version, buildID := sampler.FirefoxBuild(rng)
		geckoTrail := "20100101"
		if os == catalog.OSAndroid {
			geckoTrail = version
		}
		return App{
			Name:         "Netscape",
			ProductSub:   "20100101",
			Vendor:       "",
			BuildVersion: version,
			BuildID:      buildID,
			GeckoTrail:   geckoTrail,
		}

	case catalog.BrowserChrome:
		return App{
			Name:         "Netscape",
			ProductSub:   "20030107",
			Vendor:       "Google Inc.",
			BuildVersion: sampler.ChromeBuild(rng),
		}

	case catalog.BrowserIE:
		ie := sampler.IEBuild(rng)
		name := "Microsoft Internet Explorer"
		if ie.Numeric >= 11 {
			name = "Netscape"
		}
		return App{
			Name:           name,
			Vendor:         "",
			BuildVersion:   ie.Display,
			TridentVersion: ie.Trident,
		}
	}
	panic(fmt.Sprintf("assemble: unknown browser %q", browser))
}
