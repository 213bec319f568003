package assemble

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

// templateKey names one of the fixed User-Agent templates. The set is
// closed: every (browser, device type, version) combination maps onto
// exactly one key.
type templateKey string

const (
	tplFirefox          templateKey = "firefox"
	tplChrome           templateKey = "chrome"
	tplChromeSmartphone templateKey = "chrome_smartphone"
	tplChromeTablet     templateKey = "chrome_tablet"
	tplIE11             templateKey = "ie_11"
	tplIELess11         templateKey = "ie_less_11"
)

// templates renders a header from the assembled components. Output must be
// byte-identical to the historical real-world format for each combination,
// so these stay literal Sprintf forms rather than anything smarter.
var templates = map[templateKey]func(System, App) string{
	tplFirefox: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (%s; rv:%s) Gecko/%s Firefox/%s",
			s.UAPlatform, a.BuildVersion, a.GeckoTrail, a.BuildVersion)
	},
	tplChrome: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36",
			s.UAPlatform, a.BuildVersion)
	},
	tplChromeSmartphone: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Mobile Safari/537.36",
			s.UAPlatform, a.BuildVersion)
	},
	tplChromeTablet: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36",
			s.UAPlatform, a.BuildVersion)
	},
	tplIE11: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (%s; Trident/%s; rv:11.0) like Gecko",
			s.UAPlatform, a.TridentVersion)
	},
	tplIELess11: func(s System, a App) string {
		return fmt.Sprintf("Mozilla/5.0 (compatible; %s; %s; Trident/%s)",
			a.BuildVersion, s.UAPlatform, a.TridentVersion)
	},
}

// chooseTemplate maps the chosen combination onto its template key. IE 11
// adopted the Gecko-style token, so it gets its own form.
func chooseTemplate(deviceType catalog.DeviceType, browser catalog.Browser, app App) templateKey {
	switch browser {
	case catalog.BrowserFirefox:
		return tplFirefox
	case catalog.BrowserIE:
		if app.BuildVersion == "MSIE 11.0" {
			return tplIE11
		}
		return tplIELess11
	case catalog.BrowserChrome:
		switch deviceType {
		case catalog.DeviceSmartphone:
			return tplChromeSmartphone
		case catalog.DeviceTablet:
			return tplChromeTablet
		default:
			return tplChrome
		}
	}
	panic(fmt.Sprintf("assemble: no template for browser %q", browser))
}

// UserAgent renders the final header string for the chosen combination.
func UserAgent(deviceType catalog.DeviceType, browser catalog.Browser, system System, app App) string {
	return templates[chooseTemplate(deviceType, browser, app)](system, app)
}

// AppVersion derives the navigator.appVersion field: the part of the header
// after "Mozilla/" for Chrome and IE, a synthesized "5.0 (<token>)" for
// Firefox.
func AppVersion(os catalog.OS, browser catalog.Browser, platformVersion, userAgent string) string {
	switch browser {
	case catalog.BrowserChrome, catalog.BrowserIE:
		rest, ok := strings.CutPrefix(userAgent, "Mozilla/")
		if !ok {
			// Template invariant: every Chrome/IE header begins with
			// the Mozilla token.
			panic(fmt.Sprintf("assemble: header missing Mozilla/ prefix: %q", userAgent))
		}
		return rest
	case catalog.BrowserFirefox:
		if os == catalog.OSAndroid {
			return fmt.Sprintf("5.0 (%s)", platformVersion)
		}
		token := map[catalog.OS]string{
			catalog.OSWindows: "Windows",
			catalog.OSMac:     "Macintosh",
			catalog.OSLinux:   "X11",
		}[os]
		return fmt.Sprintf("5.0 (%s)", token)
	}
	panic(fmt.Sprintf("assemble: unknown browser %q", browser))
}
