// Package catalog holds the static reference tables the generator samples
// from: device/OS/browser compatibility matrices, historical release and
// build tables, platform and CPU string tables, and the mobile device-model
// catalog. Everything here is immutable, loaded once at process start.
package catalog

// DeviceType identifies the hardware class of a generated identity.
type DeviceType string

const (
	DeviceDesktop    DeviceType = "desktop"
	DeviceSmartphone DeviceType = "smartphone"
	DeviceTablet     DeviceType = "tablet"
)

// OS identifies the operating-system family.
type OS string

const (
	OSWindows OS = "win"
	OSMac     OS = "mac"
	OSLinux   OS = "linux"
	OSAndroid OS = "android"
)

// Browser identifies the browser engine family.
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserIE      Browser = "ie"
)

// Enumeration order is stable so seeded runs stay reproducible.
var (
	DeviceTypes = []DeviceType{DeviceDesktop, DeviceSmartphone, DeviceTablet}
	OSes        = []OS{OSWindows, OSLinux, OSMac, OSAndroid}
	Browsers    = []Browser{BrowserChrome, BrowserFirefox, BrowserIE}
)

// Compatibility matrices. The four mappings are mutually consistent: any
// triple admitted by all pairwise mappings at once is a genuinely valid
// combination, which is what the constraint solver relies on.
var (
	DeviceTypeOS = map[DeviceType][]OS{
		DeviceDesktop:    {OSWindows, OSMac, OSLinux},
		DeviceSmartphone: {OSAndroid},
		DeviceTablet:     {OSAndroid},
	}
	OSDeviceType = map[OS][]DeviceType{
		OSWindows: {DeviceDesktop},
		OSLinux:   {DeviceDesktop},
		OSMac:     {DeviceDesktop},
		OSAndroid: {DeviceSmartphone, DeviceTablet},
	}
	DeviceTypeNavigator = map[DeviceType][]Browser{
		DeviceDesktop:    {BrowserChrome, BrowserFirefox, BrowserIE},
		DeviceSmartphone: {BrowserFirefox, BrowserChrome},
		DeviceTablet:     {BrowserFirefox, BrowserChrome},
	}
	NavigatorDeviceType = map[Browser][]DeviceType{
		BrowserIE:      {DeviceDesktop},
		BrowserChrome:  {DeviceDesktop, DeviceSmartphone, DeviceTablet},
		BrowserFirefox: {DeviceDesktop, DeviceSmartphone, DeviceTablet},
	}
	OSNavigator = map[OS][]Browser{
		OSWindows: {BrowserChrome, BrowserFirefox, BrowserIE},
		OSMac:     {BrowserFirefox, BrowserChrome},
		OSLinux:   {BrowserChrome, BrowserFirefox},
		OSAndroid: {BrowserFirefox, BrowserChrome},
	}
	NavigatorOS = map[Browser][]OS{
		BrowserChrome:  {OSWindows, OSLinux, OSMac, OSAndroid},
		BrowserFirefox: {OSWindows, OSLinux, OSMac, OSAndroid},
		BrowserIE:      {OSWindows},
	}
)

// ValidDeviceType reports whether s names a known device type.
func ValidDeviceType(s string) bool {
	_, ok := DeviceTypeOS[DeviceType(s)]
	return ok
}

// ValidOS reports whether s names a known OS family.
func ValidOS(s string) bool {
	_, ok := OSNavigator[OS(s)]
	return ok
}

// ValidBrowser reports whether s names a known browser engine.
func ValidBrowser(s string) bool {
	_, ok := NavigatorOS[Browser(s)]
	return ok
}

func Contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
