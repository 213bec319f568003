// Package constraint normalizes user-supplied axis filters and picks one
// valid (device type, OS, browser) triple under the compatibility matrices.
package constraint

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

// All is the sentinel filter value that expands to every member of an axis.
const All = "all"

// InvalidOptionError reports a filter value outside its enumeration, or a
// filter combination that admits no valid triple. It is the only user-facing
// error the generator produces.
type InvalidOptionError struct {
	// Option is the name of the offending parameter (os, navigator,
	// device_type).
	Option string
	// Values holds the rejected value(s); empty for a pure conflict.
	Values []string
	// Reason describes a cross-option conflict when no single value is
	// at fault.
	Reason string
}

func (e *InvalidOptionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid option: %s", e.Reason)
	}
	return fmt.Sprintf("option %s contains invalid value: %s",
		e.Option, strings.Join(e.Values, ", "))
}

// Filter is a normalized axis restriction: either unset (use the axis
// default) or an explicit value list, possibly containing the All sentinel.
type Filter struct {
	set    bool
	values []string
}

// Unset returns the zero filter; the solver substitutes the axis default.
func Unset() Filter { return Filter{} }

// Exactly restricts an axis to the given values.
func Exactly(values ...string) Filter {
	return Filter{set: true, values: values}
}

// IsSet reports whether the filter carries explicit values.
func (f Filter) IsSet() bool { return f.set }

// choices expands a filter into the concrete value list for its axis:
// defaults when unset, every member when the All sentinel appears, and the
// validated explicit list otherwise.
func (f Filter) choices(option string, defaults, all []string) ([]string, error) {
	vals := defaults
	if f.set {
		vals = f.values
	}
	for _, v := range vals {
		if v == All {
			return all, nil
		}
	}
	for _, v := range vals {
		if !catalog.Contains(all, v) {
			return nil, &InvalidOptionError{Option: option, Values: []string{v}}
		}
	}
	return vals, nil
}

func enumStrings[T ~string](list []T) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = string(v)
	}
	return out
}

// Pick draws one (device type, OS, browser) triple uniformly at random from
// the combinations that satisfy all three filters and all three pairwise
// compatibility matrices at once.
func Pick(rng *rand.Rand, deviceType, os, navigator Filter) (catalog.DeviceType, catalog.OS, catalog.Browser, error) {
	allDevices := enumStrings(catalog.DeviceTypes)
	allOSes := enumStrings(catalog.OSes)
	allBrowsers := enumStrings(catalog.Browsers)

	// With no OS restriction a desktop identity is the sensible default;
	// an explicit OS widens the device default to every device type.
	deviceDefaults := []string{string(catalog.DeviceDesktop)}
	if os.IsSet() {
		deviceDefaults = allDevices
	}

	devChoices, err := deviceType.choices("device_type", deviceDefaults, allDevices)
	if err != nil {
		return "", "", "", err
	}
	osChoices, err := os.choices("os", allOSes, allOSes)
	if err != nil {
		return "", "", "", err
	}
	navChoices, err := navigator.choices("navigator", allBrowsers, allBrowsers)
	if err != nil {
		return "", "", "", err
	}

	type triple struct {
		dev catalog.DeviceType
		os  catalog.OS
		nav catalog.Browser
	}
	var variants []triple
	for _, d := range devChoices {
		for _, o := range osChoices {
			for _, n := range navChoices {
				dev, osID, nav := catalog.DeviceType(d), catalog.OS(o), catalog.Browser(n)
				if catalog.Contains(catalog.DeviceTypeOS[dev], osID) &&
					catalog.Contains(catalog.DeviceTypeNavigator[dev], nav) &&
					catalog.Contains(catalog.OSNavigator[osID], nav) {
					variants = append(variants, triple{dev, osID, nav})
				}
			}
		}
	}
	if len(variants) == 0 {
		return "", "", "", &InvalidOptionError{
			Reason: "options device_type, os and navigator conflict with each other",
		}
	}
	v := variants[rng.Intn(len(variants))]
	return v.dev, v.os, v.nav, nil
}
