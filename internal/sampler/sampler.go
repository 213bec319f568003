// Package sampler draws concrete version/build identifiers for each browser
// family from the historical catalogs. Every function takes an explicit
// *rand.Rand so callers control seeding and concurrency isolation; the
// catalogs are the only other input.
package sampler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/xkilldash9x/navforge/internal/catalog"
)

// minFirefoxWindowSec widens degenerate release windows (same-day releases,
// ESR rows that sit out of date order) so the build timestamp still varies.
const minFirefoxWindowSec = 100000

// FirefoxBuild samples a Firefox release and a build id derived from a
// random moment inside that release's window. The window runs up to the
// next table entry's date, or 24h past the release for the newest entry.
// The build id is the moment formatted as YYYYMMDDHHMMSS.
func FirefoxBuild(rng *rand.Rand) (version, buildID string) {
	idx := rng.Intn(len(catalog.FirefoxReleases))
	rel := catalog.FirefoxReleases[idx]

	var dateTo time.Time
	if idx+1 < len(catalog.FirefoxReleases) {
		dateTo = catalog.FirefoxReleases[idx+1].Date
	} else {
		dateTo = rel.Date.Add(24 * time.Hour)
	}

	secRange := int64(dateTo.Sub(rel.Date).Seconds()) - 1
	if secRange < minFirefoxWindowSec {
		secRange = minFirefoxWindowSec
	}
	offset := rng.Int63n(secRange + 1)
	buildTime := rel.Date.Add(time.Duration(offset) * time.Second)
	return rel.Version, buildTime.Format("20060102150405")
}

// ChromeBuild samples a Chrome version string of the form
// {major}.0.{build}.{patch}.
func ChromeBuild(rng *rand.Rand) string {
	b := catalog.ChromeBuilds[rng.Intn(len(catalog.ChromeBuilds))]
	build := b.MinBuild + rng.Intn(b.MaxBuild-b.MinBuild+1)
	patch := rng.Intn(catalog.ChromeMaxPatch + 1)
	return fmt.Sprintf("%d.0.%d.%d", b.Major, build, patch)
}

// IEBuild samples one of the four known Internet Explorer releases.
func IEBuild(rng *rand.Rand) catalog.IEVersion {
	return catalog.IEVersions[rng.Intn(len(catalog.IEVersions))]
}

// MacChromeMinor samples the extra minor build component Chrome appends to
// a macOS release string, e.g. 6 for "10.11" -> "10_11_6".
func MacChromeMinor(rng *rand.Rand, release string) int {
	r, ok := catalog.MacChromeBuildRange[release]
	if !ok {
		panic(fmt.Sprintf("sampler: no chrome build range for macOS release %q", release))
	}
	return r[0] + rng.Intn(r[1]-r[0])
}
