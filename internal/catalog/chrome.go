package catalog

// ChromeBuild maps a Chrome major version to the build-number range observed
// for its stable releases. The patch component is sampled separately in
// [0, ChromeMaxPatch].
type ChromeBuild struct {
	Major    int
	MinBuild int
	MaxBuild int
}

// ChromeMaxPatch bounds the sampled patch component of a Chrome version.
const ChromeMaxPatch = 120

// ChromeBuilds covers Chrome 49 (2016) through 87 (2021).
var ChromeBuilds = []ChromeBuild{
	{49, 2623, 2623},
	{50, 2661, 2661},
	{51, 2704, 2704},
	{52, 2743, 2743},
	{53, 2785, 2785},
	{54, 2840, 2840},
	{55, 2883, 2883},
	{56, 2924, 2924},
	{57, 2987, 2987},
	{58, 3029, 3029},
	{59, 3071, 3071},
	{60, 3112, 3112},
	{61, 3163, 3163},
	{62, 3202, 3202},
	{63, 3239, 3239},
	{64, 3251, 3282},
	{65, 3325, 3325},
	{66, 3359, 3359},
	{67, 3396, 3396},
	{68, 3440, 3440},
	{69, 3497, 3497},
	{70, 3538, 3538},
	{71, 3578, 3578},
	{72, 3626, 3626},
	{73, 3683, 3683},
	{74, 3729, 3729},
	{75, 3770, 3770},
	{76, 3809, 3809},
	{77, 3865, 3865},
	{78, 3904, 3904},
	{79, 3945, 3945},
	{80, 3987, 3987},
	{81, 4044, 4044},
	{83, 4103, 4103},
	{84, 4147, 4147},
	{85, 4183, 4183},
	{86, 4240, 4240},
	{87, 4280, 4280},
}
