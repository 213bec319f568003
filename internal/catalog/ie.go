package catalog

// IEVersion describes one Internet Explorer release: the numeric version,
// the display token embedded in the UA string, and the Trident engine
// version that shipped with it.
type IEVersion struct {
	Numeric int
	Display string
	Trident string
}

// IEVersions holds the four IE releases the generator models (2009-2013).
var IEVersions = []IEVersion{
	{8, "MSIE 8.0", "4.0"},
	{9, "MSIE 9.0", "5.0"},
	{10, "MSIE 10.0", "6.0"},
	{11, "MSIE 11.0", "7.0"},
}
