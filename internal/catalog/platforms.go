package catalog

// OSPlatform lists the release strings each OS family can report.
// Android entries run from KitKat through Android 11; desktop Windows
// covers XP through 10.
var OSPlatform = map[OS][]string{
	OSWindows: {
		"Windows NT 5.1",  // Windows XP
		"Windows NT 6.1",  // Windows 7
		"Windows NT 6.2",  // Windows 8
		"Windows NT 6.3",  // Windows 8.1
		"Windows NT 10.0", // Windows 10
	},
	OSMac: {
		"Macintosh; Intel Mac OS X 10.8",
		"Macintosh; Intel Mac OS X 10.9",
		"Macintosh; Intel Mac OS X 10.10",
		"Macintosh; Intel Mac OS X 10.11",
		"Macintosh; Intel Mac OS X 10.12",
		"Macintosh; Intel Mac OS X 10.13",
		"Macintosh; Intel Mac OS X 10.14",
		"Macintosh; Intel Mac OS X 10.15",
	},
	OSLinux: {
		"X11; Linux",
		"X11; Ubuntu; Linux",
	},
	OSAndroid: {
		"Android 4.4",   // 2013-10-31
		"Android 4.4.1", // 2013-12-05
		"Android 4.4.2", // 2013-12-09
		"Android 4.4.3", // 2014-06-02
		"Android 4.4.4", // 2014-06-19
		"Android 5.0",   // 2014-11-12
		"Android 5.0.1", // 2014-12-02
		"Android 5.0.2", // 2014-12-19
		"Android 5.1",   // 2015-03-09
		"Android 5.1.1", // 2015-04-21
		"Android 6.0",   // 2015-10-05
		"Android 6.0.1", // 2015-12-07
		"Android 7.0",   // 2016-08-22
		"Android 7.1",   // 2016-10-04
		"Android 7.1.1", // 2016-12-05
		"Android 7.1.2", // 2016-12-05
		"Android 8.0",
		"Android 8.1",
		"Android 9",
		"Android 10",
		"Android 11",
	},
}

// OSCPU lists the CPU-architecture tokens each OS family can report.
// The empty Windows token means a plain 32-bit build.
var OSCPU = map[OS][]string{
	OSWindows: {
		"",           // 32bit
		"Win64; x64", // 64bit
		"WOW64",      // 32bit process on 64bit system
	},
	OSLinux: {
		"i686",           // 32bit
		"x86_64",         // 64bit
		"i686 on x86_64", // 32bit process on 64bit system
	},
	OSMac: {""},
	OSAndroid: {
		"armv7l", // 32bit
		"armv8l", // 64bit
	},
}

// MacChromeBuildRange maps a macOS release to the half-open [min,max) range
// Chrome draws its extra minor build component from. Chrome reports a more
// granular OS build than Firefox does on the same platform.
var MacChromeBuildRange = map[string][2]int{
	"10.8":  {0, 8},
	"10.9":  {0, 5},
	"10.10": {0, 5},
	"10.11": {0, 6},
	"10.12": {0, 6},
	"10.13": {0, 6},
	"10.14": {0, 6},
	"10.15": {0, 7},
	"11.0":  {0, 2},
}
