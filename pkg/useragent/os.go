package useragent

import "regexp"

// osRules is the OS chain in evaluation order. macOS precedes the iOS rules,
// so iPhone user agents that also carry "like Mac OS X" resolve to macOS.
var osRules = []rule{
	{
		Name:     OSWindows,
		Keywords: []string{"Windows NT"},
		Regex:    regexp.MustCompile(`Windows NT ([0-9.]+)`),
	},
	{
		Name:       OSMacOS,
		Keywords:   []string{"Mac OS X"},
		Regex:      regexp.MustCompile(`Mac OS X ([0-9_]+)`),
		Underscore: true,
	},
	{
		Name:     OSAndroid,
		Keywords: []string{"Android"},
		Regex:    regexp.MustCompile(`Android ([0-9.]+)`),
	},
	{
		Name:       OSiOS,
		Keywords:   []string{"iPhone OS"},
		Regex:      regexp.MustCompile(`iPhone OS ([0-9_]+)`),
		Underscore: true,
	},
	{
		Name:       OSiOS,
		Keywords:   []string{"iPad; CPU OS"},
		Regex:      regexp.MustCompile(`CPU OS ([0-9_]+)`),
		Underscore: true,
	},
	{
		// Linux "version" is whatever follows the token, usually the architecture
		Name:     OSLinux,
		Keywords: []string{"Linux"},
		Regex:    regexp.MustCompile(`Linux ([^;)]+)`),
	},
}

// ParseOS runs the OS chain against ua and returns the name and version of
// the first matching rule, or OSUnknown and an empty version.
func ParseOS(ua string) (name, version string) {
	return firstMatch(osRules, ua, OSUnknown)
}
