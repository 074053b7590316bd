package useragent

// Operating system names reported by the classifier
const (
	// OSWindows identifies Microsoft Windows ("Windows NT" token)
	OSWindows = "Windows"

	// OSMacOS identifies Apple macOS ("Mac OS X" token)
	OSMacOS = "macOS"

	// OSAndroid identifies Google Android
	OSAndroid = "Android"

	// OSiOS identifies Apple iOS and iPadOS ("iPhone OS" or "iPad; CPU OS" tokens)
	OSiOS = "iOS"

	// OSLinux identifies Linux-based desktops
	OSLinux = "Linux"

	// OSUnknown is used when no OS rule matches
	OSUnknown = "Unknown"
)

// Browser names reported by the classifier
const (
	// BrowserHeadlessChrome identifies headless Chromium automation
	BrowserHeadlessChrome = "HeadlessChrome"

	// BrowserChrome identifies Google Chrome and unlisted Chromium derivatives
	BrowserChrome = "Chrome"

	// BrowserSafari identifies Apple Safari
	BrowserSafari = "Safari"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "Firefox"

	// BrowserEdge identifies Microsoft Edge
	BrowserEdge = "Edge"

	// BrowserOpera identifies Opera ("OPR/" token)
	BrowserOpera = "Opera"

	// BrowserUnknown is used when no browser rule matches
	BrowserUnknown = "Unknown"
)
