package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// rule is one link of a classification chain. It matches when the UA contains
// any of Keywords and none of Excludes. Version is the first capture of Regex.
type rule struct {
	Name       string
	Keywords   []string
	Excludes   []string
	Regex      *regexp.Regexp
	Underscore bool // version uses "_" as separator (10_15_7)
}

// matches reports whether ua satisfies the rule's keyword constraints
func (r rule) matches(ua string) bool {
	found := false
	for _, keyword := range r.Keywords {
		if strings.Contains(ua, keyword) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, exclude := range r.Excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// version extracts the version captured by the rule's regex
func (r rule) version(ua string) string {
	if r.Regex == nil {
		return ""
	}
	matches := r.Regex.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	if r.Underscore {
		return strings.ReplaceAll(matches[1], "_", ".")
	}
	return matches[1]
}

// firstMatch walks the chain in order and stops at the first matching rule
func firstMatch(chain []rule, ua, fallback string) (string, string) {
	for _, r := range chain {
		if r.matches(ua) {
			return r.Name, r.version(ua)
		}
	}
	return fallback, ""
}

// browserRules builds the browser chain. Order matters: Chromium derivatives
// carry both "Chrome/" and "Safari/", so Chrome must be tested before Safari
// and the negative keywords keep Opera (and optionally Edge) out of Chrome.
func browserRules(edgeChromium bool) []rule {
	chromeExcludes := []string{"Edge/", "OPR/"}
	edgeKeywords := []string{"Edg/"}
	edgeRegex := regexp.MustCompile(`Edg/([0-9.]+)`)
	if edgeChromium {
		chromeExcludes = []string{"Edge/", "Edg/", "OPR/"}
		edgeKeywords = []string{"Edg/", "Edge/"}
		edgeRegex = regexp.MustCompile(`Edge?/([0-9.]+)`)
	}

	return []rule{
		{
			Name:     BrowserHeadlessChrome,
			Keywords: []string{"HeadlessChrome/"},
			Regex:    regexp.MustCompile(`HeadlessChrome/([0-9.]+)`),
		},
		{
			Name:     BrowserChrome,
			Keywords: []string{"Chrome/"},
			Excludes: chromeExcludes,
			Regex:    regexp.MustCompile(`Chrome/([0-9.]+)`),
		},
		{
			// Safari reports its marketing version in "Version/", "Safari/" is the WebKit build
			Name:     BrowserSafari,
			Keywords: []string{"Safari/"},
			Excludes: []string{"Chrome/"},
			Regex:    regexp.MustCompile(`Version/([0-9.]+)`),
		},
		{
			Name:     BrowserFirefox,
			Keywords: []string{"Firefox/"},
			Regex:    regexp.MustCompile(`Firefox/([0-9.]+)`),
		},
		{
			Name:     BrowserEdge,
			Keywords: edgeKeywords,
			Regex:    edgeRegex,
		},
		{
			Name:     BrowserOpera,
			Keywords: []string{"OPR/"},
			Regex:    regexp.MustCompile(`OPR/([0-9.]+)`),
		},
	}
}

// ParseBrowser runs the default browser chain against ua
func ParseBrowser(ua string) Browser {
	return defaultClassifier.ParseBrowser(ua)
}
