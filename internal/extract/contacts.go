package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Contacts holds emails and links found in a resume.
type Contacts struct {
	Emails []string `json:"emails"`
	Links  []string `json:"links"`
}

var validURLEndings = []string{
	".com", ".org", ".net", ".io", ".co", ".co.uk", ".ai", ".edu",
	".gov", ".us", ".uk", ".de", ".fr", ".jp", ".ca", ".au", ".info",
	".dev", ".tech", ".biz", ".online",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}

var (
	emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	urlPattern   = regexp.MustCompile(`\b(?:https?://|www\.)?[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(?:/[^\s]*)?\b`)
)

// FindContacts extracts emails and URLs from the resume text. Bare domains of
// common mail providers are not reported as links.
func FindContacts(text string) *Contacts {
	emails := emailPattern.FindAllString(text, -1)
	urls := urlPattern.FindAllString(text, -1)

	seen := make(map[string]struct{})
	var links []string

	for _, url := range urls {
		if !plausibleURL(url) {
			continue
		}
		if isMailDomain(url) {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		links = append(links, url)
	}

	sort.Strings(links)

	return &Contacts{
		Emails: emails,
		Links:  links,
	}
}

func plausibleURL(url string) bool {
	if strings.Contains(url, "/") {
		return true
	}
	for _, tld := range validURLEndings {
		if strings.HasSuffix(url, tld) {
			return true
		}
	}
	return false
}

func isMailDomain(url string) bool {
	for _, domain := range emailDomains {
		if url == domain {
			return true
		}
	}
	return false
}
