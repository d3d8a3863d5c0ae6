// Package uri builds links to the upstream repository.
package uri

import (
	"net/url"
	"strings"
)

// DefaultRepoURL is the webchat repository pull requests are opened against.
const DefaultRepoURL = "https://github.com/Cognigy/Webchat"

// PullRequestURL returns the web URL of pull request prNumber in repoURL.
// An empty repoURL falls back to DefaultRepoURL.
func PullRequestURL(repoURL, prNumber string) string {
	base := strings.TrimSpace(repoURL)
	if base == "" {
		base = DefaultRepoURL
	}

	// Trailing slashes and a trailing "/pull" segment are both accepted
	base = strings.TrimRight(base, "/")
	base = strings.TrimSuffix(base, "/pull")

	return base + "/pull/" + url.PathEscape(prNumber)
}
