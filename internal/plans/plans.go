// Package plans holds the authored patch plans for the webchat testing
// app. Each plan is a fixed, ordered list of edits; only the values
// injected into replacements depend on the run's parameters.
package plans

import (
	"fmt"
	"strings"

	"github.com/taigrr/webchat-preview/internal/literal"
	"github.com/taigrr/webchat-preview/internal/patch"
	"github.com/taigrr/webchat-preview/internal/types"
	"github.com/taigrr/webchat-preview/internal/uri"
)

const (
	DefaultAppPath       = "src/App.jsx"
	DefaultVitePath      = "vite.config.js"
	DefaultCSSPath       = "src/index.css"
	DefaultLocalBuildURL = "./webchat.js"
)

// Settings tune where the plans apply and what they inject besides the
// run parameters.
type Settings struct {
	AppPath       string
	VitePath      string
	CSSPath       string
	RepoURL       string
	LocalBuildURL string
	Banner        bool
}

func (s Settings) withDefaults() Settings {
	if s.AppPath == "" {
		s.AppPath = DefaultAppPath
	}
	if s.VitePath == "" {
		s.VitePath = DefaultVitePath
	}
	if s.CSSPath == "" {
		s.CSSPath = DefaultCSSPath
	}
	if s.RepoURL == "" {
		s.RepoURL = uri.DefaultRepoURL
	}
	if s.LocalBuildURL == "" {
		s.LocalBuildURL = DefaultLocalBuildURL
	}
	return s
}

// ValidateParameters rejects parameters that cannot be embedded safely.
// The PR number ends up inside storage keys, so it must be digits only.
func ValidateParameters(params types.PatchParameters) error {
	if !literal.IsDecimal(params.PRNumber) {
		return patch.NewInvalidArgument(fmt.Sprintf("pr number must be decimal digits, got %q", params.PRNumber))
	}
	return nil
}

// All returns every plan for a run in execution order: the app source,
// the vite config and, when the banner is enabled, the stylesheet.
func All(params types.PatchParameters, s Settings) ([]types.Plan, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	s = s.withDefaults()

	plans := []types.Plan{App(params, s), Vite(params, s)}
	if s.Banner {
		plans = append(plans, Stylesheet(s))
	}
	return plans, nil
}

// storageKey appends the per-PR namespace to a persisted-storage key.
func storageKey(key, prNumber string) string {
	return literal.Quote(key + "-pr-" + prNumber)
}

// configBlock renders the PR_CONFIG constant inserted after the imports.
func configBlock(params types.PatchParameters, s Settings) string {
	var b strings.Builder
	b.WriteString("\n// --- PR Preview Config (injected by CI) ---\n")
	b.WriteString("const PR_CONFIG = {\n")
	fmt.Fprintf(&b, "  prNumber: %s,\n", literal.Quote(params.PRNumber))
	fmt.Fprintf(&b, "  commitSha: %s,\n", literal.Quote(params.CommitSha))
	fmt.Fprintf(&b, "  endpoint: %s,\n", literal.Quote(params.Endpoint))
	fmt.Fprintf(&b, "  localBuildUrl: %s,\n", literal.Quote(s.LocalBuildURL))
	fmt.Fprintf(&b, "  prUrl: %s,\n", literal.Quote(uri.PullRequestURL(s.RepoURL, params.PRNumber)))
	b.WriteString("};\n")
	return b.String()
}
