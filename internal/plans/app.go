package plans

import (
	"github.com/taigrr/webchat-preview/internal/types"
)

const (
	defaultEndpoint = `"https://endpoint-dev.cognigy.ai/45c4ec61c937e830ecdebfaad977e2ed0bd84001e3b6df736e84560b73506463"`

	endpointKeyDecl = `const ENDPOINT_STORAGE_KEY = `
	endpointKey     = "webchat-testing-endpoint"
	settingsKeyDecl = `const SETTINGS_STORAGE_KEY = `
	settingsKey     = "webchat-testing-settings"

	selectedReleaseState = `const [selectedRelease, setSelectedRelease] = useState("");`

	releasesEffect = `  useEffect(() => {
    if (releases?.length > 0) {
      setSelectedRelease(releases[0].assets[2].browser_download_url);
    }
  }, [releases]);`

	releasesEffectGuarded = `  useEffect(() => {
    // Only auto-select latest release if no PR build is pre-selected
    if (releases?.length > 0 && !PR_CONFIG.localBuildUrl) {
      setSelectedRelease(releases[0].assets[2].browser_download_url);
    }
  }, [releases]);`

	releaseLink = `            <a
              href={
                releases.find(
                  (release) =>
                    release.assets[2].browser_download_url === selectedRelease,
                )?.html_url
              }
              target="_blank"
              rel="noreferrer"
            >
              Release
            </a>`

	releaseOrPullRequestLink = `            <a
              href={
                selectedRelease === PR_CONFIG.localBuildUrl
                  ? PR_CONFIG.prUrl
                  : releases.find(
                      (release) =>
                        release.assets[2].browser_download_url === selectedRelease,
                    )?.html_url
              }
              target="_blank"
              rel="noreferrer"
            >
              {selectedRelease === PR_CONFIG.localBuildUrl ? "Pull Request" : "Release"}
            </a>`

	releaseOptions = `{releases.map((release)`

	prBuildOption = `<option value={PR_CONFIG.localBuildUrl}>
                PR #{PR_CONFIG.prNumber} Build ({PR_CONFIG.commitSha?.substring(0, 7)})
              </option>
              `

	releaseTitle = `<h1>Webchat Release Testing</h1>`
	previewTitle = `<h1>Webchat PR Preview</h1>`

	uiRoot   = `<div className="ui">`
	prBanner = `<div className="ui">
        <div className="pr-banner">
          <strong>PR Preview</strong>
          <span className="pr-pill">PR #{PR_CONFIG.prNumber}</span>
          <span className="pr-pill">{PR_CONFIG.commitSha?.substring(0, 7)}</span>
        </div>`
)

// App builds the plan for the testing app's main component.
func App(params types.PatchParameters, s Settings) types.Plan {
	s = s.withDefaults()
	pr := params.PRNumber

	steps := []types.EditStep{
		{
			Name:        "insert-pr-config",
			Kind:        types.KindAnchorInsert,
			Anchor:      types.AnchorRule{Prefix: "import "},
			Replacement: configBlock(params, s),
		},
		{
			Name:        "namespace-endpoint-storage-key",
			Kind:        types.KindExactReplace,
			Pattern:     endpointKeyDecl + `"` + endpointKey + `";`,
			Replacement: endpointKeyDecl + storageKey(endpointKey, pr) + ";",
			Expected:    1,
		},
		{
			Name:        "namespace-settings-storage-key",
			Kind:        types.KindExactReplace,
			Pattern:     settingsKeyDecl + `"` + settingsKey + `";`,
			Replacement: settingsKeyDecl + storageKey(settingsKey, pr) + ";",
			Expected:    1,
		},
		{
			Name:        "prefer-injected-endpoint",
			Kind:        types.KindExactReplace,
			Pattern:     "endpoint = " + defaultEndpoint,
			Replacement: "endpoint = PR_CONFIG.endpoint || " + defaultEndpoint,
			Expected:    1,
		},
		{
			Name:        "select-local-build",
			Kind:        types.KindExactReplace,
			Pattern:     selectedReleaseState,
			Replacement: `const [selectedRelease, setSelectedRelease] = useState(PR_CONFIG.localBuildUrl);`,
			Expected:    1,
		},
		{
			Name:        "keep-local-build-selected",
			Kind:        types.KindExactReplace,
			Pattern:     releasesEffect,
			Replacement: releasesEffectGuarded,
			Expected:    1,
		},
		{
			Name:        "link-pull-request",
			Kind:        types.KindExactReplace,
			Pattern:     releaseLink,
			Replacement: releaseOrPullRequestLink,
			Expected:    1,
		},
		// Not count-validated upstream either; the anchor is distinctive but
		// has not been confirmed to occur once in every app revision.
		{
			Name:        "add-pr-build-option",
			Kind:        types.KindUncheckedReplace,
			Pattern:     releaseOptions,
			Replacement: prBuildOption + releaseOptions,
		},
		{
			Name:        "set-preview-title",
			Kind:        types.KindExactReplace,
			Pattern:     releaseTitle,
			Replacement: previewTitle,
			Expected:    1,
		},
	}

	if s.Banner {
		steps = append(steps, types.EditStep{
			Name:        "insert-pr-banner",
			Kind:        types.KindExactReplace,
			Pattern:     uiRoot,
			Replacement: prBanner,
			Expected:    1,
		})
	}

	return types.Plan{Name: "app", Path: s.AppPath, Steps: steps}
}
