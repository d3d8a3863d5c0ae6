package plans

import "github.com/taigrr/webchat-preview/internal/types"

const bannerCSS = `/* --- PR Preview Banner --- */
.pr-banner {
    width: 100%;
    background: #1a1a2e;
    color: #e0e0e0;
    padding: 10px 24px;
    font-size: 13px;
    display: flex;
    align-items: center;
    gap: 12px;
    flex-wrap: wrap;
    position: sticky;
    top: 0;
    z-index: 9999;
}
.pr-banner strong { color: #fff; }
.pr-pill {
    background: #2d2d4a;
    border-radius: 12px;
    padding: 2px 10px;
    font-family: monospace;
    font-size: 12px;
    color: #c3c3ff;
}

`

// Stylesheet builds the plan that prepends the banner styles.
func Stylesheet(s Settings) types.Plan {
	s = s.withDefaults()
	return types.Plan{
		Name: "stylesheet",
		Path: s.CSSPath,
		Steps: []types.EditStep{
			{
				Name:        "prepend-banner-styles",
				Kind:        types.KindPrepend,
				Replacement: bannerCSS,
			},
		},
	}
}
