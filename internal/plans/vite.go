package plans

import (
	"github.com/taigrr/webchat-preview/internal/literal"
	"github.com/taigrr/webchat-preview/internal/types"
)

const viteConfigOpen = `export default defineConfig({`

// Vite builds the plan that sets the build's base path as the first
// property of the exported config object.
func Vite(params types.PatchParameters, s Settings) types.Plan {
	s = s.withDefaults()
	return types.Plan{
		Name: "vite",
		Path: s.VitePath,
		Steps: []types.EditStep{
			{
				Name:        "set-base-path",
				Kind:        types.KindExactReplace,
				Pattern:     viteConfigOpen,
				Replacement: viteConfigOpen + "\n  base: " + literal.Quote(params.BasePath) + ",",
				Expected:    1,
			},
		},
	}
}
