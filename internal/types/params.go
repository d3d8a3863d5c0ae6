package types

type (
	// PatchParameters are the caller-supplied values injected into the
	// target files. All of them are untrusted text.
	PatchParameters struct {
		PRNumber  string `json:"prNumber" yaml:"pr_number"`
		CommitSha string `json:"commitSha" yaml:"commit_sha"`
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		BasePath  string `json:"basePath" yaml:"base_path"`
	}

	// TargetFile holds one file's text before and after patching.
	TargetFile struct {
		Path   string `json:"path"`
		Before string `json:"-"`
		After  string `json:"-"`
	}
)
