package cli

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	tag  string
	time string
	sha  string
}

func getVersion() *version {
	v := &version{tag: BuildTag, time: BuildTime, sha: BuildSHA}
	if v.tag == `` {
		v.tag = `dirty`
	}
	return v
}

// String returns the version as <Git Tag> followed by the Git SHA and build time when known
func (v *version) String() string {
	if v.sha == `` {
		return v.tag
	}
	if v.time == `` {
		return fmt.Sprintf("%s (%s)", v.tag, v.sha)
	}
	return fmt.Sprintf("%s (%s, built %s)", v.tag, v.sha, v.time)
}
