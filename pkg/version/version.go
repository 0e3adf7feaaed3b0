package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Metadata describes the build
type Metadata struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Compiler  string `json:"compiler"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Hash      string `json:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short revision, or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

// Info returns the build metadata for an executable
func Info(execName string) Metadata {
	metadata := Metadata{
		Name:     execName,
		Version:  Version(),
		Compiler: runtime.Version(),
		Tag:      GitTag,
		Branch:   GitBranch,
	}

	// Add build info from runtime/debug
	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		metadata.Source = info.Main.Path
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				metadata.Hash = s.Value
			case "vcs.time":
				metadata.BuildTime = s.Value
			case "vcs.modified":
				metadata.Modified = s.Value == "true"
			case "GOOS":
				goos = s.Value
			case "GOARCH":
				goarch = s.Value
			}
		}
	}
	if goos != "" && goarch != "" {
		metadata.Platform = goos + "/" + goarch
	}
	return metadata
}

// JSON returns the build metadata as indented JSON
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Info(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func short(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}
