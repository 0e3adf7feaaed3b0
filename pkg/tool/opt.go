package tool

import (
	// Packages
	opt "github.com/mutablelogic/go-aura/pkg/opt"
)

// WithToolkit makes the tools of a toolkit available to a generator.
// Generators retrieve it with opts.Get(opt.ToolkitKey).
func WithToolkit(toolkit *Toolkit) opt.Opt {
	if toolkit == nil {
		return nil
	}
	return opt.SetAny(opt.ToolkitKey, toolkit)
}

// ToolkitFrom returns the toolkit set with WithToolkit, or nil
func ToolkitFrom(opts *opt.Options) *Toolkit {
	if opts == nil {
		return nil
	}
	if tk, ok := opts.Get(opt.ToolkitKey).(*Toolkit); ok {
		return tk
	}
	return nil
}
