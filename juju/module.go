// Package juju renders the Juju prompt segment: the installed snap version
// and, when the client has one selected, the active controller and model.
package juju

import (
	"os"

	"github.com/grovetools/juju-prompt/format"
)

// State is the outcome of a single Run.
type State int

const (
	StateDisabled State = iota
	StateNoVersion
	StateRendered
	StateRenderFailed
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateNoVersion:
		return "no-version"
	case StateRendered:
		return "rendered"
	case StateRenderFailed:
		return "render-failed"
	}
	return "unknown"
}

// Result is what Run produced. Segments is only set in StateRendered and Err
// only in StateRenderFailed.
type Result struct {
	State    State
	Segments []format.Segment
	Err      error
}

// Module assembles the segment. Its fields are read, never written, by Run.
type Module struct {
	Config Config
	// SnapMetadataPath overrides the location of the snap metadata.
	SnapMetadataPath string
	// LookupEnv reads environment variables.
	LookupEnv func(string) (string, bool)
	// Report receives template errors. It is only called when rendering fails.
	Report func(error)
}

// New returns a Module reading the real snap metadata and environment.
func New(cfg Config) *Module {
	return &Module{
		Config:           cfg,
		SnapMetadataPath: SnapMetadataPath,
		LookupEnv:        os.LookupEnv,
	}
}

// Run detects Juju and renders the segment.
func (m *Module) Run() Result {
	cfg := m.Config
	if cfg.Disabled {
		return Result{State: StateDisabled}
	}

	path := m.SnapMetadataPath
	if path == "" {
		path = SnapMetadataPath
	}
	version, ok := ReadVersion(path)
	if !ok {
		return Result{State: StateNoVersion}
	}

	model := format.Variable{}
	if active, ok := m.activeModel(); ok {
		model = format.Value(active.Suffix())
	}

	segs, err := cfg.Render(version, model)
	if err != nil {
		if m.Report != nil {
			m.Report(err)
		}
		return Result{State: StateRenderFailed, Err: err}
	}
	return Result{State: StateRendered, Segments: segs}
}

func (m *Module) activeModel() (ActiveModel, bool) {
	lookupEnv := m.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	dir, ok := BaseDir(lookupEnv)
	if !ok {
		return ActiveModel{}, false
	}
	return ResolveActiveModel(dir)
}

// Segments runs the module and returns its segments, or false when the
// segment should be left out of the prompt.
func (m *Module) Segments() ([]format.Segment, bool) {
	res := m.Run()
	if res.State != StateRendered {
		return nil, false
	}
	return res.Segments, true
}
