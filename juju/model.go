package juju

import (
	"fmt"
	"path/filepath"

	"github.com/grovetools/juju-prompt/document"
)

// DataSubdir is where Juju keeps client state, relative to $HOME.
const DataSubdir = ".local/share/juju"

const (
	controllersFile = "controllers.yaml"
	modelsFile      = "models.yaml"
)

// ActiveModel is the controller and model the Juju client currently targets.
type ActiveModel struct {
	Controller string
	Model      string
}

// Suffix is the text appended after the version, e.g. " (lxd:default)".
func (m ActiveModel) Suffix() string {
	return fmt.Sprintf(" (%s:%s)", m.Controller, m.Model)
}

// BaseDir locates the Juju data directory from HOME. An unset or empty HOME
// yields absence.
func BaseDir(lookupEnv func(string) (string, bool)) (string, bool) {
	home, ok := lookupEnv("HOME")
	if !ok || home == "" {
		return "", false
	}
	return filepath.Join(home, DataSubdir), true
}

// chain carries the values discovered so far while resolving the active model.
type chain struct {
	baseDir    string
	controller string
	model      string
}

// chainStep extends a chain or reports that nothing more can be known.
type chainStep func(c chain) (chain, bool)

// runChain applies steps in order and stops at the first one that fails.
func runChain(c chain, steps ...chainStep) (chain, bool) {
	for _, step := range steps {
		next, ok := step(c)
		if !ok {
			return chain{}, false
		}
		c = next
	}
	return c, true
}

// currentController reads the controller the client is switched to.
func currentController(c chain) (chain, bool) {
	doc, ok := document.Read(filepath.Join(c.baseDir, controllersFile))
	if !ok {
		return chain{}, false
	}
	name, ok := doc.StringField("current-controller")
	if !ok {
		return chain{}, false
	}
	c.controller = name
	return c, true
}

// currentModel reads the model selected on the current controller.
func currentModel(c chain) (chain, bool) {
	doc, ok := document.Read(filepath.Join(c.baseDir, modelsFile))
	if !ok {
		return chain{}, false
	}
	model, ok := doc.Lookup("controllers", c.controller, "current-model")
	if !ok {
		return chain{}, false
	}
	name, ok := model.Str()
	if !ok {
		return chain{}, false
	}
	c.model = name
	return c, true
}

// ResolveActiveModel determines the active controller and model from the
// Juju data directory baseDir. Any missing or malformed file along the way
// means no model is active.
func ResolveActiveModel(baseDir string) (ActiveModel, bool) {
	c, ok := runChain(chain{baseDir: baseDir}, currentController, currentModel)
	if !ok {
		return ActiveModel{}, false
	}
	return ActiveModel{Controller: c.controller, Model: c.model}, true
}
