package juju

import (
	"path/filepath"

	"github.com/grovetools/juju-prompt/document"
)

// Controllers lists the controllers registered in controllers.yaml, in file
// order. It returns nil when the file is missing or malformed.
func Controllers(baseDir string) []string {
	doc, ok := document.Read(filepath.Join(baseDir, controllersFile))
	if !ok {
		return nil
	}
	controllers, ok := doc.Field("controllers")
	if !ok {
		return nil
	}
	return controllers.Keys()
}

// APIEndpoint returns the first API address recorded for controller.
func APIEndpoint(baseDir, controller string) (string, bool) {
	doc, ok := document.Read(filepath.Join(baseDir, controllersFile))
	if !ok {
		return "", false
	}
	endpoints, ok := doc.Lookup("controllers", controller, "api-endpoints")
	if !ok {
		return "", false
	}
	first, ok := endpoints.Index(0)
	if !ok {
		return "", false
	}
	return first.Str()
}
