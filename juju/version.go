package juju

import (
	"github.com/grovetools/juju-prompt/document"
)

// SnapMetadataPath is where the Juju snap describes itself. Reading it is
// much faster than asking the juju binary for its version.
const SnapMetadataPath = "/snap/juju/current/meta/snap.yaml"

// ExtractVersion returns the string "version" field of snap metadata.
func ExtractVersion(doc document.Document) (string, bool) {
	return doc.StringField("version")
}

// ReadVersion reads the snap metadata at path and extracts its version.
func ReadVersion(path string) (string, bool) {
	doc, ok := document.Read(path)
	if !ok {
		return "", false
	}
	return ExtractVersion(doc)
}
