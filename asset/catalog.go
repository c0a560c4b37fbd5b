// Package asset resolves which model to show, loads it and plays its
// animation clip.
package asset

import (
	"path"
	"strings"
)

// Entry is a resolved catalog selection.
type Entry struct {
	// Name is the canonical selection ("reno", "arbol" or "error").
	Name string
	// Model is the scene file shown in-app (glTF or a builtin: mesh).
	Model string
	// QuickLook is the platform-native preview file linked on quick-look
	// platforms. Empty when the asset has none.
	QuickLook string
}

// ErrorName is the placeholder selection used for unknown input.
const ErrorName = "error"

var catalog = map[string]Entry{
	"reno":  {Name: "reno", Model: "monk_character.glb", QuickLook: "pc.usdz"},
	"arbol": {Name: "arbol", Model: "tree.glb", QuickLook: "tree.usdz"},
}

var placeholder = Entry{Name: ErrorName, Model: BuiltinPrefix + "error"}

// Resolve maps a selection to an asset. It is total: unknown or empty
// selections resolve to the error placeholder. File names are joined under
// dir; builtin models are returned as is.
func Resolve(selection, dir string) Entry {
	e, ok := catalog[strings.ToLower(strings.TrimSpace(selection))]
	if !ok {
		return placeholder
	}
	if dir != "" {
		e.Model = path.Join(dir, e.Model)
		if e.QuickLook != "" {
			e.QuickLook = path.Join(dir, e.QuickLook)
		}
	}
	return e
}
