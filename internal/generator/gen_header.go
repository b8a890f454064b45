package generator

import (
	"github.com/dougvj/embed/version"
)

// renderHeader produces the companion header: an include guard derived
// from the header's own path plus the accessor function declaration.
func renderHeader(function string, headerPath string) (string, error) {
	data := struct {
		Version  string
		Guard    string
		Function string
	}{
		Version:  version.Version,
		Guard:    GuardName(headerPath),
		Function: function,
	}

	return renderTemplate("header.h.tmpl", data)
}
