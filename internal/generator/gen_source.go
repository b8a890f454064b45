package generator

import (
	"github.com/dougvj/embed/version"
)

// fileView is the per-file template data for the source artifact: the key
// and path comments plus the pre-rendered hex literals for the name and
// data tables, sharing one index across all three tables.
type fileView struct {
	Key         string
	Path        string
	NameLiteral string
	DataLiteral string
	Size        int
}

// renderSource produces the full C source artifact text: the name table
// (sentinel-terminated with an empty literal), the data table, the size
// table and the accessor function definition, in that fixed order.
func renderSource(function string, files FileSet) (string, error) {
	views := make([]fileView, 0, len(files))
	for _, f := range files {
		views = append(views, fileView{
			Key:         f.Key,
			Path:        f.Path,
			NameLiteral: ByteLiteral([]byte(f.Key), "\t\t"),
			DataLiteral: ByteLiteral(f.Data, "\t\t"),
			Size:        len(f.Data),
		})
	}

	data := struct {
		Version  string
		Function string
		Files    []fileView
	}{
		Version:  version.Version,
		Function: function,
		Files:    views,
	}

	return renderTemplate("source.c.tmpl", data)
}
