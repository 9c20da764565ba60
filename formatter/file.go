package formatter

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/daidoji-traincrew-office/dbbase-converter/dbbase"
)

// WriteFile serializes doc and writes it to path, replacing any previous file.
// The document is fully serialized before the file is touched.
func WriteFile(fsys afero.Fs, path string, doc *dbbase.Document) error {
	data := BuildJSON(doc)
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
