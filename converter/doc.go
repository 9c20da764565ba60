// Package converter is the main entry point for table to DBBase conversion.
//
// The converter reads the five signaling tables in a fixed order (stations,
// track circuits, signals, signal types, throw-out controls), builds one
// dbbase.Document, and writes it once at the end. Any failure aborts the run
// before the output file is touched.
//
// # Usage
//
//	cfg, _ := config.Load(afero.NewOsFs(), "config.yml")
//	conv := converter.NewConverter(afero.NewOsFs(), cfg, logger)
//	if err := conv.ConvertAll(cfg.InputFiles(), cfg.OutputPath()); err != nil {
//	    // nothing was written
//	}
//
// Or, with default layouts on the OS filesystem:
//
//	err := converter.ConvertAll(paths, "Data/DBBase.json")
//
// # Placeholder keys
//
// Every table drops rows whose key column (the first column of its layout)
// holds the "なし" placeholder.
package converter
