// Package archive packages install trees into a single zip archive.
//
// A [Writer] is created once per run and receives one install tree per
// target. Each tree is placed under its own subdirectory, optionally below a
// common root directory named after the archive:
//
//	<root>/<subdir>/<path within the install tree>
//
// Directories are stored as explicit entries so that empty directories
// survive. Trees are walked in lexical order, which makes the entry order
// stable across runs. File contents are streamed through a single buffer
// owned by the writer and reused for every file.
//
// Example usage:
//
//	w, err := archive.Create("openssl-3.1.2-vs2017.zip", "openssl-3.1.2-vs2017")
//	if err != nil {
//	    return err
//	}
//
//	if err := w.AddDir("x64-windows"); err != nil {
//	    return err
//	}
//	if err := w.AddTree(installDir, "x64-windows"); err != nil {
//	    return err
//	}
//
//	if err := w.Close(); err != nil {
//	    return err
//	}
package archive
