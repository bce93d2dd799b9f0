package catalog

// Package catalog loads the gallery index: a JSON document listing image
// filenames, read once at startup from a URL or a local file. Loading is
// fail-soft; a broken index yields an empty catalog and a log line.
