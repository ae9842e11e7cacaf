package store

// Package store reads and writes the two flat catalog files: a category list
// (one name per line) and a product list (`category|name|description|price`).
// Reads try the data directory first and fall back to the copies bundled with
// the binary; missing files degrade to empty results instead of errors.
