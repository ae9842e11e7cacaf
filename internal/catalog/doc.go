package catalog

// Package catalog groups product records by category and runs the
// load → group → render refresh pipeline that backs the products page.
