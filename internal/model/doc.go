package model

// Package model defines the catalog data structures shared across the app:
// categories, product records, the per-refresh catalog index, and the immutable
// section/card view-models handed to the rendering layer.
