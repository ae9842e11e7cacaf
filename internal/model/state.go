package model

// CatalogState represents the outcome of a catalog refresh
type CatalogState string

const (
	// CatalogStateLoaded means at least one category was loaded
	CatalogStateLoaded CatalogState = "loaded"

	// CatalogStateEmpty means the data files are missing or declare no categories
	CatalogStateEmpty CatalogState = "empty"

	// CatalogStateFailed means the data could not be read
	CatalogStateFailed CatalogState = "failed"
)

// String returns the string representation of CatalogState
func (cs CatalogState) String() string {
	return string(cs)
}

// IsFailed returns true if the refresh failed
func (cs CatalogState) IsFailed() bool {
	return cs == CatalogStateFailed
}

// HasContent returns true if there are sections to display
func (cs CatalogState) HasContent() bool {
	return cs == CatalogStateLoaded
}
