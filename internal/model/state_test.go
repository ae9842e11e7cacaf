package model

import "testing"

func TestCatalogState_IsFailed(t *testing.T) {
	tests := []struct {
		state    CatalogState
		expected bool
	}{
		{CatalogStateLoaded, false},
		{CatalogStateEmpty, false},
		{CatalogStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFailed()
		if result != test.expected {
			t.Errorf("CatalogState(%s).IsFailed() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestCatalogState_HasContent(t *testing.T) {
	tests := []struct {
		state    CatalogState
		expected bool
	}{
		{CatalogStateLoaded, true},
		{CatalogStateEmpty, false},
		{CatalogStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.HasContent()
		if result != test.expected {
			t.Errorf("CatalogState(%s).HasContent() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestBadgeText(t *testing.T) {
	if got := BadgeText(0); got != "0 Items" {
		t.Errorf("BadgeText(0) = %s, expected '0 Items'", got)
	}
	if got := BadgeText(1); got != "1 Item" {
		t.Errorf("BadgeText(1) = %s, expected '1 Item'", got)
	}
	if got := BadgeText(12); got != "12 Items" {
		t.Errorf("BadgeText(12) = %s, expected '12 Items'", got)
	}
}

func TestLoadIssue_String(t *testing.T) {
	tests := []struct {
		issue    LoadIssue
		expected string
	}{
		{LoadIssue{File: "products.txt", Line: 3, Reason: ReasonMalformed, Detail: "2 fields"}, "products.txt:3: malformed (2 fields)"},
		{LoadIssue{File: "categories.txt", Reason: ReasonFallback, Detail: "permission denied"}, "categories.txt: fallback (permission denied)"},
		{LoadIssue{Reason: ReasonOrphan, Detail: "not declared"}, "orphan (not declared)"},
	}

	for _, test := range tests {
		if result := test.issue.String(); result != test.expected {
			t.Errorf("LoadIssue.String() = %q, expected %q", result, test.expected)
		}
	}
}
