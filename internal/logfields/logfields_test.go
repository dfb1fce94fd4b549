package logfields

import (
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    interface{}
	}{
		{"Category", KeyCategory, "boxes", Category("boxes")},
		{"Slug", KeySlug, "boxes-1", Slug("boxes-1")},
		{"ProductID", KeyProductID, "bx001", ProductID("bx001")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Field", KeyField, "sku", Field("sku")},
	}

	for _, tc := range cases {
		a := tc.attr.(slog.Attr)
		if a.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, a.Key)
		}
		if got := a.Value.String(); got != tc.attrVal { // Value is slog.Value
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Records(5); v.Key != KeyRecords {
		t.Fatalf("Records key mismatch: %s", v.Key)
	}
	if v := Pages(10); v.Key != KeyPages {
		t.Fatalf("Pages key mismatch: %s", v.Key)
	}
	if v := Categories(3); v.Key != KeyCategories {
		t.Fatalf("Categories key mismatch: %s", v.Key)
	}
	if v := Variants(2); v.Key != KeyVariants {
		t.Fatalf("Variants key mismatch: %s", v.Key)
	}
	if v := Rows(100); v.Key != KeyRows {
		t.Fatalf("Rows key mismatch: %s", v.Key)
	}
	if v := Seed(7); v.Key != KeySeed {
		t.Fatalf("Seed key mismatch: %s", v.Key)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
