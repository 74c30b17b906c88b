package record

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		id, coll   string
		want       string
		unresolved bool
	}{
		{"numeric", "902725", "institutions", APIBase + "/institutions/902725", false},
		{"padded", " 902725 ", "institutions", APIBase + "/institutions/902725", false},
		{"empty", "", "institutions", "", true},
		{"non-numeric", "CERN", "institutions", "", true},
		{"no collection", "902725", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Resolve(tt.id, tt.coll)
			if tt.unresolved {
				if ref != nil {
					t.Fatalf("Resolve(%q, %q) = %v, want nil", tt.id, tt.coll, ref)
				}
				return
			}
			if ref == nil || ref.Ref != tt.want {
				t.Fatalf("Resolve(%q, %q) = %v, want %q", tt.id, tt.coll, ref, tt.want)
			}
		})
	}
}
