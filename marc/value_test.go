package marc

import (
	"encoding/json"
	"testing"
)

func TestValueList(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want []string
	}{
		{"zero", Value{}, nil},
		{"scalar", String("x"), []string{"x"}},
		{"list", Strings("x", "y"), []string{"x", "y"}},
		{"empty list", Strings(), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.List()
			if len(got) != len(tt.want) {
				t.Fatalf("List() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValueSingle(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"zero", Value{}, ""},
		{"scalar", String("x"), "x"},
		{"one-element list", Strings("x"), "x"},
		// ambiguous multi-valued input collapses, it does not fail
		{"multi-element list", Strings("x", "y"), "x"},
		{"empty list", Strings(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Single(); got != tt.want {
				t.Errorf("Single() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueInt(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want int
		ok   bool
	}{
		{"numeric", String("1998"), 1998, true},
		{"non-numeric", String("about 1998"), 0, false},
		{"absent", Value{}, 0, false},
		{"list head", Strings("57", "58"), 57, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Int()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Int() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
		out  string
	}{
		{"string", `"x"`, String("x"), `"x"`},
		{"list", `["x","y"]`, Strings("x", "y"), `["x","y"]`},
		{"number", `1998`, String("1998"), `"1998"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatal(err)
			}
			if !v.Equal(tt.want) {
				t.Fatalf("unmarshal %s = %#v, want %#v", tt.in, v, tt.want)
			}
			d, err := json.Marshal(v)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.out {
				t.Errorf("marshal = %s, want %s", d, tt.out)
			}
		})
	}
}
