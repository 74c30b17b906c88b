package marc

// Field is one occurrence of a tag: a map from single-character
// subfield code to its value.
type Field map[string]Value

// Get returns the value under code; absent codes yield the zero
// Value, which collapses to "" and normalizes to an empty list.
func (f Field) Get(code string) Value {
	return f[code]
}

// Set stores a scalar value, dropping the subfield when the value is
// empty so reconstructed occurrences carry no blank codes.
func (f Field) Set(code, value string) Field {
	if value == "" {
		return f
	}
	f[code] = String(value)
	return f
}

// SetList stores a list value, dropping the subfield when empty.
func (f Field) SetList(code string, values []string) Field {
	if len(values) == 0 {
		return f
	}
	f[code] = Strings(values...)
	return f
}

func (f Field) Clone() Field {
	res := make(Field, len(f))
	for k, v := range f {
		res[k] = v
	}
	return res
}
