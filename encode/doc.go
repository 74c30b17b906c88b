// Package encode renders raw and semantic records as JSON or YAML,
// optionally with ANSI color per token class.
//
// # Usage
//
//	err := encode.Encode(w, rec)
//	err = encode.Encode(w, rec,
//		encode.EncodeFormat(format.YAMLFormat))
//	err = encode.Encode(w, rec,
//		encode.EncodeColors(encode.NewColors()))
//
// JSON output is canonical: object keys sorted, two-space indent.
package encode
