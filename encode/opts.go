package encode

import "github.com/openbib/marcjson/format"

type EncState struct {
	format format.Format
	colors *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
