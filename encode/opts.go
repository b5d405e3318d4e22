package encode

import "github.com/dehok/blockconv/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per nesting level. Values below 1 are
// treated as 1.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 1) }
}
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = max(n, 0) }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// QuoteAmbiguous quotes strings that would otherwise read back as another
// value, such as "true", "12" or "".
func QuoteAmbiguous(v bool) EncodeOption {
	return func(es *EncState) { es.quoteAmbiguous = v }
}
