// pkg/catalog/kind.go
package catalog

// Kind is the link layer of a logical library. Static archives are linked
// in ascending Kind order.
type Kind int

const (
	KindUnknown Kind = iota
	KindCodec
	KindText
	KindLayout
	KindDecoder
	KindCore
	KindUmbrella
)

func (k Kind) String() string {
	switch k {
	case KindCodec:
		return "codec"
	case KindText:
		return "text"
	case KindLayout:
		return "layout"
	case KindDecoder:
		return "decoder"
	case KindCore:
		return "core"
	case KindUmbrella:
		return "umbrella"
	default:
		return "unknown"
	}
}

// libraries is every logical library the SDK ships
var libraries = map[string]Kind{
	"libpng":            KindCodec,
	"libjpeg":           KindCodec,
	"libwebp":           KindCodec,
	"rive_harfbuzz":     KindText,
	"rive_sheenbidi":    KindText,
	"rive_yoga":         KindLayout,
	"rive_decoders":     KindDecoder,
	"rive":              KindCore,
	"rive_pls_renderer": KindUmbrella,
}

// Known reports whether name is a logical library of the SDK
func Known(name string) bool {
	_, ok := libraries[name]
	return ok
}
