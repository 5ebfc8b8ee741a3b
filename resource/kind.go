package resource

// Kind identifies which family of resource a tag type describes
type Kind uint8

const (
	// KindBuffer is the kind of Buffer
	KindBuffer Kind = iota
	// KindImage is the kind of Image
	KindImage
)

var kindMapping = map[Kind]string{
	KindBuffer: "Buffer",
	KindImage:  "Image",
}

func (k Kind) String() string {
	str, ok := kindMapping[k]
	if !ok {
		return "unknown"
	}
	return str
}

// Resource is implemented by the kind tags Buffer and Image. A tag carries no data: it is only
// used as a type argument so that ids, scopes, and other kind-indexed types for buffers cannot
// be mixed up with the ones for images.
//
// Each kind binds a set of concrete types:
//
//	Kind    Access        Layout        Usage        Range
//	Buffer  BufferAccess  BufferLayout  BufferUsage  BufferRange
//	Image   ImageAccess   ImageLayout   ImageUsage   ImageRange
type Resource interface {
	comparable
	Kind() Kind
}

// Buffer is the kind tag for Vulkan buffers
type Buffer struct{}

// Kind returns KindBuffer
func (Buffer) Kind() Kind { return KindBuffer }

// Image is the kind tag for Vulkan images
type Image struct{}

// Kind returns KindImage
func (Image) Kind() Kind { return KindImage }

// KindOf returns the Kind bound to the tag type R
func KindOf[R Resource]() Kind {
	var tag R
	return tag.Kind()
}
