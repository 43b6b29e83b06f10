package diskcache

// Payload is the value handed to Store. Exactly one variant exists per
// category; the set is closed.
type Payload interface {
	Category() Category
	sealed()
}

// ObjectPayload carries an arbitrary value that the namespace codec can archive.
type ObjectPayload struct {
	Value any
}

// ImagePayload carries a bitmap that is normalised and jpeg encoded.
type ImagePayload struct {
	Bitmap Bitmap
}

// VoicePayload carries already encoded audio bytes written verbatim.
type VoicePayload struct {
	Data []byte
}

func (ObjectPayload) Category() Category { return Object }
func (ImagePayload) Category() Category  { return Image }
func (VoicePayload) Category() Category  { return Voice }

func (ObjectPayload) sealed() {}
func (ImagePayload) sealed()  {}
func (VoicePayload) sealed()  {}

func ObjectOf(v any) Payload      { return ObjectPayload{Value: v} }
func ImageOf(b Bitmap) Payload    { return ImagePayload{Bitmap: b} }
func VoiceOf(data []byte) Payload { return VoicePayload{Data: data} }
