package diskcache

import "fmt"

// Encoder turns a payload into the exact bytes written for key.
type Encoder interface {
	Encode(key string, p Payload) ([]byte, error)
}

type objectEncoder struct {
	codec    ObjectCodec
	compress bool
}

func newObjectEncoder(opts CacheOptions) Encoder {
	return objectEncoder{codec: opts.Codec, compress: opts.CompressObjects}
}

func (e objectEncoder) Encode(key string, p Payload) ([]byte, error) {
	op, ok := p.(ObjectPayload)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrPayloadMismatch, p)
	}
	data, err := archiveObject(e.codec, e.compress, key, op.Value)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyEncoding
	}
	return data, nil
}

type imageEncoder struct {
	quality int
}

func newImageEncoder(opts CacheOptions) Encoder {
	return imageEncoder{quality: opts.JPEGQuality}
}

func (e imageEncoder) Encode(_ string, p Payload) ([]byte, error) {
	ip, ok := p.(ImagePayload)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrPayloadMismatch, p)
	}
	return encodeJPEG(ip.Bitmap, e.quality)
}

type voiceEncoder struct{}

func newVoiceEncoder(CacheOptions) Encoder { return voiceEncoder{} }

func (voiceEncoder) Encode(_ string, p Payload) ([]byte, error) {
	vp, ok := p.(VoicePayload)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrPayloadMismatch, p)
	}
	if len(vp.Data) == 0 {
		return nil, ErrEmptyEncoding
	}
	return vp.Data, nil
}
