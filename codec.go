package diskcache

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"
)

// ObjectCodec archives a value under a key and restores it. Unarchive must
// reject data archived under a different key with ErrKeyMismatch.
type ObjectCodec interface {
	Name() string
	Archive(key string, v any) ([]byte, error)
	Unarchive(data []byte, key string, dst any) error
}

// CodecByName returns the built-in codec registered under name.
func CodecByName(name string) (ObjectCodec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "gob":
		return GobCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

const objectRecordKind = "diskcache-object-v1"

type jsonRecord struct {
	Kind  string          `json:"kind"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// JSONCodec stores {"kind","key","value"} records. Field order is fixed so
// equal values always produce identical bytes.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Archive(key string, v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	out, err := json.Marshal(jsonRecord{Kind: objectRecordKind, Key: key, Value: payload})
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return out, nil
}

func (JSONCodec) Unarchive(data []byte, key string, dst any) error {
	var rec jsonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if rec.Kind != objectRecordKind {
		return fmt.Errorf("decode record: unexpected kind %q", rec.Kind)
	}
	if rec.Key != key {
		return fmt.Errorf("%w: have %q want %q", ErrKeyMismatch, rec.Key, key)
	}
	if err := json.Unmarshal(rec.Value, dst); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	return nil
}

// GobCodec writes the key followed by the gob encoded value on one stream.
// Values holding interface fields need gob.Register by the caller.
type GobCodec struct{}

func (GobCodec) Name() string { return "gob" }

func (GobCodec) Archive(key string, v any) ([]byte, error) {
	buf := getBuf()
	defer putBuf(buf)

	enc := gob.NewEncoder(buf)
	if err := enc.Encode(key); err != nil {
		return nil, fmt.Errorf("encode key: %w", err)
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return detach(buf), nil
}

func (GobCodec) Unarchive(data []byte, key string, dst any) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	var have string
	if err := dec.Decode(&have); err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	if have != key {
		return fmt.Errorf("%w: have %q want %q", ErrKeyMismatch, have, key)
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	return nil
}

// archiveObject runs the codec and optionally snappy block compression.
func archiveObject(codec ObjectCodec, compress bool, key string, v any) ([]byte, error) {
	data, err := codec.Archive(key, v)
	if err != nil {
		return nil, err
	}
	if compress {
		data = snappy.Encode(nil, data)
	}
	return data, nil
}

func unarchiveObject(codec ObjectCodec, compressed bool, data []byte, key string, dst any) error {
	if compressed {
		raw, err := snappy.Decode(nil, data)
		if err != nil {
			return fmt.Errorf("snappy decode: %w", err)
		}
		data = raw
	}
	return codec.Unarchive(data, key, dst)
}
