package diskcache

import (
	"bytes"
	"sync"
)

// encodeBufs pools the scratch buffers used by the encoders. A namespace
// encodes one payload at a time, so the pool mostly serves bursts across
// namespaces.
var encodeBufs = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// getBuf mengambil buffer kosong dari pool.
func getBuf() *bytes.Buffer {
	buf := encodeBufs.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuf mengembalikan buffer ke pool. Buffer besar dibuang agar pool tidak
// menahan memori setelah satu gambar besar.
func putBuf(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuf {
		return
	}
	encodeBufs.Put(buf)
}

const maxPooledBuf = 4 << 20

// detach copies the buffer contents so the buffer can go back to the pool.
func detach(buf *bytes.Buffer) []byte {
	return bytes.Clone(buf.Bytes())
}
