package transcoding

import (
	"fmt"
	"io"
)

// writeSeekBuffer is an in-memory io.WriteSeeker. The wav encoder seeks
// back over the header to patch chunk sizes on Close, which rules out a
// plain bytes.Buffer.
type writeSeekBuffer struct {
	data []byte
	pos  int
}

var _ io.WriteSeeker = &writeSeekBuffer{}

func (b *writeSeekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *writeSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position %d", pos)
	}
	b.pos = int(pos)
	return pos, nil
}

func (b *writeSeekBuffer) Bytes() []byte { return b.data }
