package transcoding

import "fmt"

// PCM holds decoded interleaved audio samples.
type PCM struct {
	SampleRate int
	Channels   int // 1 for mono, 2 for stereo
	BitDepth   int
	Samples    []int
}

// Transcoder is the codec surface the stitching pipeline needs. The MP3
// side covers engine-native synthesis output; WAV is the storage format.
type Transcoder interface {
	DecodeMP3(data []byte) (*PCM, error)
	DecodeWAV(data []byte) (*PCM, error)
	EncodeWAV(pcm *PCM) ([]byte, error)
	Concat(a, b *PCM) (*PCM, error)
}

// Error reports a failed transcoding step.
type Error struct {
	Op  string // "decode", "encode" or "concat"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcoding %s failed; %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
