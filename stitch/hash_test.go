package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintKnownDigest(t *testing.T) {
	// stable across runs and platforms
	assert.Equal(t, "202cb962ac59075b964b07152d234b70", Fingerprint([]byte("123")))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Fingerprint(nil))
}

func TestFingerprintDeterministic(t *testing.T) {
	data := []byte("some audio bytes")
	assert.Equal(t, Fingerprint(data), Fingerprint(data))
	assert.NotEqual(t, Fingerprint([]byte("a")), Fingerprint([]byte("b")))
}
