package stitch

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"stitcher/storage"
	"stitcher/transcoding"
	"stitcher/voice"
)

// Resolver finds the snippet for a word, synthesizing and uploading one
// when the index has no entry.
type Resolver struct {
	Store    storage.Store
	Prefix   string // key prefix snippets live under
	TTS      voice.Synthesizer
	Trans    transcoding.Transcoder
	Language string
	Index    *Index

	flight singleflight.Group
}

// Resolve returns the snippet record for token. Concurrent calls for the
// same missing token share a single synthesis; distinct runs of the
// service do not, and the later upload wins at the deterministic key.
func (r *Resolver) Resolve(ctx context.Context, token string) (Record, error) {
	if rec, ok := r.Index.Lookup(token); ok {
		return rec, nil
	}

	v, err, _ := r.flight.Do(token, func() (interface{}, error) {
		// a caller that lost the flight race may have landed it already
		if rec, ok := r.Index.Lookup(token); ok {
			return rec, nil
		}
		return r.synthesize(ctx, token)
	})
	if err != nil {
		return Record{}, err
	}
	return v.(Record), nil
}

func (r *Resolver) synthesize(ctx context.Context, token string) (Record, error) {
	logrus.WithField("word", token).Infoln("generating missing word")

	raw, err := r.TTS.Synthesize(ctx, token, r.Language)
	if err != nil {
		return Record{}, err
	}

	pcm, err := r.Trans.DecodeMP3(raw)
	if err != nil {
		return Record{}, err
	}
	data, err := r.Trans.EncodeWAV(pcm)
	if err != nil {
		return Record{}, err
	}

	key := r.snippetKey(token)
	if err := r.Store.Put(ctx, key, data); err != nil {
		return Record{}, err
	}

	rec := Record{Name: token, Key: key, Hash: Fingerprint(data)}
	r.Index.Insert(rec)
	return rec, nil
}

// snippetKey derives the upload key for a word. Re-synthesis of the same
// word across runs converges on the same object.
func (r *Resolver) snippetKey(token string) string {
	prefix := strings.TrimSuffix(r.Prefix, "/")
	if prefix == "" {
		return token + SnippetExt
	}
	return prefix + "/" + token + SnippetExt
}
