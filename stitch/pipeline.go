package stitch

import (
	"context"

	"github.com/sirupsen/logrus"

	"stitcher/storage"
	"stitcher/transcoding"
	"stitcher/voice"
)

// Outcome distinguishes a stitched message from one with nothing to say.
// It is only meaningful when Run returns a nil error.
type Outcome int

const (
	Stitched Outcome = iota
	NoSegments
)

func (o Outcome) String() string {
	switch o {
	case Stitched:
		return "stitched"
	case NoSegments:
		return "no segments"
	}
	return "unknown"
}

// Pipeline turns one message into one stitched audio object. Source holds
// the word snippets under Prefix; the result lands at OutKey in Output.
type Pipeline struct {
	Source   storage.Store
	Prefix   string
	Output   storage.Store
	OutKey   string
	TTS      voice.Synthesizer
	Trans    transcoding.Transcoder
	Language string

	// Index may be preloaded by the caller (e.g. a cached one); when nil
	// it is built from Source at the start of the run.
	Index *Index
}

// Run resolves every word of message to a snippet, stitches the snippets
// in message order and writes the result. Nothing is written unless every
// step succeeded; the output write is the last thing that happens.
func (p *Pipeline) Run(ctx context.Context, message string) (Outcome, error) {
	normalized := Normalize(message)
	logrus.WithField("message", normalized).Infoln("cleaned message")

	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		logrus.Warnln("no audio segments found")
		return NoSegments, nil
	}

	index := p.Index
	if index == nil {
		var err error
		index, err = LoadIndex(ctx, p.Source, p.Prefix)
		if err != nil {
			return Stitched, err
		}
	}

	resolver := &Resolver{
		Store:    p.Source,
		Prefix:   p.Prefix,
		TTS:      p.TTS,
		Trans:    p.Trans,
		Language: p.Language,
		Index:    index,
	}

	segments, err := buildSegments(ctx, normalized, tokens, resolver)
	if err != nil {
		return Stitched, err
	}

	audio, err := stitchSegments(ctx, p.Source, p.Trans, segments)
	if err != nil {
		return Stitched, err
	}

	if err := p.Output.Put(ctx, p.OutKey, audio); err != nil {
		return Stitched, err
	}

	logrus.WithFields(logrus.Fields{
		"segments": len(segments),
		"bytes":    len(audio),
		"key":      p.OutKey,
	}).Infoln("stitched message written")

	return Stitched, nil
}
