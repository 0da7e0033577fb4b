package stitch

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"stitcher/storage"
	"stitcher/transcoding"
)

const resolveWorkers = 4

// Segment anchors a resolved snippet to its position in the message.
type Segment struct {
	Start  int
	End    int
	Record Record
}

// buildSegments resolves every token and assigns its offsets. The start
// offset is the first occurrence of the token text anywhere in the
// normalized message, so a repeated word maps every occurrence to the
// same start; the stable sort then keeps those in token order.
func buildSegments(ctx context.Context, normalized string, tokens []string, resolver *Resolver) ([]Segment, error) {
	segments := make([]Segment, len(tokens))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(resolveWorkers)
	for i, token := range tokens {
		i, token := i, token
		group.Go(func() error {
			rec, err := resolver.Resolve(gctx, token)
			if err != nil {
				return err
			}
			start := strings.Index(normalized, token)
			segments[i] = Segment{Start: start, End: start + len(token), Record: rec}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	return segments, nil
}

// stitchSegments reads each snippet, decodes it and appends the samples
// in segment order, then encodes the combined stream back to WAV.
func stitchSegments(ctx context.Context, store storage.Store, trans transcoding.Transcoder, segments []Segment) ([]byte, error) {
	var combined *transcoding.PCM
	for _, seg := range segments {
		data, err := store.Get(ctx, seg.Record.Key)
		if err != nil {
			return nil, err
		}
		pcm, err := trans.DecodeWAV(data)
		if err != nil {
			return nil, err
		}
		if combined == nil {
			combined = pcm
			continue
		}
		combined, err = trans.Concat(combined, pcm)
		if err != nil {
			return nil, err
		}
	}
	return trans.EncodeWAV(combined)
}
