package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/buger/jsonparser"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"

	"stitcher/stitch"
	"stitcher/storage"
	"stitcher/transcoding"
	"stitcher/voice"
)

// StoreOpener returns a Store for the named container.
type StoreOpener func(container string) (storage.Store, error)

// Handler answers one POST endpoint: {message, audios, output} in,
// {success} out. Audios and output are "<container>/<path>" locations.
type Handler struct {
	Open     StoreOpener
	TTS      voice.Synthesizer
	Trans    transcoding.Transcoder
	Language string

	// indexes caches loaded snippet indexes per source location. Nil
	// means the reference behavior: rebuild from the store every request.
	indexes *ttlcache.Cache[string, *stitch.Index]
}

// NewHandler builds the boundary handler. indexTTL > 0 turns on the
// index cache with that expiry; 0 disables it.
func NewHandler(open StoreOpener, tts voice.Synthesizer, trans transcoding.Transcoder, language string, indexTTL time.Duration) *Handler {
	h := &Handler{
		Open:     open,
		TTS:      tts,
		Trans:    trans,
		Language: language,
	}
	if indexTTL > 0 {
		h.indexes = ttlcache.New[string, *stitch.Index](
			ttlcache.WithTTL[string, *stitch.Index](indexTTL),
		)
		go h.indexes.Start()
	}
	return h
}

type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeResponse(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
		return
	}

	log := logrus.WithField("request", uuid.NewString())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeResponse(w, http.StatusBadRequest, response{Error: "failed to read body"})
		return
	}

	message, audios, output, err := parseRequest(body)
	if err != nil {
		log.WithError(err).Warnln("invalid request")
		writeResponse(w, http.StatusBadRequest, response{Error: err.Error()})
		return
	}

	sourceContainer, prefix := storage.SplitLocation(audios)
	outContainer, outKey := storage.SplitLocation(output)

	source, err := h.Open(sourceContainer)
	if err != nil {
		log.WithError(err).Errorln("failed to open source container")
		writeResponse(w, http.StatusBadGateway, response{Error: err.Error()})
		return
	}
	out, err := h.Open(outContainer)
	if err != nil {
		log.WithError(err).Errorln("failed to open output container")
		writeResponse(w, http.StatusBadGateway, response{Error: err.Error()})
		return
	}

	index, err := h.index(r.Context(), source, audios, prefix)
	if err != nil {
		log.WithError(err).Errorln("failed to load audio index")
		writeResponse(w, statusFor(err), response{Error: err.Error()})
		return
	}

	pipeline := &stitch.Pipeline{
		Source:   source,
		Prefix:   prefix,
		Output:   out,
		OutKey:   outKey,
		TTS:      h.TTS,
		Trans:    h.Trans,
		Language: h.Language,
		Index:    index,
	}

	outcome, err := pipeline.Run(r.Context(), message)
	if err != nil {
		log.WithError(err).Errorln("pipeline run failed")
		writeResponse(w, statusFor(err), response{Error: err.Error()})
		return
	}

	log.WithField("outcome", outcome).Infoln("pipeline run finished")
	writeResponse(w, http.StatusOK, response{Success: outcome == stitch.Stitched})
}

// index returns the cached snippet index for the source location, loading
// and caching it on a miss. With caching off it returns nil and the
// pipeline loads its own.
func (h *Handler) index(ctx context.Context, source storage.Store, location, prefix string) (*stitch.Index, error) {
	if h.indexes == nil {
		return nil, nil
	}
	if item := h.indexes.Get(location); item != nil {
		return item.Value(), nil
	}
	index, err := stitch.LoadIndex(ctx, source, prefix)
	if err != nil {
		return nil, err
	}
	h.indexes.Set(location, index, ttlcache.DefaultTTL)
	return index, nil
}

func parseRequest(body []byte) (message, audios, output string, err error) {
	message, err = jsonparser.GetString(body, "message")
	if err != nil || message == "" {
		return "", "", "", errors.New("missing required field 'message'")
	}
	audios, err = jsonparser.GetString(body, "audios")
	if err != nil || audios == "" {
		return "", "", "", errors.New("missing required field 'audios'")
	}
	output, err = jsonparser.GetString(body, "output")
	if err != nil || output == "" {
		return "", "", "", errors.New("missing required field 'output'")
	}
	return message, audios, output, nil
}

// statusFor maps the pipeline error taxonomy to response codes. Collaborator
// failures are gateway errors; anything else is internal.
func statusFor(err error) int {
	var storeErr *storage.Error
	var synthErr *voice.SynthesisError
	if errors.As(err, &storeErr) || errors.As(err, &synthErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeResponse(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logrus.WithError(err).Warnln("failed to write response")
	}
}
