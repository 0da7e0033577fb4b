package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"stitcher/config"
	"stitcher/server"
	"stitcher/storage"
	"stitcher/transcoding"
	"stitcher/voice"
)

func newInterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func newSynthesizer(cfg *config.Config) (voice.Synthesizer, error) {
	switch cfg.Synthesizer {
	case "google":
		if err := os.MkdirAll(cfg.ScratchDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create scratch dir; %w", err)
		}
		return &voice.Google{Folder: cfg.ScratchDir}, nil
	case "elevenlabs":
		key, exists := os.LookupEnv("ELEVENLABS_APIKEY")
		if !exists {
			return nil, fmt.Errorf("missing env var ELEVENLABS_APIKEY")
		}
		return &voice.ElevenLabs{APIKey: key, VoiceID: cfg.Voice}, nil
	case "openai":
		key, exists := os.LookupEnv("OPENAI_API_KEY")
		if !exists {
			return nil, fmt.Errorf("missing env var OPENAI_API_KEY")
		}
		return &voice.OpenAI{APIKey: key, Voice: cfg.Voice}, nil
	default:
		return nil, fmt.Errorf("unknown synthesizer %q", cfg.Synthesizer)
	}
}

func main() {
	ctx, cancel := newInterruptContext(context.Background())
	defer cancel()

	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.WithError(err).Fatalln("failed to load config")
	}

	synth, err := newSynthesizer(cfg)
	if err != nil {
		logrus.WithError(err).Fatalln("failed to build synthesizer")
	}
	if cfg.SynthesisRate > 0 {
		synth = voice.RateLimit(synth, cfg.SynthesisRate)
	}

	open := func(container string) (storage.Store, error) {
		return storage.NewS3FromEnv(container)
	}

	handler := server.NewHandler(open, synth, transcoding.Codec{}, cfg.Language, cfg.IndexCacheTTL())

	if err := server.Serve(ctx, cfg.Listen, handler); err != nil {
		logrus.WithError(err).Fatalln("server exited")
	}
}
