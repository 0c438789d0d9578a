package main

import (
	"net/http"

	"crescendo/internal/app/catalog"
	"crescendo/internal/app/playlists"
	"crescendo/internal/app/ratings"
	"crescendo/internal/app/recommend"
	"crescendo/internal/app/streams"
	"crescendo/internal/app/users"
	"crescendo/internal/genai"
	"crescendo/internal/http/middleware"
	"crescendo/internal/httpapi"
	"crescendo/internal/store"

	"github.com/rs/zerolog/log"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	userSvc := users.New(dataStore)
	catalogSvc := catalog.New(dataStore)
	streamSvc := streams.New(dataStore)
	playlistSvc := playlists.New(dataStore)
	ratingSvc := ratings.New(dataStore)
	recommendSvc := recommend.New(dataStore, newGenerator(cfg))

	handler := httpapi.New(userSvc, catalogSvc, streamSvc, playlistSvc, ratingSvc, recommendSvc).Routes()

	handler = middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(handler)
	handler = middleware.APIKey(cfg.APIKey)(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.Metrics()(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)

	return handler
}

func newGenerator(cfg Config) genai.Generator {
	if cfg.ChatKey == "" {
		log.Info().Msg("CHAT_KEY not provided, genre recommendation disabled")
		return nil
	}
	return genai.NewChatClient(cfg.ChatKey, cfg.ChatURL, cfg.ChatModel)
}
