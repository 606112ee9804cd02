package web

import (
	"anagram/internal/app"
	"anagram/internal/repository"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type AnagramHandler struct {
	index  repository.Index
	logger *zap.Logger
}

func NewAnagramHandler(index repository.Index, logger *zap.Logger) *AnagramHandler {
	return &AnagramHandler{
		index:  index,
		logger: logger,
	}
}

// Permutations godoc
// @Summary      Anagrams of a word
// @Description  Returns every dictionary word that is a rearrangement of the given word, in dictionary order
// @Tags         anagrams
// @Produce      json
// @Param        word  query  string  true  "Word to look up"
// @Success      200  {array}   string  "matching words, empty when none"
// @Failure      400  {object}  ErrorResponse  "word parameter missing"
// @Router       /permutations [get]
func (h *AnagramHandler) Permutations(w http.ResponseWriter, r *http.Request) {
	rq := r.URL.Query()
	if !rq.Has("word") {
		errParser(w, h.logger, fmt.Errorf("%w: word parameter is missing", app.ErrInvalidInput), "word parameter is required")
		return
	}

	word := rq.Get("word")
	words := h.index.Lookup(word)
	h.logger.Debug("permutations fetched",
		zap.String("word", word),
		zap.Int("count", len(words)),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
	writeJson(w, words)
}

// Stats godoc
// @Summary      Index statistics
// @Description  Word and group counts of the loaded dictionary
// @Tags         anagrams
// @Produce      json
// @Success      200  {object}  repository.Stats
// @Router       /stats [get]
func (h *AnagramHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.index.Stats())
}

// Healthz godoc
// @Summary      Liveness probe
// @Tags         service
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (h *AnagramHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]string{"status": "ok"})
}

func errParser(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	logger.Debug("request failed", zap.Error(err))
	if errors.Is(err, app.ErrInvalidInput) {
		writeError(w, msg, http.StatusBadRequest)
	} else {
		writeError(w, msg, http.StatusInternalServerError)
	}
}

func writeJson(w http.ResponseWriter, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		writeError(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
