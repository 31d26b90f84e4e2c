package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flag-quiz-service/internal/app"
	"flag-quiz-service/internal/domain"
	"flag-quiz-service/internal/game"
	"flag-quiz-service/internal/share"
)

// APIHandler serves the REST endpoints.
type APIHandler struct {
	service      *app.GameService
	logger       *zap.Logger
	shareBaseURL string
	now          func() time.Time
}

func NewAPIHandler(service *app.GameService, logger *zap.Logger, shareBaseURL string) *APIHandler {
	return &APIHandler{service: service, logger: logger, shareBaseURL: shareBaseURL, now: time.Now}
}

func (h *APIHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(r.Context())
	if err != nil {
		h.logger.Error("list countries", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	lang := domain.Language(r.URL.Query().Get("lang"))
	out := make([]countryView, 0, len(countries))
	for _, c := range countries {
		view := newCountryView(c, lang)
		view.FlagURL = c.FlagURL
		view.Difficulty = game.ClassifyDifficulty(c)
		out = append(out, view)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *APIHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Country(r.Context(), chi.URLParam(r, "code"))
	if errors.Is(err, domain.ErrCountryNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("get country", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	view := newCountryView(c, domain.Language(r.URL.Query().Get("lang")))
	view.FlagURL = c.FlagURL
	view.Difficulty = game.ClassifyDifficulty(c)
	writeJSON(w, http.StatusOK, view)
}

type previewResponse struct {
	Correct countryView   `json:"correct"`
	FlagURL string        `json:"flagUrl"`
	Options []countryView `json:"options"`
}

func (h *APIHandler) PreviewQuestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	optionCount := game.DefaultOptionCount
	if raw := query.Get("options"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 2 {
			writeError(w, http.StatusBadRequest, "options must be an integer >= 2")
			return
		}
		optionCount = n
	}

	q, err := h.service.PreviewQuestion(r.Context(), domain.Difficulty(query.Get("difficulty")), query.Get("previous"), optionCount)
	if errors.Is(err, domain.ErrInsufficientCountries) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("preview question", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}

	lang := domain.Language(query.Get("lang"))
	resp := previewResponse{
		Correct: newCountryView(q.Correct, lang),
		FlagURL: q.Correct.FlagURL,
		Options: make([]countryView, 0, len(q.Options)),
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, newCountryView(opt, lang))
	}
	writeJSON(w, http.StatusOK, resp)
}

type shareRequest struct {
	Username       string `json:"username"`
	Score          int    `json:"score"`
	Total          int    `json:"total"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url,omitempty"`
}

func (h *APIHandler) EncodeShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid share payload")
		return
	}
	token, err := share.Encode(req.Username, req.Score, req.Total, req.ElapsedSeconds, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.shareResponse(token)
	if err != nil {
		h.logger.Error("build share url", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "share url misconfigured")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DecodeShare answers 404 for a missing or invalid token so clients fall
// back to their normal start screen.
func (h *APIHandler) DecodeShare(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(share.QueryParam)
	if token == "" {
		writeError(w, http.StatusNotFound, "no shared score")
		return
	}
	payload, err := share.Decode(token)
	if err != nil {
		h.logger.Debug("rejected share token", zap.Error(err))
		writeError(w, http.StatusNotFound, "no shared score")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *APIHandler) shareResponse(token string) (shareResponse, error) {
	resp := shareResponse{Token: token}
	if h.shareBaseURL == "" {
		return resp, nil
	}
	link, err := share.URL(h.shareBaseURL, token)
	if err != nil {
		return shareResponse{}, err
	}
	resp.URL = link
	return resp, nil
}

func (h *APIHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Settings(r.Context(), chi.URLParam(r, "playerID")))
}

func (h *APIHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := readJSON(w, r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}
	writeJSON(w, http.StatusOK, h.service.SaveSettings(r.Context(), chi.URLParam(r, "playerID"), settings))
}

type scoreResponse struct {
	CumulativeScore int `json:"cumulativeScore"`
}

func (h *APIHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoreResponse{CumulativeScore: h.service.CumulativeScore(r.Context(), chi.URLParam(r, "playerID"))})
}

func (h *APIHandler) ResetScore(w http.ResponseWriter, r *http.Request) {
	h.service.ResetCumulativeScore(r.Context(), chi.URLParam(r, "playerID"))
	w.WriteHeader(http.StatusNoContent)
}

type nameBody struct {
	Name string `json:"name"`
}

func (h *APIHandler) GetName(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nameBody{Name: h.service.DisplayName(r.Context(), chi.URLParam(r, "playerID"))})
}

func (h *APIHandler) PutName(w http.ResponseWriter, r *http.Request) {
	var body nameBody
	if err := readJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid name payload")
		return
	}
	writeJSON(w, http.StatusOK, nameBody{Name: h.service.SaveDisplayName(r.Context(), chi.URLParam(r, "playerID"), body.Name)})
}
