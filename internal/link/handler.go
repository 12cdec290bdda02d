// AngelaMos | 2026
// handler.go

package link

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/paylink/internal/core"
	"github.com/carterperez-dev/paylink/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/links", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{linkID}", h.Get)
		r.Patch("/{linkID}", h.Update)
		r.Delete("/{linkID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	accountID := middleware.GetAccountID(r.Context())

	created, err := h.service.Create(r.Context(), req.Name, *req.Price)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	slog.Info("payment link created",
		"link_id", created.ID,
		"account_id", accountID,
	)

	core.Created(w, ToLinkResponse(created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, LinkListResponse{Links: ToLinkResponseList(links)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLinkID(w, r)
	if !ok {
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "link")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLinkResponse(found))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLinkID(w, r)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.Name, *req.Price)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "link")
			return
		}
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, ToLinkResponse(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseLinkID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "link")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case core.IsAppError(err) && errors.Is(err, core.ErrInvalidInput):
		core.JSONError(w, err)
	case errors.Is(err, core.ErrProvisionedNotPersisted):
		core.JSONError(w, core.ProvisionedNotPersistedError(err))
	case errors.Is(err, core.ErrProvisioning):
		core.JSONError(w, core.ProvisioningError(err))
	case errors.Is(err, core.ErrUpstream):
		core.JSONError(w, core.UpstreamError(err))
	default:
		core.InternalServerError(w, err)
	}
}

func parseLinkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "linkID"), 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, "invalid link id")
		return 0, false
	}
	return id, true
}
