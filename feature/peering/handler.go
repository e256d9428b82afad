package peering

import (
	"errors"

	"peerdiff/core/logger"
	"peerdiff/core/utils"
	"peerdiff/feature/peering/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for peering reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the peering routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/peering")
	group.Get("/diff", h.HandleDiff)
	group.Get("/asinfo/:asn", h.HandleAsInfo)
}

// HandleDiff runs a full reconciliation on a fresh store.
// @Summary Run Peering Reconciliation
// @Description Imports every router config source and the operator's registry imports into a private in-memory store, then reports peers present on one side only with suggested RPSL stanzas.
// @Tags peering
// @Produce json
// @Param lookup query string false "Set to false to skip per-peer registry lookups"
// @Param default_set query string false "Set announced in suggested export stanzas"
// @Success 200 {object} Result "Run result with report"
// @Failure 422 {object} map[string]string "Unreadable router configuration"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /peering/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering peering reconciliation")

	opts := h.service.Options()
	opts.SkipLookup = c.Query("lookup") == "false"
	if set := c.Query("default_set"); set != "" {
		opts.DefaultSet = set
	}

	res, err := h.service.Execute(c.Context(), CommandAll, opts)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrFatalInput) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}

// HandleAsInfo returns the registry name and announced set for one peer AS.
// @Summary Look Up Peer AS
// @Description Queries the registry for one peer's aut-num object and returns its name, the set it announces to the operator and the suggested stanza.
// @Tags peering
// @Produce json
// @Param asn path string true "Peer AS number, with or without the AS prefix"
// @Success 200 {object} map[string]interface{} "AS info and suggested stanza"
// @Failure 400 {object} map[string]string "Invalid AS number"
// @Failure 502 {object} map[string]interface{} "Registry lookup failed"
// @Router /peering/asinfo/{asn} [get]
func (h *Handler) HandleAsInfo(c *fiber.Ctx) error {
	asn, err := utils.ParseASN(c.Params("asn"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	info, err := h.service.LookupAsInfo(c.Context(), asn)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("AS lookup failed", zap.Uint32("asno", asn), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   err.Error(),
			"as_info": info,
		})
	}

	return c.JSON(fiber.Map{
		"asno":    utils.FormatASN(asn),
		"as_info": info,
		"stanza":  reconcile.Stanza(asn, info, h.service.cfg.DefaultSet),
	})
}
