package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/fabric-bridge/internal/app"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	devices := h.services.StatusService.ListDevices(r.Context())

	if _, err := utils.WriteJSON(w, devices, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listDevices").Msg("error writing response")
	}
}

func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	nodeID, err := utils.ParseNodeID(chi.URLParam(r, "nodeID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDevice").Msg("invalid node id")
		utils.WriteError(w, app.MsgInvalidNodeID, statusFromError(err))
		return
	}

	device, err := h.services.StatusService.GetDevice(r.Context(), nodeID)
	if err != nil {
		status := statusFromError(err)
		message := app.MsgInternalServerError
		if status == http.StatusNotFound {
			message = app.MsgDeviceNotFound
		}
		utils.WriteError(w, message, status)
		return
	}

	if _, err = utils.WriteJSON(w, device, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDevice").Msg("error writing response")
	}
}

// listDeviceEvents serves the journal of one node. The node does not have
// to be registered: events of removed devices stay in the journal.
func (h *Handler) listDeviceEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	nodeID, err := utils.ParseNodeID(chi.URLParam(r, "nodeID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDeviceEvents").Msg("invalid node id")
		utils.WriteError(w, app.MsgInvalidNodeID, statusFromError(err))
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			utils.WriteError(w, app.MsgInvalidLimit, statusFromError(ErrInvalidLimit))
			return
		}
	}

	events, err := h.services.StatusService.ListEvents(r.Context(), nodeID, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDeviceEvents").Msg("error listing events")
		utils.WriteError(w, app.MsgJournalUnavailable, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, events, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listDeviceEvents").Msg("error writing response")
	}
}
