package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidNodeID:    http.StatusBadRequest,
	ErrInvalidLimit:           http.StatusBadRequest,
	service.ErrDeviceNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
