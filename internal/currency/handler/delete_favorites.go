package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/igdimer/currency-converter/internal/auth"

	"github.com/sirupsen/logrus"
)

// DeleteFavorites godoc
// @Summary Delete favorite pairs
// @Description Delete the authenticated user's favorite pairs by id
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param favorite_list query string true "Comma-separated favorite ids" example(1,2,3)
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /favorite_rates [delete]
func (h *Handler) DeleteFavorites(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed.")
		return
	}

	rawList := strings.TrimSpace(r.URL.Query().Get("favorite_list"))
	if rawList == "" {
		writeError(w, http.StatusBadRequest, "Query parameter 'favorite_list' is required.")
		return
	}

	parts := strings.Split(rawList, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Query parameter 'favorite_list' must be a comma-separated list of ids.")
			return
		}
		ids = append(ids, id)
	}

	msg, err := h.service.DeleteFavoritePairs(r.Context(), user.ID, ids)
	if err != nil {
		errMsg := "ups, couldn't delete favorite pairs this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteFavorites", "user_id": user.ID}).Error(errMsg)
		writeError(w, http.StatusInternalServerError, errMsg)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
