package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hunthub/internal/errors"
)

// pathID parses the :id path parameter. Routes carrying :id are wrapped in
// the ValidateID middleware, so this only fails on wiring mistakes.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// httpError converts a domain error into the echo error carrying the
// `{"message": ...}` body.
func httpError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.Message)
}

// updateAck is the raw store acknowledgment returned by $set-style updates.
// A same-value overwrite matches without modifying, so the counts differ.
func updateAck(matched, modified int64) map[string]interface{} {
	return map[string]interface{}{
		"acknowledged":  true,
		"matchedCount":  matched,
		"modifiedCount": modified,
	}
}

// deleteAck is the raw store acknowledgment returned by deletes.
func deleteAck(deleted int64) map[string]interface{} {
	return map[string]interface{}{
		"acknowledged": true,
		"deletedCount": deleted,
	}
}
