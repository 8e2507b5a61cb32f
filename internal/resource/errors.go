package resource

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

// Response messages.
const (
	MsgItemNotFound = "Item not found"
	MsgItemDeleted  = "Item deleted successfully"
	MsgInvalidJSON  = "Invalid JSON was passed"
	MsgInvalidID    = "Invalid id"
	MsgDuplicate    = "Item already exists"
	MsgInvalidItem  = "Item is invalid"
	MsgBadRequest   = "Request could not be processed"
	MsgNotAllowed   = "Method is not implemented"
)

var (
	errEmptyBody      = errors.New("request body is empty")
	errBodyTooLarge   = errors.New("request body is too large")
	errUnreadableBody = errors.New("request body could not be read")
	errMalformedJSON  = errors.New("malformed json body")
)

// failure is the response for one class of errors.
type failure struct {
	target  error
	status  int
	message string
}

// failures is checked in order; the first match wins.
var failures = []failure{
	{target: store.ErrRecordNotFound, status: http.StatusNotFound, message: MsgItemNotFound},
	{target: store.ErrMalformedID, status: http.StatusBadRequest, message: MsgInvalidID},
	{target: store.ErrInvalidPatch, status: http.StatusBadRequest, message: MsgInvalidJSON},
	{target: store.ErrInvalidRecord, status: http.StatusBadRequest, message: MsgInvalidItem},
	{target: store.ErrDuplicateKey, status: http.StatusBadRequest, message: MsgDuplicate},
	{target: errEmptyBody, status: http.StatusBadRequest, message: errEmptyBody.Error()},
	{target: errBodyTooLarge, status: http.StatusRequestEntityTooLarge, message: errBodyTooLarge.Error()},
	{target: errUnreadableBody, status: http.StatusBadRequest, message: errUnreadableBody.Error()},
	{target: errMalformedJSON, status: http.StatusBadRequest, message: MsgInvalidJSON},
}

// classify maps err to a status and a client-safe message. Rule violations
// reported by the record itself keep their text. Unclassified errors are
// store failures and answer 400.
func classify(err error) (int, string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	for _, f := range failures {
		if errors.Is(err, f.target) {
			return f.status, f.message
		}
	}
	return http.StatusBadRequest, MsgBadRequest
}

// writeError writes {"error": message}. With verbose set the raw text of
// cause is attached as "details".
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, cause error, verbose bool) {
	resp := models.ErrorResponse{Error: message}
	if verbose && cause != nil {
		resp.Details = cause.Error()
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "resource.writeError").Msg("error writing response")
	}
}
