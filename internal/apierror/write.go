package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const maskedMessage = "internal server error"

// errorEnvelope is the uniform error body: {"success": false, "error": msg}.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Write normalizes err and sends the error envelope. Driver-level failures
// (duplicate keys, malformed ids, validation errors) are remapped to
// BadRequest; everything unclassified is an internal error whose message is
// masked outside development.
func Write(w http.ResponseWriter, logger *zerolog.Logger, environment string, err error) {
	normalized := Normalize(err)

	if environment == "development" {
		logger.Error().Err(err).Msg("request failed")
	} else if !normalized.Operational {
		logger.Error().Err(err).Msg("unexpected error")
	}

	message := normalized.Message
	if environment != "development" && !normalized.Operational {
		message = maskedMessage
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(normalized.Status())
	_ = json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: message})
}

// Normalize maps heterogeneous failure shapes onto the taxonomy.
func Normalize(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if mongo.IsDuplicateKeyError(err) {
		return Conflict(duplicateKeyMessage(err))
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return BadRequest(fmt.Sprintf("validation failed on field '%s'", fe.Field()))
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound("not found")
	}

	return Internal(err.Error())
}

// duplicateKeyMessage extracts the offending field from a Mongo duplicate-key
// rejection, e.g. "index: email_1 dup key" yields "email already exists".
func duplicateKeyMessage(err error) string {
	msg := err.Error()

	marker := "index: "
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "duplicate key error"
	}

	rest := msg[idx+len(marker):]
	if end := strings.IndexAny(rest, " _"); end > 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return "duplicate key error"
	}

	return rest + " already exists"
}
