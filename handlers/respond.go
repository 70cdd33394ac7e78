package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/bellacucina/api/storage"
	"github.com/bellacucina/api/workflow"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Printf("failed to encode response, error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps domain errors to HTTP codes: validation failures
// carry every violation in one message, unknown ids become 404 with the
// given message, illegal status moves become 409. Anything else is logged
// and reported as a generic 500.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	var verrs *multierror.Error
	var transitionErr *workflow.InvalidTransitionError

	switch {
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, joinViolations(verrs))
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &transitionErr):
		writeError(w, http.StatusConflict, transitionErr.Error())
	default:
		logrus.Printf("unhandled error, error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func joinViolations(errs *multierror.Error) string {
	msgs := make([]string, 0, len(errs.Errors))
	for _, e := range errs.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
