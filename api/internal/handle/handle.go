package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"schedule-scanner/api/internal/scanner"
	"schedule-scanner/api/internal/store"
)

type Handle struct {
	Scanner *scanner.Scanner
	Store   *store.Store
}

func New(sc *scanner.Scanner, st *store.Store) *Handle {
	return &Handle{Scanner: sc, Store: st}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps pipeline errors onto HTTP statuses. A duplicate week is
// a business rejection (409), not a server failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, scanner.ErrDuplicateWeek):
		return http.StatusConflict
	case errors.Is(err, scanner.ErrNoEmployeeName), errors.Is(err, scanner.ErrBadImage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
