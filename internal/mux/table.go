package mux

import (
	"errors"
	"net/http"
	"regexp"
)

const maxNameLength = 32

var wordChar = regexp.MustCompile(`\w`)

// getTable returns the public view of the table, which shows no hidden cards
func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := m.dealer.Snapshot(r.Context(), "")
		if err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusOK, s)
	}
}

func validateName(name string) error {
	if !wordChar.MatchString(name) {
		return errors.New("name must contain a word character")
	}

	if len(name) > maxNameLength {
		return errors.New("name is too long")
	}

	return nil
}
