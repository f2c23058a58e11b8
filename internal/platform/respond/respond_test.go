package respond

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-care-records/internal/domain/shared"
)

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "medicine not found"},
		{"referenced animal", fmt.Errorf("animal %q: %w", "Ghost", shared.ErrReferencedEntityNotFound), http.StatusNotFound, "animal not found"},
		{"invalid", shared.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{"storage write", &shared.StorageWriteError{Namespace: "growth-photos", Err: errors.New("quota")}, http.StatusBadGateway, "attachment storage unavailable"},
		{"other", errors.New("db down"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, tc.err, "medicine not found")

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tc.msg), w.Body.String())
		})
	}
}

func TestPageFromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/animals?page=3", nil)
	assert.Equal(t, 3, PageFromQuery(r).Page)

	r = httptest.NewRequest(http.MethodGet, "/animals?page=-1", nil)
	assert.Equal(t, 1, PageFromQuery(r).Page)

	r = httptest.NewRequest(http.MethodGet, "/animals?page=abc", nil)
	assert.Equal(t, 1, PageFromQuery(r).Page)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.Format(DateLayout))

	d, err = ParseDate("2024-06-01T15:04:05Z")
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}
