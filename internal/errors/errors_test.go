package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	assert.Equal(t, KindStoreUnavailable, KindOf(StoreUnavailable(cause)))
	assert.Equal(t, KindStoreUnavailable, KindOf(fmt.Errorf("list skills: %w", StoreUnavailable(cause))))
	assert.Equal(t, KindNotFound, KindOf(NotFound("Compétence non trouvée")))
	assert.Equal(t, KindInternal, KindOf(cause))
	assert.True(t, errors.Is(StoreUnavailable(cause), cause))
	assert.False(t, Is(nil, KindInternal))
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        Validation(FieldError{Field: "name", Message: "Ce champ est requis"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "Données invalides",
		},
		{
			name:       "unauthorized",
			err:        Unauthorized("Identifiants incorrects"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "Identifiants incorrects",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("update: %w", NotFound("Certification non trouvée")),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Certification non trouvée",
		},
		{
			name:       "store unavailable",
			err:        StoreUnavailable(errors.New("refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORE_UNAVAILABLE",
			wantMsg:    "Base de données indisponible",
		},
		{
			name:       "untagged error hides details",
			err:        errors.New("duplicate key value violates unique constraint"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Erreur interne du serveur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.ToErrorResponse().Error)
		})
	}
}

func TestMapErrorToHTTP_KeepsFields(t *testing.T) {
	fields := []FieldError{{Field: "level", Message: "Doit être au plus 100"}}
	resp := MapErrorToHTTP(Validation(fields...)).ToErrorResponse()
	assert.Equal(t, fields, resp.Fields)
}
