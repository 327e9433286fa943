package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/variant-catalog/constant"
	cerr "github.com/muhammadheryan/variant-catalog/utils/errors"
)

func TestAsCustomError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantType   constant.ErrorType
		wantStatus int
	}{
		{
			name:       "custom error",
			err:        cerr.SetCustomError(constant.ErrVariantProductMismatch),
			wantOK:     true,
			wantType:   constant.ErrVariantProductMismatch,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped custom error",
			err:        fmt.Errorf("replace: %w", cerr.SetCustomError(constant.ErrNotFound)),
			wantOK:     true,
			wantType:   constant.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "plain error becomes internal",
			err:        stderrors.New("boom"),
			wantOK:     false,
			wantType:   constant.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ce, ok := cerr.AsCustomError(tt.err)
			if ok != tt.wantOK || ce.Type() != tt.wantType {
				t.Fatalf("AsCustomError() = (%v, %v), want (%v, %v)", ce.Type(), ok, tt.wantType, tt.wantOK)
			}
			if ce.ErrorHTTPCode() != tt.wantStatus {
				t.Fatalf("ErrorHTTPCode() = %d, want %d", ce.ErrorHTTPCode(), tt.wantStatus)
			}
			if got := cerr.IsType(tt.err, tt.wantType); got != tt.wantOK {
				t.Fatalf("IsType() = %v, want %v", got, tt.wantOK)
			}
		})
	}
}
