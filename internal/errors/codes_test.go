package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	energyerrors "github.com/greenops/energydb/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestEnergyError_Error(t *testing.T) {
	cause := stderrors.New("connection refused")

	assert.Equal(t, "metrics server shutdown failed: connection refused",
		energyerrors.Unavailable("metrics server shutdown failed", cause).Error())
	assert.Equal(t, "server.node_id is required",
		energyerrors.InvalidConfig("server.node_id", "is required").Error())
}

func TestEnergyError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("startup: %w", energyerrors.InternalError("listener failed", cause))

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, energyerrors.IsEnergyError(err))
	assert.Equal(t, energyerrors.ErrCodeInternal, energyerrors.GetCode(err))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want energyerrors.ErrorCode
	}{
		{name: "nil", err: nil, want: energyerrors.ErrCodeOK},
		{name: "plain error", err: stderrors.New("x"), want: energyerrors.ErrCodeInternal},
		{name: "invalid config", err: energyerrors.InvalidConfig("a", "b"), want: energyerrors.ErrCodeInvalidConfig},
		{name: "unavailable", err: energyerrors.Unavailable("down", nil), want: energyerrors.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, energyerrors.GetCode(tt.err))
		})
	}
}

func TestInvalidConfig_Details(t *testing.T) {
	err := energyerrors.InvalidConfig("metrics.port", "must be between 1 and 65535")

	assert.Equal(t, "metrics.port", err.Details["field"])
	assert.Equal(t, "must be between 1 and 65535", err.Details["reason"])
	assert.Equal(t, "invalid_config", err.Code.String())
}
