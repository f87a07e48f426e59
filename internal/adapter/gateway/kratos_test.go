package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"channel-hub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestKratosGateway_ValidateSession_EmptyCookie(t *testing.T) {
	gw := NewKratosGateway("http://unused", 5*time.Second)
	identity, err := gw.ValidateSession(context.Background(), "")

	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}
