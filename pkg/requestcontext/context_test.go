package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, AdminActor(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx = WithTime(WithAdminActor(WithRequestID(ctx, "req-1"), "ops"), fixed)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "ops", AdminActor(ctx))
	assert.Equal(t, fixed, Now(ctx))
}
