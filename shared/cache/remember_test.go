package cache_test

import (
	"context"
	"cowork/shared/cache"
	"cowork/shared/cache/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRemember(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *mocks.MockRedisCache, saved chan struct{})
		loadErr   error
		wantValue int
		wantLoads int
	}{
		{
			name: "hit skips load",
			setup: func(c *mocks.MockRedisCache, saved chan struct{}) {
				c.EXPECT().Get(gomock.Any(), "k", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v any) error {
					*(v.(*int)) = 7

					return nil
				})
				close(saved)
			},
			wantValue: 7,
		},
		{
			name: "miss loads and saves",
			setup: func(c *mocks.MockRedisCache, saved chan struct{}) {
				c.EXPECT().Get(gomock.Any(), "k", gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), "k", 42, 60).DoAndReturn(func(context.Context, string, any, int) error {
					close(saved)

					return nil
				})
			},
			wantValue: 42,
			wantLoads: 1,
		},
		{
			name: "load error is not cached",
			setup: func(c *mocks.MockRedisCache, saved chan struct{}) {
				c.EXPECT().Get(gomock.Any(), "k", gomock.Any()).Return(cache.Nil)
				close(saved)
			},
			loadErr:   errors.New("db down"),
			wantLoads: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := mocks.NewMockRedisCache(ctrl)
			saved := make(chan struct{})
			tt.setup(c, saved)

			loads := 0
			value, err := cache.Remember(context.Background(), c, "k", 60, func(context.Context) (int, error) {
				loads++

				return 42, tt.loadErr
			})

			<-saved

			assert.Equal(t, tt.wantLoads, loads)

			if tt.loadErr != nil {
				assert.ErrorIs(t, err, tt.loadErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
