package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	roomMocks "cowork/internal/domains/room/mocks"
	"cowork/internal/domains/room/model"
	"cowork/internal/domains/room/service"
	"cowork/shared/cache"
	cacheMocks "cowork/shared/cache/mocks"
	gDto "cowork/shared/dto"
)

func newService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache)
		wantErr   error
		wantCost  string
	}{
		{
			name: "cache miss reads repository",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room:get:room-1", gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
					ID:                "room-1",
					Site:              "north",
					Capacity:          4,
					CreditCostPerHour: decimal.NewFromInt(2),
					IsAvailable:       true,
				}, nil)
			},
			wantCost: "2",
		},
		{
			name: "cache hit skips repository",
			setupMock: func(_ *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room:get:room-1", gomock.Any()).Return(nil)
			},
			wantCost: "0",
		},
		{
			name: "unknown room",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: service.ErrRoomNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newService(ctrl)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "room-1")

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCost, res.CreditCostPerHour.String())
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldSite, Value: "north", Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), filter).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Room{{ID: "a"}, {ID: "b"}}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_GetAll_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.Error(t, err)
}
