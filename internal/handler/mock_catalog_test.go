package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) SearchEvents(ctx context.Context, p service.EventSearchParams) (*service.EventSearchResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventSearchResult), args.Error(1)
}

func (m *mockCatalog) ListEvents(ctx context.Context, p service.ListParams) (*service.EventPage, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventPage), args.Error(1)
}

func (m *mockCatalog) SearchAttendees(ctx context.Context, p service.AttendeeSearchParams) (*service.AttendeeSearchResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AttendeeSearchResult), args.Error(1)
}

func (m *mockCatalog) EventDetail(ctx context.Context, id uint64) (*service.EventOverview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventOverview), args.Error(1)
}

func (m *mockCatalog) EventStatistics(ctx context.Context, id uint64) (*service.EventStatistics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventStatistics), args.Error(1)
}

func (m *mockCatalog) MapData(ctx context.Context, id uint64) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *mockCatalog) SeatMap(ctx context.Context, id uint64) (*service.SeatMap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeatMap), args.Error(1)
}

func (m *mockCatalog) SeatInfo(ctx context.Context, id uint64) (*repository.SeatDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SeatDetail), args.Error(1)
}
