package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
)

type mockEvents struct{ mock.Mock }

func (m *mockEvents) Search(ctx context.Context, q repository.EventSearchQuery) ([]repository.EventSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventSummary), args.Error(1)
}

func (m *mockEvents) Count(ctx context.Context, q repository.EventSearchQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEvents) GetActiveSummary(ctx context.Context, id uint64) (*repository.EventSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.EventSummary), args.Error(1)
}

func (m *mockEvents) GetActive(ctx context.Context, id uint64) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type mockSections struct{ mock.Mock }

func (m *mockSections) ListByEvent(ctx context.Context, eventID uint64) ([]model.Section, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Section), args.Error(1)
}

func (m *mockSections) StatsByEvent(ctx context.Context, eventID uint64) ([]repository.SectionStats, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SectionStats), args.Error(1)
}

type mockSeats struct{ mock.Mock }

func (m *mockSeats) ListByEvent(ctx context.Context, eventID uint64) ([]model.Seat, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Seat), args.Error(1)
}

func (m *mockSeats) GetActiveDetail(ctx context.Context, id uint64) (*repository.SeatDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SeatDetail), args.Error(1)
}

type mockAttendees struct{ mock.Mock }

func (m *mockAttendees) Search(ctx context.Context, q repository.AttendeeSearchQuery) ([]repository.AttendeeMatch, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AttendeeMatch), args.Error(1)
}
