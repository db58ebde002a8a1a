package usecase_test

import (
	"context"
	"testing"
	"time"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/infrastructure/router"
	"linebook-service/internal/usecase"
	"linebook-service/pkg/logger"
	"linebook-service/pkg/metrics"
	"linebook-service/templates"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared across the package's tests; promauto registers against the
// default registry and duplicate registration panics.
var testMetrics = metrics.NewMetrics("linebook_test")

// MockReservationRepo is a mock implementation of ReservationRepository
type MockReservationRepo struct {
	testifymock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepo) FindPendingByUser(ctx context.Context, userID string) ([]*entity.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepo) FindOnePending(ctx context.Context, userID string, date time.Time) (*entity.Reservation, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Save(ctx context.Context, reservation *entity.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

// MockReplyRepo is a mock implementation of ReplyRepository
type MockReplyRepo struct {
	testifymock.Mock
}

func (m *MockReplyRepo) ReplyText(ctx context.Context, replyToken, text string) error {
	args := m.Called(ctx, replyToken, text)
	return args.Error(0)
}

func newDispatcher(resRepo *MockReservationRepo, replyRepo *MockReplyRepo) *usecase.Dispatcher {
	log := logger.NewLogger("error")
	commandRouter := router.NewCommandRouter(log)
	commandRouter.Register(usecase.NewCheckHandler(resRepo, replyRepo, log))
	commandRouter.Register(usecase.NewReserveHandler(resRepo, replyRepo, log))
	commandRouter.Register(usecase.NewCancelHandler(resRepo, replyRepo, log))
	commandRouter.Register(usecase.NewHelpHandler(nil, replyRepo, log))

	return usecase.NewDispatcher(commandRouter, usecase.NewWelcomeHandler(replyRepo), replyRepo, testMetrics, log)
}

func textEvent(text string) *entity.MessageEvent {
	return &entity.MessageEvent{
		Type:       entity.EventTypeMessage,
		Message:    entity.MessageContent{Type: entity.MessageTypeText, Text: text},
		Source:     entity.EventSource{UserID: "U123"},
		ReplyToken: "rt-1",
	}
}

func TestReserveCreatesPendingReservation(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	wantDate := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	resRepo.On("Create", testifymock.Anything, testifymock.MatchedBy(func(r *entity.Reservation) bool {
		return r.UserID == "U123" &&
			r.UserName == "User" &&
			r.Date.Equal(wantDate) &&
			r.Time == "14:00" &&
			r.Service == "haircut" &&
			r.Status == entity.StatusPending
	})).Return(nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1",
		"Your reservation has been received.\nDate: 2023/05/01 14:00\nService: haircut").Return(nil)

	d.DispatchEvent(context.Background(), textEvent("reserve 2023/05/01 14:00 haircut"))

	resRepo.AssertExpectations(t)
	replyRepo.AssertExpectations(t)
}

func TestReserveDropsTrailingTokens(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	resRepo.On("Create", testifymock.Anything, testifymock.MatchedBy(func(r *entity.Reservation) bool {
		return r.Service == "haircut"
	})).Return(nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", testifymock.Anything).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("reserve 2023/05/01 14:00 haircut and something else"))

	resRepo.AssertExpectations(t)
}

func TestReserveTooFewTokensRepliesFormatError(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.ReserveFormatError).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("reserve 2023/05/01 14:00"))

	resRepo.AssertNotCalled(t, "Create", testifymock.Anything, testifymock.Anything)
	replyRepo.AssertExpectations(t)
}

func TestReserveUnparseableDateRepliesFormatError(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.ReserveFormatError).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("reserve someday 14:00 haircut"))

	resRepo.AssertNotCalled(t, "Create", testifymock.Anything, testifymock.Anything)
	replyRepo.AssertExpectations(t)
}

func TestCheckListsPendingReservations(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	pending := []*entity.Reservation{
		{Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), Time: "14:00", Service: "haircut"},
		{Date: time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC), Time: "10:30", Service: "coloring"},
	}
	resRepo.On("FindPendingByUser", testifymock.Anything, "U123").Return(pending, nil)

	want := "Your current reservations:\n\n" +
		"Date: 2023/05/01 14:00\nService: haircut\n\n" +
		"Date: 2023/05/03 10:30\nService: coloring"
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", want).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("check reservations"))

	resRepo.AssertExpectations(t)
	replyRepo.AssertExpectations(t)
}

func TestCheckWithNoReservations(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	resRepo.On("FindPendingByUser", testifymock.Anything, "U123").Return([]*entity.Reservation{}, nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.NoReservations).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("check reservations"))

	replyRepo.AssertExpectations(t)
}

func TestCancelMarksReservationCancelled(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	date := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.Reservation{
		UserID:  "U123",
		Date:    date,
		Time:    "14:00",
		Service: "haircut",
		Status:  entity.StatusPending,
	}
	resRepo.On("FindOnePending", testifymock.Anything, "U123", date).Return(existing, nil)
	resRepo.On("Save", testifymock.Anything, testifymock.MatchedBy(func(r *entity.Reservation) bool {
		return r.Status == entity.StatusCancelled
	})).Return(nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.CancelConfirmed).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("cancel 2023/05/01"))

	resRepo.AssertExpectations(t)
	replyRepo.AssertExpectations(t)
}

func TestCancelSameDayAsReserveMatches(t *testing.T) {
	// Both paths normalize dates through the same parser, so a reservation
	// made with "reserve 2023/05/01 ..." must be found by "cancel 2023/05/01".
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	var storedDate time.Time
	resRepo.On("Create", testifymock.Anything, testifymock.Anything).Run(func(args testifymock.Arguments) {
		storedDate = args.Get(1).(*entity.Reservation).Date
	}).Return(nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", testifymock.Anything).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("reserve 2023/05/01 14:00 haircut"))

	resRepo.On("FindOnePending", testifymock.Anything, "U123", testifymock.MatchedBy(func(date time.Time) bool {
		return date.Equal(storedDate)
	})).Return(&entity.Reservation{Status: entity.StatusPending}, nil)
	resRepo.On("Save", testifymock.Anything, testifymock.Anything).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("cancel 2023/05/01"))

	resRepo.AssertExpectations(t)
}

func TestCancelNotFound(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	date := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	resRepo.On("FindOnePending", testifymock.Anything, "U123", date).Return(nil, nil)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.CancelNotFound).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("cancel 2023/05/01"))

	resRepo.AssertNotCalled(t, "Save", testifymock.Anything, testifymock.Anything)
	replyRepo.AssertExpectations(t)
}

func TestCancelTooFewTokensRepliesFormatError(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.CancelFormatError).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("cancel"))

	resRepo.AssertNotCalled(t, "FindOnePending", testifymock.Anything, testifymock.Anything, testifymock.Anything)
	replyRepo.AssertExpectations(t)
}

func TestCancelUnparseableDateRepliesFormatError(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.CancelFormatError).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("cancel someday"))

	resRepo.AssertNotCalled(t, "FindOnePending", testifymock.Anything, testifymock.Anything, testifymock.Anything)
	resRepo.AssertNotCalled(t, "Save", testifymock.Anything, testifymock.Anything)
	replyRepo.AssertExpectations(t)
}

func TestHelpRepliesCommandSummary(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.Help).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("help"))

	require.Len(t, resRepo.Calls, 0)
	replyRepo.AssertExpectations(t)
}

func TestUnknownTextRepliesWelcome(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.Welcome).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("xyz random text"))

	require.Len(t, resRepo.Calls, 0)
	replyRepo.AssertExpectations(t)
}

func TestStoreErrorRepliesGenericApology(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	resRepo.On("FindPendingByUser", testifymock.Anything, "U123").Return(nil, assert.AnError)
	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.GenericError).Return(nil)

	d.DispatchEvent(context.Background(), textEvent("check reservations"))

	replyRepo.AssertExpectations(t)
}

func TestMetricsAdvanceOnDispatch(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	replyRepo.On("ReplyText", testifymock.Anything, "rt-1", templates.Help).Return(nil)

	eventsBefore := testutil.ToFloat64(testMetrics.EventsReceived)
	helpBefore := testutil.ToFloat64(testMetrics.CommandsTotal.WithLabelValues("help"))

	d.DispatchEvent(context.Background(), textEvent("help"))

	assert.Equal(t, eventsBefore+1, testutil.ToFloat64(testMetrics.EventsReceived))
	assert.Equal(t, helpBefore+1, testutil.ToFloat64(testMetrics.CommandsTotal.WithLabelValues("help")))
}

func TestNonTextEventsAreIgnored(t *testing.T) {
	resRepo := new(MockReservationRepo)
	replyRepo := new(MockReplyRepo)
	d := newDispatcher(resRepo, replyRepo)

	d.DispatchEvent(context.Background(), &entity.MessageEvent{
		Type:       entity.EventTypeMessage,
		Message:    entity.MessageContent{Type: "sticker"},
		Source:     entity.EventSource{UserID: "U123"},
		ReplyToken: "rt-1",
	})
	d.DispatchEvent(context.Background(), &entity.MessageEvent{
		Type:       "follow",
		ReplyToken: "rt-2",
	})

	assert.Empty(t, resRepo.Calls)
	assert.Empty(t, replyRepo.Calls)
}
