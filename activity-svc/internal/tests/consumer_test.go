package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-portal/activity-svc/internal/domain"
	"hotel-portal/activity-svc/internal/mocks"
	"hotel-portal/activity-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessActivity(t *testing.T) {
	placed := domain.KafkaMessage{
		Type:      domain.TypeOrderPlaced,
		HotelName: "Grand Plaza",
		Reference: "42",
		Amount:    decimal.RequireFromString("250.00"),
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:         "success",
			inputMessage: placed,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveActivity", mock.Anything, placed).Return(nil)
				mockStore.On("BumpDailyCounter", mock.Anything, placed).Return(nil)
			},
		},
		{
			name:         "SaveActivity error",
			inputMessage: placed,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveActivity", mock.Anything, placed).Return(errors.New("db connection failed"))
			},
		},
		{
			name:         "BumpDailyCounter error",
			inputMessage: placed,
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveActivity", mock.Anything, placed).Return(nil)
				mockStore.On("BumpDailyCounter", mock.Anything, placed).Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessActivity(context.Background(), testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_SkipsUnusableMessages(t *testing.T) {
	messages := []domain.KafkaMessage{
		{Type: "new_review", HotelName: "Grand Plaza"},
		{Type: domain.TypeReorder, HotelName: ""},
	}

	for _, msg := range messages {
		mockStore := mocks.NewStoreInterface(t)
		consumer := &service.Consumer{
			Store: mockStore,
		}

		consumer.ProcessActivity(context.Background(), msg)
		mockStore.AssertNotCalled(t, "SaveActivity", mock.Anything, mock.Anything)
		mockStore.AssertNotCalled(t, "BumpDailyCounter", mock.Anything, mock.Anything)
	}
}
