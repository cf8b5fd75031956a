package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/dto"
	"github.com/fanvault/payments/internal/service/ledgerservice"
	"github.com/fanvault/payments/internal/split"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRecordPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful recording",
			body: `{"payer_id":"payer-1","creator_id":"creator-1","amount":999,"category":"subscription","confirmation_id":"conf-1"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordOrQueue(gomock.Any(), "payer-1", "creator-1", int64(999), domain.CategorySubscription, "conf-1").
					Return(&domain.Transaction{
						ID: "tx-1", PayerID: "payer-1", CreatorID: "creator-1",
						AmountMinor: 999, Category: domain.CategorySubscription,
						PlatformFeeMinor: 200, ProviderConfirmationID: "conf-1",
						Status: domain.TransactionCompleted, CreatedAt: now,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing identifiers",
			body:          `{"amount":999,"category":"subscription"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "required",
		},
		{
			name: "Provider unavailable queues for retry",
			body: `{"payer_id":"payer-1","creator_id":"creator-1","amount":999,"category":"subscription","confirmation_id":"conf-1"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordOrQueue(gomock.Any(), "payer-1", "creator-1", int64(999), domain.CategorySubscription, "conf-1").
					Return(nil, ledgerservice.ErrQueuedForRetry)
			},
			expectedCode:  http.StatusAccepted,
			expectedError: "queued for retry",
		},
		{
			name: "Verification failure",
			body: `{"payer_id":"payer-1","creator_id":"creator-1","amount":999,"category":"subscription","confirmation_id":"conf-bad"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordOrQueue(gomock.Any(), "payer-1", "creator-1", int64(999), domain.CategorySubscription, "conf-bad").
					Return(nil, ledgerservice.ErrVerificationFailed)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown category",
			body: `{"payer_id":"payer-1","creator_id":"creator-1","amount":999,"category":"lottery","confirmation_id":"conf-1"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordOrQueue(gomock.Any(), "payer-1", "creator-1", int64(999), domain.Category("lottery"), "conf-1").
					Return(nil, split.ErrUnknownCategory)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"payer_id":"payer-1","creator_id":"creator-1","amount":999,"category":"subscription","confirmation_id":"conf-1"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordOrQueue(gomock.Any(), "payer-1", "creator-1", int64(999), domain.CategorySubscription, "conf-1").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.RecordPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "tx-1", body.ID)
				assert.Equal(t, int64(799), body.CreatorEarnings)
			}
		})
	}
}
