package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/delivery/mock"
	"github.com/technova-labs/portal-go/internal/domain/inquiry"
	"github.com/technova-labs/portal-go/internal/repository"
)

func setupInquiryService(t *testing.T) (*InquiryService, *mock.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	notifier := mock.NewMockNotifier(ctrl)
	svc := NewInquiryService(repository.New(), notifier, zap.NewNop())
	return svc, notifier
}

func contactInput() inquiry.CreateInquiryInput {
	return inquiry.CreateInquiryInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@acme.com",
		Phone:     "+1 555 010 0199",
		Service:   "Cloud Migration",
		Message:   "We need help moving to AWS.",
	}
}

func TestInquiryCreate_NotifiesDeliveryChannel(t *testing.T) {
	svc, notifier := setupInquiryService(t)

	var sent delivery.Submission
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sub delivery.Submission) error {
			sent = sub
			return nil
		})

	q := svc.Create(context.Background(), contactInput(), inquiry.TypeContact)

	assert.Equal(t, uint(1), q.ID)
	assert.Equal(t, "contact", sent.Kind)
	assert.Equal(t, "Jane Doe", sent.Name)
	assert.Equal(t, "jane@acme.com", sent.Email)
}

func TestInquiryCreate_DeliveryFailureDoesNotBlockStore(t *testing.T) {
	svc, notifier := setupInquiryService(t)

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("channel down"))

	q := svc.Create(context.Background(), contactInput(), inquiry.TypeQuote)

	assert.Equal(t, inquiry.TypeQuote, q.Type)

	// the inquiry was stored despite the failed delivery
	got, err := svc.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestInquiryMarkRead_UnknownID(t *testing.T) {
	svc, _ := setupInquiryService(t)

	_, err := svc.MarkRead(42)
	assert.Equal(t, ErrInquiryNotFound, err)
}
