package delivery_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/delivery/mock"
)

func sampleSubmission() delivery.Submission {
	return delivery.Submission{
		Kind:        "contact",
		Name:        "Jane Doe",
		Email:       "jane@acme.com",
		Phone:       "+1 555 010 0199",
		Service:     "Cloud Migration",
		Message:     "We need help moving to AWS.",
		SubmittedAt: time.Now(),
	}
}

func TestChain_PrimarySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockNotifier(ctrl)
	fallback := mock.NewMockNotifier(ctrl)
	primary.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	// fallback must not be called

	chain := delivery.NewChain(zap.NewNop(), primary, fallback)
	assert.NoError(t, chain.Notify(context.Background(), sampleSubmission()))
}

func TestChain_FallsBackOnPrimaryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockNotifier(ctrl)
	fallback := mock.NewMockNotifier(ctrl)
	primary.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("primary down"))
	fallback.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	chain := delivery.NewChain(zap.NewNop(), primary, fallback)
	assert.NoError(t, chain.Notify(context.Background(), sampleSubmission()))
}

func TestChain_SwallowsTotalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockNotifier(ctrl)
	fallback := mock.NewMockNotifier(ctrl)
	primary.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("primary down"))
	fallback.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("fallback down"))

	chain := delivery.NewChain(zap.NewNop(), primary, fallback)

	// soft-fail policy: all channels down still reports success
	assert.NoError(t, chain.Notify(context.Background(), sampleSubmission()))
}

func TestWebhookNotifier_PostsJSON(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := delivery.NewWebhookNotifier(srv.URL)
	require.NoError(t, n.Notify(context.Background(), sampleSubmission()))
	assert.Equal(t, "application/json", gotContentType)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := delivery.NewWebhookNotifier(srv.URL)
	err := n.Notify(context.Background(), sampleSubmission())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestLoadConfig_EmptyPathMeansNoop(t *testing.T) {
	cfg, err := delivery.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "noop", cfg.Strategy)

	n, err := delivery.FromConfig(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, n.Notify(context.Background(), sampleSubmission()))
}

func TestLoadConfig_WebhookStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delivery.yaml")
	data := "strategy: webhook\nwebhook_url: https://hooks.example.com/forms\nfallback_url: https://backup.example.com/forms\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := delivery.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "webhook", cfg.Strategy)
	assert.Equal(t, "https://hooks.example.com/forms", cfg.WebhookURL)

	_, err = delivery.FromConfig(cfg, zap.NewNop())
	assert.NoError(t, err)
}

func TestFromConfig_UnknownStrategy(t *testing.T) {
	_, err := delivery.FromConfig(delivery.Config{Strategy: "carrier-pigeon"}, zap.NewNop())
	assert.Error(t, err)
}

func TestFromConfig_WebhookRequiresURL(t *testing.T) {
	_, err := delivery.FromConfig(delivery.Config{Strategy: "webhook"}, zap.NewNop())
	assert.Error(t, err)
}
