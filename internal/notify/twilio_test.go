package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

func testTwilio(t *testing.T, handler http.HandlerFunc) *TwilioSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewTwilioSender("AC123", "secret", "+15550000000", logging.Discard())
	require.NotNil(t, s)
	s.baseURL = srv.URL
	s.backoff = time.Millisecond
	return s
}

func TestTwilioSendSMS(t *testing.T) {
	s := testTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+581111111", r.PostForm.Get("To"))
		assert.Equal(t, "+15550000000", r.PostForm.Get("From"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	})

	assert.NoError(t, s.SendSMS(context.Background(), "+581111111", "hello"))
}

func TestTwilioRetriesServerErrors(t *testing.T) {
	var calls int32
	s := testTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	assert.NoError(t, s.SendSMS(context.Background(), "+581111111", "hello"))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestTwilioDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	s := testTwilio(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	})

	err := s.SendSMS(context.Background(), "bad", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestTwilioValidation(t *testing.T) {
	assert.Nil(t, NewTwilioSender("", "", "", nil))

	var nilSender *TwilioSender
	assert.Error(t, nilSender.SendSMS(context.Background(), "+1", "x"))

	s := NewTwilioSender("AC", "tok", "+1", logging.Discard())
	assert.Error(t, s.SendSMS(context.Background(), "", "x"))
	assert.Error(t, s.SendSMS(context.Background(), "+2", "  "))
}
