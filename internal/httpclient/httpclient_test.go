package httpclient

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesFixedProxy(t *testing.T) {
	client, err := New(Options{ProxyURL: "http://127.0.0.1:18081", Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)

	req := &http.Request{URL: &url.URL{Scheme: "https", Host: "example.com"}}
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "127.0.0.1:18081", proxyURL.Host)
}

func TestNewDefaultTimeout(t *testing.T) {
	client, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestNewRejectsBadProxy(t *testing.T) {
	_, err := New(Options{ProxyURL: "127.0.0.1:18081"})
	assert.Error(t, err)

	_, err = New(Options{ProxyURL: "http://[::1"})
	assert.Error(t, err)
}
