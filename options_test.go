package chessclient

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/chessclient/internal/stats"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", o.baseURL, DefaultBaseURL)
	}
	if o.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", o.timeout, DefaultTimeout)
	}
	if o.stats == nil || o.logger == nil {
		t.Error("stats and logger must default to no-ops")
	}
}

func TestWithNilDependencies(t *testing.T) {
	o := defaultOptions()
	WithStats(nil).apply(&o)
	WithLogger(nil).apply(&o)
	if o.stats == nil {
		t.Error("WithStats(nil) cleared the collector")
	}
	if o.logger == nil {
		t.Error("WithLogger(nil) cleared the logger")
	}

	c := stats.NewNoop()
	l := zap.NewExample()
	WithStats(c).apply(&o)
	WithLogger(l).apply(&o)
	if o.stats != c || o.logger != l {
		t.Error("options not applied")
	}
}

func TestBuildHTTPClient_Owned(t *testing.T) {
	o := defaultOptions()
	WithTimeout(3 * time.Second).apply(&o)

	hc, transport := o.buildHTTPClient()
	if transport == nil {
		t.Fatal("owned client must expose its transport")
	}
	if hc.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", hc.Timeout)
	}
	if transport.ResponseHeaderTimeout != 3*time.Second {
		t.Errorf("ResponseHeaderTimeout = %v, want 3s", transport.ResponseHeaderTimeout)
	}
	if hc.Transport != transport {
		t.Error("untraced client should use the transport directly")
	}
}

func TestBuildHTTPClient_Supplied(t *testing.T) {
	supplied := &http.Client{Timeout: time.Minute}
	o := defaultOptions()
	WithHTTPClient(supplied).apply(&o)

	hc, transport := o.buildHTTPClient()
	if hc != supplied {
		t.Error("supplied client should be used as given")
	}
	if transport != nil {
		t.Error("supplied client's transport must not be owned")
	}
}
