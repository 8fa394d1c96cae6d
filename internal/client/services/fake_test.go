package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
)

type recordedCall struct {
	Method   string
	Path     string
	Query    url.Values
	Body     string
	SkipAuth bool
}

// fakeAPI answers Do calls from canned JSON replies keyed by "METHOD path".
type fakeAPI struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	calls   []recordedCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{replies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeAPI) reply(method, path, body string) *fakeAPI {
	f.replies[method+" "+path] = body
	return f
}

func (f *fakeAPI) fail(method, path string, err error) *fakeAPI {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeAPI) Do(ctx context.Context, method, path string, in, out any, opts ...apiclient.CallOption) error {
	call := &apiclient.Call{Method: method, Path: path, Query: url.Values{}, Header: http.Header{}}
	for _, o := range opts {
		o(call)
	}

	rc := recordedCall{Method: method, Path: path, Query: call.Query, SkipAuth: call.SkipsAuth()}
	if in != nil {
		b, _ := json.Marshal(in)
		rc.Body = string(b)
	}

	f.mu.Lock()
	f.calls = append(f.calls, rc)
	key := method + " " + path
	err, failing := f.errs[key]
	body, ok := f.replies[key]
	f.mu.Unlock()

	if failing {
		return err
	}
	if !ok {
		return &apiclient.HTTPError{Status: http.StatusNotFound}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeAPI) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}
