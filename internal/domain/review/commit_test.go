package review

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-fin/importer/internal/backend"
)

// commitServer accepts creates on /incomes and /expenses and fails any payload
// whose id appears in failIDs. Handlers run concurrently; everything they
// touch is request-local.
func commitServer(t *testing.T, failIDs ...int64) *httptest.Server {
	t.Helper()
	failing := make(map[int64]struct{}, len(failIDs))
	for _, id := range failIDs {
		failing[id] = struct{}{}
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/incomes" && r.URL.Path != "/expenses" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			return
		}
		var p backend.TransactionPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("bad payload: %v", err)
			return
		}
		if _, fail := failing[p.ID]; fail {
			fmt.Fprint(w, `{"details":"error","response":"insert rejected"}`)
			return
		}
		fmt.Fprintf(w, `{"details":"created","response":{"id":%d,"name":%q,"amount":%g}}`,
			p.ID+1000, p.Name, p.Amount)
	}))
}

func TestCommit_AllSucceed(t *testing.T) {
	srv := commitServer(t)
	defer srv.Close()

	s := newTestSession(backend.NewClient(srv.URL, testLogger()))
	result, err := s.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Saved)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "3 saved, 0 failed", result.Summary())
	assert.True(t, result.TotalSaved.Equal(amt("1572.29")), "got %s", result.TotalSaved)

	// A clean commit ends the session.
	assert.Empty(t, s.Pending())
	assert.Empty(t, s.FileName)
}

func TestCommit_PartialFailure(t *testing.T) {
	srv := commitServer(t, 102)
	defer srv.Close()

	s := newTestSession(backend.NewClient(srv.URL, testLogger()))
	require.NoError(t, s.SetSelected(103, false))

	result, err := s.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1 saved, 1 failed", result.Summary())
	assert.Equal(t, []int64{102}, result.FailedIDs)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "insert rejected")
	assert.True(t, result.TotalSaved.Equal(amt("1500")), "got %s", result.TotalSaved)

	// Exactly the failed row stays pending; the deselected one is gone too.
	pending := s.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, int64(102), pending[0].ID)
	assert.Equal(t, "movimientos.xlsx", s.FileName)
}

func TestCommit_FailedRowsKeepOrder(t *testing.T) {
	srv := commitServer(t, 101, 103)
	defer srv.Close()

	s := newTestSession(backend.NewClient(srv.URL, testLogger()))
	result, err := s.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 2, result.Failed)

	pending := s.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, int64(101), pending[0].ID)
	assert.Equal(t, int64(103), pending[1].ID)
}

func TestCommit_NothingSelected(t *testing.T) {
	s := newTestSession(nil)
	for _, p := range s.Pending() {
		require.NoError(t, s.SetSelected(p.ID, false))
	}

	result, err := s.Commit(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNothingSelected)

	// Nothing was touched; the rows are still there for another pass.
	assert.Len(t, s.Pending(), 3)
}

func TestCommit_RetryAfterFailure(t *testing.T) {
	failSrv := commitServer(t, 102)
	s := newTestSession(backend.NewClient(failSrv.URL, testLogger()))

	_, err := s.Commit(context.Background())
	require.NoError(t, err)
	failSrv.Close()

	okSrv := commitServer(t)
	defer okSrv.Close()

	// Second commit against a healthy backend drains the session.
	retry := NewSession(s.FileName, nil, backend.NewClient(okSrv.URL, testLogger()), Params{}, testLogger())
	retry.pending = s.pending

	result, err := retry.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Empty(t, retry.Pending())
}
