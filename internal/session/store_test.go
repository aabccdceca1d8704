package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/log"
)

type fakeVerifier struct {
	user  *api.User
	err   error
	calls int
}

func (f *fakeVerifier) VerifySession(ctx context.Context) (*api.User, error) {
	f.calls++
	return f.user, f.err
}

func newTestStore(t *testing.T, verifier Verifier) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return New(path, verifier, log.Discard()), path
}

func TestRestoreWithoutFile(t *testing.T) {
	store, _ := newTestStore(t, &fakeVerifier{})

	snap := store.Restore()

	// No persisted token: resolved immediately, no waiting state.
	assert.False(t, snap.Loading)
	assert.False(t, snap.Authenticated())
	assert.Empty(t, snap.Token)
}

func TestLoginPersistsAndRestores(t *testing.T) {
	verifier := &fakeVerifier{}
	store, path := newTestStore(t, verifier)

	user := api.User{ID: "u1", Name: "Asha", MemberNo: "M-7", Role: "ec member"}
	require.NoError(t, store.Login("tok-1", user))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	snap := store.Snapshot()
	assert.True(t, snap.Authenticated())
	assert.Equal(t, "EC_MEMBER", snap.User.Role, "role is normalized on login")

	// A fresh store restores the same session optimistically.
	restored := New(path, verifier, log.Discard())
	snap = restored.Restore()
	assert.True(t, snap.Loading, "restored token awaits verification")
	assert.Equal(t, "tok-1", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Asha", snap.User.Name)
}

func TestLoginRequiresToken(t *testing.T) {
	store, _ := newTestStore(t, &fakeVerifier{})
	assert.Error(t, store.Login("", api.User{ID: "u1"}))
}

func TestVerifyWithoutTokenIsNoop(t *testing.T) {
	verifier := &fakeVerifier{}
	store, _ := newTestStore(t, verifier)
	store.Restore()

	require.NoError(t, store.Verify(context.Background()))
	assert.Equal(t, 0, verifier.calls, "no round-trip without a token")
	assert.False(t, store.Snapshot().Loading)
}

func TestVerifyReplacesOptimisticUser(t *testing.T) {
	// The persisted user said MEMBER; the server says the member was
	// promoted since. The server wins.
	verifier := &fakeVerifier{user: &api.User{ID: "u1", Name: "Asha", Role: "TREASURER"}}
	store, path := newTestStore(t, verifier)
	require.NoError(t, store.Login("tok-1", api.User{ID: "u1", Name: "Asha", Role: "MEMBER"}))

	restored := New(path, verifier, log.Discard())
	snap := restored.Restore()
	assert.Equal(t, "MEMBER", snap.User.Role)

	require.NoError(t, restored.Verify(context.Background()))

	snap = restored.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "TREASURER", snap.User.Role)

	// The promotion is re-persisted for the next start.
	again := New(path, verifier, log.Discard())
	assert.Equal(t, "TREASURER", again.Restore().User.Role)
}

func TestVerifyFailureClearsEverything(t *testing.T) {
	verifier := &fakeVerifier{err: assert.AnError}
	store, path := newTestStore(t, verifier)
	require.NoError(t, store.Login("tok-1", api.User{ID: "u1", Role: "MEMBER"}))

	restored := New(path, verifier, log.Discard())
	restored.Restore()

	err := restored.Verify(context.Background())
	require.Error(t, err)

	// Token, user, and the file on disk all go together.
	snap := restored.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.Loading)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// clearingVerifier clears the store while the verify round-trip is in
// flight, the way the gateway's 401 hook can during a concurrent poll.
type clearingVerifier struct {
	store *Store
	user  *api.User
	err   error
}

func (v *clearingVerifier) VerifySession(ctx context.Context) (*api.User, error) {
	_ = v.store.Clear()
	return v.user, v.err
}

func TestVerifyDropsResultWhenClearedMidFlight(t *testing.T) {
	store, path := newTestStore(t, nil)
	require.NoError(t, store.Login("tok-1", api.User{ID: "u1", Name: "Asha", Role: "MEMBER"}))
	store.SetVerifier(&clearingVerifier{store: store, user: &api.User{ID: "u1", Name: "Asha", Role: "MEMBER"}})

	require.NoError(t, store.Verify(context.Background()))

	// The verified user belongs to a token that was cleared while the
	// request was in flight; applying it would leave a user without a
	// token. Both must stay gone, in memory and on disk.
	snap := store.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.Loading)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVerifyDropsFailureWhenClearedMidFlight(t *testing.T) {
	store, _ := newTestStore(t, nil)
	require.NoError(t, store.Login("tok-1", api.User{ID: "u1", Role: "MEMBER"}))
	store.SetVerifier(&clearingVerifier{store: store, err: assert.AnError})

	// The failure belongs to the stale token too; the session is already
	// cleared, so Verify has nothing left to report.
	require.NoError(t, store.Verify(context.Background()))
	assert.False(t, store.Snapshot().Authenticated())
}

// reloginVerifier replaces the session with fresh credentials while the
// verify round-trip for the old token is still in flight.
type reloginVerifier struct {
	store *Store
	stale *api.User
}

func (v *reloginVerifier) VerifySession(ctx context.Context) (*api.User, error) {
	if err := v.store.Login("tok-new", api.User{ID: "u2", Name: "Ravi", Role: "TREASURER"}); err != nil {
		return nil, err
	}
	return v.stale, nil
}

func TestVerifyDoesNotOverwriteNewerLogin(t *testing.T) {
	store, _ := newTestStore(t, nil)
	require.NoError(t, store.Login("tok-old", api.User{ID: "u1", Name: "Asha", Role: "MEMBER"}))
	store.SetVerifier(&reloginVerifier{store: store, stale: &api.User{ID: "u1", Name: "Asha", Role: "MEMBER"}})

	require.NoError(t, store.Verify(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, "tok-new", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ravi", snap.User.Name, "stale verify result must not clobber the fresh login")
}

func TestLoginPersistFailureLeavesStateUntouched(t *testing.T) {
	// A regular file where the session directory should be makes the
	// persist fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	store := New(filepath.Join(blocker, "session.json"), &fakeVerifier{}, log.Discard())

	err := store.Login("tok-1", api.User{ID: "u1", Role: "MEMBER"})
	require.Error(t, err)

	// The store must not claim a session disk does not have.
	snap := store.Snapshot()
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestLogoutIdempotent(t *testing.T) {
	store, path := newTestStore(t, &fakeVerifier{})
	require.NoError(t, store.Login("tok-1", api.User{ID: "u1", Role: "MEMBER"}))

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout(), "logging out twice must not fail")

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated())
	assert.Empty(t, snap.Token)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTokenSource(t *testing.T) {
	store, _ := newTestStore(t, &fakeVerifier{})
	assert.Empty(t, store.Token())

	require.NoError(t, store.Login("tok-9", api.User{ID: "u1", Role: "MEMBER"}))
	assert.Equal(t, "tok-9", store.Token())
}

func TestRestoreIgnoresCorruptFile(t *testing.T) {
	store, path := newTestStore(t, &fakeVerifier{})
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	snap := store.Restore()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Authenticated())
}
