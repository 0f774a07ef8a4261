package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-backend/internal/domain/entity"
	"github.com/artifyhq/artify-backend/internal/infrastructure/memstore"
)

func newProjectFixture(t *testing.T) (*ProjectService, int64, int64) {
	t.Helper()
	users := memstore.NewUserStore()
	alice := &entity.User{Username: "alice", Email: "a@x.com", Password: "hash"}
	bob := &entity.User{Username: "bob", Email: "b@x.com", Password: "hash"}
	require.NoError(t, users.Create(alice))
	require.NoError(t, users.Create(bob))
	return NewProjectService(memstore.NewProjectStore(users), nil), alice.ID, bob.ID
}

func TestNormalizePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absent", "", "{}"},
		{"null", "null", "{}"},
		{"empty string", `""`, "{}"},
		{"zero", `0`, "{}"},
		{"false", `false`, "{}"},
		{"string kept verbatim", `"{\"x\":1}"`, `{"x":1}`},
		{"object compacted", "{\n  \"x\": 1\n}", `{"x":1}`},
		{"array", `[1, 2]`, `[1,2]`},
		{"number", `42`, `42`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizePayload(json.RawMessage(tc.raw))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestProjectCreateAndGet(t *testing.T) {
	t.Parallel()

	svc, alice, _ := newProjectFixture(t)
	sum, err := svc.Create(alice, "Campaign1", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)
	require.Equal(t, int64(1), sum.ID)
	require.Equal(t, "Campaign1", sum.Name)

	detail, err := svc.Get(sum.ID, alice)
	require.NoError(t, err)
	require.Equal(t, `{"x":1}`, detail.Data)

	_, err = svc.Create(alice, "", nil)
	require.ErrorIs(t, err, ErrProjectNameRequired)
}

func TestProjectOwnershipAfterExistence(t *testing.T) {
	t.Parallel()

	svc, alice, bob := newProjectFixture(t)
	sum, err := svc.Create(alice, "Campaign1", nil)
	require.NoError(t, err)

	// existing project, foreign caller: access denied
	_, err = svc.Get(sum.ID, bob)
	require.ErrorIs(t, err, ErrNotProjectOwner)
	_, err = svc.Update(sum.ID, bob, UpdateInput{Name: "stolen"})
	require.ErrorIs(t, err, ErrNotProjectOwner)
	_, err = svc.Delete(sum.ID, bob)
	require.ErrorIs(t, err, ErrNotProjectOwner)

	// missing project: not found wins, even for a foreign caller
	_, err = svc.Get(999, bob)
	require.ErrorIs(t, err, ErrProjectNotFound)
	_, err = svc.Update(999, bob, UpdateInput{Name: "x"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectUpdateSkipsEmptyFields(t *testing.T) {
	t.Parallel()

	svc, alice, _ := newProjectFixture(t)
	sum, err := svc.Create(alice, "orig", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)

	// empty name does not clear the stored name
	got, err := svc.Update(sum.ID, alice, UpdateInput{Name: "", Data: json.RawMessage(`{"x":2}`)})
	require.NoError(t, err)
	require.Equal(t, "orig", got.Name)

	detail, err := svc.Get(sum.ID, alice)
	require.NoError(t, err)
	require.Equal(t, `{"x":2}`, detail.Data)

	// falsy data values are skipped, not stored
	_, err = svc.Update(sum.ID, alice, UpdateInput{Name: "renamed", Data: json.RawMessage(`null`)})
	require.NoError(t, err)
	for _, falsy := range []string{`""`, `0`, `false`} {
		_, err = svc.Update(sum.ID, alice, UpdateInput{Data: json.RawMessage(falsy)})
		require.NoError(t, err)
	}

	detail, err = svc.Get(sum.ID, alice)
	require.NoError(t, err)
	require.Equal(t, "renamed", detail.Name)
	require.Equal(t, `{"x":2}`, detail.Data)
}

func TestProjectDeleteIdempotent(t *testing.T) {
	t.Parallel()

	svc, alice, _ := newProjectFixture(t)
	sum, err := svc.Create(alice, "doomed", nil)
	require.NoError(t, err)

	deleted, err := svc.Delete(sum.ID, alice)
	require.NoError(t, err)
	require.True(t, deleted)

	// second delete is a successful no-op, not an error
	deleted, err = svc.Delete(sum.ID, alice)
	require.NoError(t, err)
	require.False(t, deleted)
}
