package surreal

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"mini-blog/internal/domain/entity"
)

func TestRecordKey(t *testing.T) {
	tests := []struct {
		name    string
		rid     *models.RecordID
		want    entity.ID
		wantErr bool
	}{
		{name: "generated string key", rid: &models.RecordID{Table: "articles", ID: "k3x9q0v2m1z8w7"}, want: "k3x9q0v2m1z8w7"},
		{name: "nil", rid: nil, wantErr: true},
		{name: "numeric key", rid: &models.RecordID{Table: "articles", ID: uint64(7)}, wantErr: true},
		{name: "key with separator", rid: &models.RecordID{Table: "articles", ID: "a:b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recordKey(tt.rid)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstResult(t *testing.T) {
	assert.Nil(t, firstResult[recordRef](nil))
	assert.Nil(t, firstResult(&[]surrealdb.QueryResult[[]recordRef]{}))

	rows := []recordRef{{}, {}}
	res := &[]surrealdb.QueryResult[[]recordRef]{{Status: "OK", Result: rows}}
	assert.Len(t, firstResult(res), 2)
}

func TestUpdateQuery_TargetsTable(t *testing.T) {
	// A record-id target would create the record on 1.x servers.
	assert.True(t, strings.HasPrefix(updateQuery, "UPDATE type::table($tb) "))
	assert.Contains(t, updateQuery, "WHERE id = type::thing($tb, $id)")
}

func TestCollection_Vars(t *testing.T) {
	c := &collection[entity.Article]{table: "articles"}
	assert.Equal(t, map[string]any{"tb": "articles", "id": "abc"}, c.vars("abc"))
}

// TestStore_Integration runs against a live server when SURREALDB_URL is set,
// e.g. SURREALDB_URL=ws://localhost:8000 with root/root credentials.
func TestStore_Integration(t *testing.T) {
	url := os.Getenv("SURREALDB_URL")
	if url == "" {
		t.Skip("SURREALDB_URL not set")
	}
	ctx := context.Background()

	store := NewStore(Config{
		URL:       url,
		Namespace: "mini_blog_test",
		Database:  "store_test",
		Username:  envOr("SURREALDB_USER", "root"),
		Password:  envOr("SURREALDB_PASS", "root"),
	})
	require.NoError(t, store.Ping(ctx))

	sess, err := store.Open(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, sess.Close(ctx)) }()

	in := &entity.Article{Title: "t", Text: "x", CategoryID: "c", AuthorID: "a", Tags: []string{"z", "z"}}
	id, err := sess.Articles().Insert(ctx, in)
	require.NoError(t, err)

	got, err := sess.Articles().Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.Tags, got.Tags)

	matched, err := sess.Articles().Update(ctx, "does_not_exist", in)
	require.NoError(t, err)
	assert.False(t, matched)

	ghost, err := sess.Articles().Get(ctx, "does_not_exist")
	require.NoError(t, err)
	assert.Nil(t, ghost, "update must not create a missing record")

	matched, err = sess.Articles().Update(ctx, id, &entity.Article{Title: "t2", Text: "x", CategoryID: "c", AuthorID: "a", Tags: []string{}})
	require.NoError(t, err)
	assert.True(t, matched)

	deleted, err := sess.Articles().Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := sess.Articles().Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
