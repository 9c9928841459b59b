package repository

import (
	"fmt"
	"testing"
	"time"

	"go-blog/internal/model"
	"go-blog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListOrdering(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	author := testutil.CreateUser(t, conn, "author")

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	posts := []*model.Post{
		{Text: "oldest", AuthorID: author.ID, PubDate: base},
		{Text: "tie-first", AuthorID: author.ID, PubDate: base.Add(time.Hour)},
		{Text: "tie-second", AuthorID: author.ID, PubDate: base.Add(time.Hour)},
		{Text: "newest", AuthorID: author.ID, PubDate: base.Add(2 * time.Hour)},
	}
	for _, p := range posts {
		require.NoError(t, repo.Create(p))
	}

	listed, err := repo.List(PostFilter{}, 10, 0)
	require.NoError(t, err)

	var texts []string
	for _, p := range listed {
		texts = append(texts, p.Text)
	}
	assert.Equal(t, []string{"newest", "tie-second", "tie-first", "oldest"}, texts)
	assert.Equal(t, "author", listed[0].Author.Username, "author should be preloaded")
}

func TestPostRepository_CreateSetsPubDate(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	author := testutil.CreateUser(t, conn, "author")

	post := &model.Post{Text: "now", AuthorID: author.ID}
	require.NoError(t, repo.Create(post))
	assert.False(t, post.PubDate.IsZero())
}

func TestPostRepository_FilterByGroupAndAuthor(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	alice := testutil.CreateUser(t, conn, "alice")
	bob := testutil.CreateUser(t, conn, "bob")
	tech := testutil.CreateGroup(t, conn, "tech")

	for i := 0; i < 12; i++ {
		testutil.CreatePost(t, conn, alice, tech, fmt.Sprintf("tech %d", i))
	}
	testutil.CreatePost(t, conn, bob, nil, "bob ungrouped")

	total, err := repo.Count(PostFilter{GroupID: tech.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)

	second, err := repo.List(PostFilter{GroupID: tech.ID}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	byBob, err := repo.List(PostFilter{AuthorID: bob.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, byBob, 1)
	assert.Equal(t, "bob ungrouped", byBob[0].Text)
	assert.Nil(t, byBob[0].Group)
}

func TestPostRepository_FindByIDAndAuthor(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	alice := testutil.CreateUser(t, conn, "alice")
	testutil.CreateUser(t, conn, "bob")
	post := testutil.CreatePost(t, conn, alice, nil, "alice's post")

	found, err := repo.FindByIDAndAuthor(post.ID, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, post.ID, found.ID)

	wrongAuthor, err := repo.FindByIDAndAuthor(post.ID, "bob")
	assert.NoError(t, err)
	assert.Nil(t, wrongAuthor)

	unknownAuthor, err := repo.FindByIDAndAuthor(post.ID, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, unknownAuthor)
}

func TestPostRepository_UpdateOnlyGivenFields(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	alice := testutil.CreateUser(t, conn, "alice")
	group := testutil.CreateGroup(t, conn, "tech")
	post := testutil.CreatePost(t, conn, alice, group, "before")

	require.NoError(t, repo.Update(post, map[string]interface{}{"text": "after"}))

	reloaded, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", reloaded.Text)
	require.NotNil(t, reloaded.GroupID)
	assert.Equal(t, group.ID, *reloaded.GroupID)
}

func TestPostRepository_Feed(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewPostRepository(conn)
	follows := NewFollowRepository(conn)
	a := testutil.CreateUser(t, conn, "a")
	b := testutil.CreateUser(t, conn, "b")
	c := testutil.CreateUser(t, conn, "c")

	_, _, err := follows.CreateIfAbsent(a.ID, b.ID)
	require.NoError(t, err)
	post := testutil.CreatePost(t, conn, b, nil, "from b")
	testutil.CreatePost(t, conn, c, nil, "from c")

	feedA, err := repo.List(PostFilter{FollowerID: a.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, feedA, 1)
	assert.Equal(t, post.ID, feedA[0].ID)

	feedC, err := repo.List(PostFilter{FollowerID: c.ID}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, feedC)
}
