package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogs/internal/apperr"
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestCreatePostDefaultsAndSanitises(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")

	input := postInput("  Hello World  ", `<p>hi</p><script>alert(1)</script>`)
	input.Tags = []string{"go", " web ", "go"}
	input.TagsSet = true
	post, err := env.content.CreatePost(env.ctx, alice, input, nil)
	require.NoError(t, err)

	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, db.PostStatusPublished, post.Status)
	assert.NotContains(t, post.Content, "script")
	assert.Equal(t, []string{"go", "web"}, post.TagNames())
	require.NotNil(t, post.Author)
	assert.Equal(t, "Alice", post.Author.Name)
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")

	_, err := env.content.CreatePost(env.ctx, alice, postInput("", "body"), nil)
	requireKind(t, err, apperr.Invalid)

	input := postInput("Title", "body")
	input.Status = strPtr("archived")
	_, err = env.content.CreatePost(env.ctx, alice, input, nil)
	requireKind(t, err, apperr.Invalid)

	_, err = env.content.CreatePost(env.ctx, nil, postInput("Title", "body"), nil)
	requireKind(t, err, apperr.Unauthenticated)

	_, err = env.content.CreatePost(env.ctx, alice, postInput("Title", "body"), &Upload{Filename: "a.txt", Data: []byte("plain text")})
	requireKind(t, err, apperr.Invalid)
	assert.Equal(t, db.UserRoleReader, env.reload(t, alice.ID).Role)
}

func TestAuthorPromotionLeavesAdminsAlone(t *testing.T) {
	env := newTestEnv(t)
	admin := env.makeAdmin(t, "Root", "root@x.com")

	_, err := env.content.CreatePost(env.ctx, admin, postInput("Admin post", "body"), nil)
	require.NoError(t, err)
	assert.Equal(t, db.UserRoleAdmin, env.reload(t, admin.ID).Role)
}

func TestUpdatePostOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")
	bob, _ := env.register(t, "Bob", "b@x.com")
	admin := env.makeAdmin(t, "Root", "root@x.com")

	post, err := env.content.CreatePost(env.ctx, alice, postInput("Mine", "body"), nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		caller *db.User
		kind   apperr.Kind
		ok     bool
	}{
		{"owner", alice, 0, true},
		{"admin", admin, 0, true},
		{"other user", bob, apperr.Forbidden, false},
		{"anonymous", nil, apperr.Forbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := env.content.UpdatePost(env.ctx, tt.caller, post.ID, dto.PostInput{Content: strPtr("edited by " + tt.name)}, nil)
			if !tt.ok {
				requireKind(t, err, tt.kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "edited by "+tt.name, updated.Content)
			assert.Equal(t, "Mine", updated.Title)
		})
	}

	_, err = env.content.UpdatePost(env.ctx, alice, 9999, dto.PostInput{Content: strPtr("x")}, nil)
	requireKind(t, err, apperr.NotFound)
}

func TestUpdatePostKeepsTagsUnlessSet(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")

	input := postInput("Tagged", "body")
	input.Tags = []string{"a", "b"}
	input.TagsSet = true
	post, err := env.content.CreatePost(env.ctx, alice, input, nil)
	require.NoError(t, err)

	post, err = env.content.UpdatePost(env.ctx, alice, post.ID, dto.PostInput{Title: strPtr("Renamed")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, post.TagNames())
	assert.Equal(t, "renamed", post.Slug)

	post, err = env.content.UpdatePost(env.ctx, alice, post.ID, dto.PostInput{TagsSet: true}, nil)
	require.NoError(t, err)
	assert.Empty(t, post.TagNames())
}

func TestPostImageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")

	post, err := env.content.CreatePost(env.ctx, alice, postInput("Pic", "body"), &Upload{Filename: "a.png", Data: pngBytes})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(post.Image, "/files/posts/"), post.Image)
	first := filepath.Join(env.storeDir, strings.TrimPrefix(post.Image, "/files/"))
	assert.FileExists(t, first)

	post, err = env.content.UpdatePost(env.ctx, alice, post.ID, dto.PostInput{}, &Upload{Filename: "b.png", Data: pngBytes})
	require.NoError(t, err)
	second := filepath.Join(env.storeDir, strings.TrimPrefix(post.Image, "/files/"))
	assert.FileExists(t, second)
	assert.NotEqual(t, first, second)
	_, statErr := os.Stat(first)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, env.content.DeletePost(env.ctx, alice, post.ID))
	_, statErr = os.Stat(second)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDraftVisibility(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")
	bob, _ := env.register(t, "Bob", "b@x.com")
	admin := env.makeAdmin(t, "Root", "root@x.com")

	draftInput := postInput("Secret", "body")
	draftInput.Status = strPtr(db.PostStatusDraft)
	draft, err := env.content.CreatePost(env.ctx, alice, draftInput, nil)
	require.NoError(t, err)
	_, err = env.content.CreatePost(env.ctx, alice, postInput("Public", "body"), nil)
	require.NoError(t, err)

	_, err = env.content.GetPost(env.ctx, nil, draft.ID)
	requireKind(t, err, apperr.NotFound)
	_, err = env.content.GetPost(env.ctx, bob, draft.ID)
	requireKind(t, err, apperr.NotFound)
	_, err = env.content.GetPost(env.ctx, alice, draft.ID)
	assert.NoError(t, err)
	_, err = env.content.GetPost(env.ctx, admin, draft.ID)
	assert.NoError(t, err)

	posts, meta, err := env.content.ListPosts(env.ctx, nil, dto.PostQuery{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Public", posts[0].Title)
	assert.Equal(t, int64(1), meta.Total)

	posts, _, err = env.content.ListPosts(env.ctx, nil, dto.PostQuery{Status: db.PostStatusDraft})
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, _, err = env.content.ListPosts(env.ctx, bob, dto.PostQuery{Status: db.PostStatusDraft})
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, _, err = env.content.ListPosts(env.ctx, alice, dto.PostQuery{Status: db.PostStatusDraft})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	drafts, _, err := env.content.ListDrafts(env.ctx, alice, common.BaseParams{})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, draft.ID, drafts[0].ID)

	_, _, err = env.content.ListPosts(env.ctx, nil, dto.PostQuery{Status: "bogus"})
	requireKind(t, err, apperr.Invalid)

	_, err = env.content.CreateComment(env.ctx, bob, draft.ID, "sneaky")
	requireKind(t, err, apperr.NotFound)
}

func TestListUserPostsRequiresOwnerOrAdmin(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")
	bob, _ := env.register(t, "Bob", "b@x.com")
	admin := env.makeAdmin(t, "Root", "root@x.com")

	for _, title := range []string{"one", "two"} {
		_, err := env.content.CreatePost(env.ctx, alice, postInput(title, "body"), nil)
		require.NoError(t, err)
	}

	posts, _, err := env.content.ListUserPosts(env.ctx, alice, alice.ID, dto.PostQuery{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, _, err = env.content.ListUserPosts(env.ctx, admin, alice.ID, dto.PostQuery{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	_, _, err = env.content.ListUserPosts(env.ctx, bob, alice.ID, dto.PostQuery{})
	requireKind(t, err, apperr.Forbidden)
}

func TestCommentLifecycleAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")
	bob, _ := env.register(t, "Bob", "b@x.com")
	carol, _ := env.register(t, "Carol", "c@x.com")
	admin := env.makeAdmin(t, "Root", "root@x.com")

	post, err := env.content.CreatePost(env.ctx, alice, postInput("Post", "body"), nil)
	require.NoError(t, err)

	comment, err := env.content.CreateComment(env.ctx, bob, post.ID, "nice post")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, comment.UserID)

	_, err = env.content.CreateComment(env.ctx, bob, post.ID, "   ")
	requireKind(t, err, apperr.Invalid)
	_, err = env.content.CreateComment(env.ctx, bob, 9999, "lost")
	requireKind(t, err, apperr.NotFound)

	_, err = env.content.UpdateComment(env.ctx, carol, comment.ID, "hijack")
	requireKind(t, err, apperr.Forbidden)
	_, err = env.content.UpdateComment(env.ctx, alice, comment.ID, "post owner is not comment owner")
	requireKind(t, err, apperr.Forbidden)

	updated, err := env.content.UpdateComment(env.ctx, bob, comment.ID, "really nice post")
	require.NoError(t, err)
	assert.Equal(t, "really nice post", updated.Content)

	updated, err = env.content.UpdateComment(env.ctx, admin, comment.ID, "moderated")
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Content)

	comments, err := env.content.ListComments(env.ctx, nil, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	requireKind(t, env.content.DeleteComment(env.ctx, carol, comment.ID), apperr.Forbidden)
	require.NoError(t, env.content.DeleteComment(env.ctx, bob, comment.ID))
	requireKind(t, env.content.DeleteComment(env.ctx, bob, comment.ID), apperr.NotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.register(t, "Alice", "a@x.com")
	bob, _ := env.register(t, "Bob", "b@x.com")

	post, err := env.content.CreatePost(env.ctx, alice, postInput("Post", "body"), nil)
	require.NoError(t, err)
	_, err = env.content.CreateComment(env.ctx, bob, post.ID, "hi")
	require.NoError(t, err)

	requireKind(t, env.content.DeletePost(env.ctx, bob, post.ID), apperr.Forbidden)
	require.NoError(t, env.content.DeletePost(env.ctx, alice, post.ID))

	_, err = env.content.GetPost(env.ctx, alice, post.ID)
	requireKind(t, err, apperr.NotFound)
	_, err = env.content.ListComments(env.ctx, alice, post.ID)
	requireKind(t, err, apperr.NotFound)
}
