package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func postFixture(id string, createdAt time.Time) *models.Post {
	return &models.Post{
		ID:        id,
		AuthorID:  "u1",
		Content:   "hello campus",
		CreatedAt: createdAt,
	}
}

func TestPostListNewestFirst(t *testing.T) {
	s := NewPostStore()
	at := func(h int) time.Time { return time.Date(2024, time.May, 15, h, 0, 0, 0, time.UTC) }
	s.Add(postFixture("p1", at(9)))
	s.Add(postFixture("p2", at(11)))
	s.Add(postFixture("p3", at(10)))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "p2", list[0].ID)
	assert.Equal(t, "p3", list[1].ID)
	assert.Equal(t, "p1", list[2].ID)
}

func TestPostLikeIncrementsCounter(t *testing.T) {
	s := NewPostStore()
	s.Add(postFixture("p1", time.Now()))

	post, err := s.Like("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount)

	post, err = s.Like("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, post.LikeCount)
}

func TestPostAddCommentIncrementsCounter(t *testing.T) {
	s := NewPostStore()
	s.Add(postFixture("p1", time.Now()))

	post, err := s.AddComment("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.CommentCount)
	assert.Zero(t, post.LikeCount)

	post, err = s.AddComment("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, post.CommentCount)
}

func TestPostCountersUnknownPost(t *testing.T) {
	s := NewPostStore()

	_, err := s.Like("missing")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)

	_, err = s.AddComment("missing")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
