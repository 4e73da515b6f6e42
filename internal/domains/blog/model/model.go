package model

import (
	"time"

	"resort/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "blogs"
	EntityName = "blog"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldContent     = "content"
	FieldCoverImage  = "cover_image"
	FieldTags        = "tags"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

var SortableFields = []string{FieldTitle, FieldPublishedAt, "created_at", "modified_at"}

// Blog is an article of the marketing site. PublishedAt is set the first
// time the article is published and kept when it is unpublished.
type Blog struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Excerpt     string         `db:"excerpt"`
	Content     string         `db:"content"`
	CoverImage  string         `db:"cover_image"`
	Tags        pq.StringArray `db:"tags"`
	Published   bool           `db:"published"`
	PublishedAt *time.Time     `db:"published_at"`
	model.Metadata
}
