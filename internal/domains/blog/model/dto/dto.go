package dto

import (
	"resort/internal/domains/blog/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateBlogRequest struct {
	Title      string   `json:"title"       validate:"required,min=3,max=200"`
	Slug       string   `json:"slug"        validate:"omitempty,max=210,slug"`
	Excerpt    string   `json:"excerpt"     validate:"omitempty,max=500"`
	Content    string   `json:"content"     validate:"required"`
	CoverImage string   `json:"cover_image" validate:"omitempty,url"`
	Tags       []string `json:"tags"        validate:"omitempty,max=10,dive,required,max=30"`
	Published  bool     `json:"published"`
}

func (c *CreateBlogRequest) ToModel(user string) model.Blog {
	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Title)
	}

	blog := model.Blog{
		ID:         uuid.NewString(),
		Title:      c.Title,
		Slug:       slug,
		Excerpt:    c.Excerpt,
		Content:    c.Content,
		CoverImage: c.CoverImage,
		Tags:       pq.StringArray(c.Tags),
		Published:  c.Published,
		Metadata:   gModel.NewMetadata(user),
	}

	if c.Published {
		now := timezone.Now()
		blog.PublishedAt = &now
	}

	return blog
}

type UpdateBlogRequest struct {
	Title      string         `db:"title"       json:"title"       validate:"omitempty,min=3,max=200"`
	Slug       string         `db:"slug"        json:"slug"        validate:"omitempty,max=210,slug"`
	Excerpt    string         `db:"excerpt"     json:"excerpt"     validate:"omitempty,max=500"`
	Content    string         `db:"content"     json:"content"     validate:"omitempty"`
	CoverImage string         `db:"cover_image" json:"cover_image" validate:"omitempty,url"`
	Tags       pq.StringArray `db:"tags"        json:"tags"        swaggertype:"array,string" validate:"omitempty,max=10,dive,required,max=30"`
	Published  *bool          `db:"published"   json:"published"   validate:"omitempty"`
}

type BlogResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"cover_image"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	PublishedAt string   `json:"published_at,omitempty"`
	gDto.Metadata
}

func (r *BlogResponse) FromModel(model model.Blog) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.CoverImage = model.CoverImage
	r.Tags = model.Tags
	r.Published = model.Published
	r.Metadata.FromModel(model.Metadata)

	if r.Tags == nil {
		r.Tags = []string{}
	}

	if model.PublishedAt != nil {
		r.PublishedAt = timezone.Format(*model.PublishedAt, constant.DateFormat)
	}
}

type GetBlogsResponse = gDto.Page[BlogResponse]

func FromModels(models []model.Blog, totalData, limit int) GetBlogsResponse {
	items := make([]BlogResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}
