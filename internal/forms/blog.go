// Package forms holds the ephemeral draft state of the editor screens and
// the client-side validation that keeps bad input off the network.
package forms

import (
	"errors"
	"fmt"

	"blogctl/internal/api"
	"blogctl/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BlogForm is the draft of a post being created or edited. Pending images
// live on the form until the owning screen is abandoned or they are
// uploaded and promoted into Images on the payload.
type BlogForm struct {
	Title    string            `validate:"required,min=3,max=200"`
	Slug     string            `validate:"omitempty,max=200"`
	Excerpt  string            `validate:"max=500"`
	Content  string            `validate:"required,min=10"`
	Category string            `validate:"omitempty"`
	Tags     []string          `validate:"-"`
	Status   models.BlogStatus `validate:"required,oneof=draft published"`
	Featured bool              `validate:"-"`

	Pending []*models.PendingImage `validate:"-"`
	Images  []models.BlogImage     `validate:"-"`
}

// NewBlogForm starts an empty draft.
func NewBlogForm() *BlogForm {
	return &BlogForm{Status: models.StatusDraft}
}

// FromBlog pre-fills a draft from an existing post, for the edit screen.
func FromBlog(b models.Blog) *BlogForm {
	f := &BlogForm{
		Title:    b.Title,
		Slug:     b.Slug,
		Excerpt:  b.Excerpt,
		Content:  b.Content,
		Status:   b.Status,
		Featured: b.Featured,
		Images:   b.Images,
	}
	if b.Category != nil {
		f.Category = b.Category.ID
	}
	for _, tag := range b.Tags {
		f.Tags = append(f.Tags, tag.ID)
	}
	return f
}

// Validate checks the draft and returns a user-facing message for the first
// violated rule. Validation failures never reach the network.
func (f *BlogForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Title" && fe.Tag() == "required":
		return errors.New("title is required")
	case fe.Field() == "Title" && fe.Tag() == "min":
		return errors.New("title must be at least 3 characters")
	case fe.Field() == "Title" && fe.Tag() == "max":
		return errors.New("title must be at most 200 characters")
	case fe.Field() == "Content" && fe.Tag() == "required":
		return errors.New("content is required")
	case fe.Field() == "Content" && fe.Tag() == "min":
		return errors.New("content must be at least 10 characters")
	case fe.Field() == "Excerpt":
		return errors.New("excerpt must be at most 500 characters")
	case fe.Field() == "Status":
		return errors.New("status must be draft or published")
	default:
		return fmt.Errorf("invalid %s", fe.Field())
	}
}

// StageImage adds a local file to the pending set.
func (f *BlogForm) StageImage(path, altText, caption string) (*models.PendingImage, error) {
	img, err := models.NewPendingImage(path)
	if err != nil {
		return nil, err
	}
	img.AltText = altText
	img.Caption = caption
	f.Pending = append(f.Pending, img)
	return img, nil
}

// RemoveImage drops a pending entry by its id.
func (f *BlogForm) RemoveImage(id string) bool {
	for i, img := range f.Pending {
		if img.ID == id {
			f.Pending = append(f.Pending[:i], f.Pending[i+1:]...)
			return true
		}
	}
	return false
}

// PromoteUploaded appends the server-side image records returned by a
// successful upload and clears the pending set.
func (f *BlogForm) PromoteUploaded(uploaded []models.BlogImage) {
	f.Images = append(f.Images, uploaded...)
	f.Pending = nil
}

// Payload converts the draft into the create/update request body.
func (f *BlogForm) Payload() api.BlogPayload {
	return api.BlogPayload{
		Title:    f.Title,
		Slug:     f.Slug,
		Excerpt:  f.Excerpt,
		Content:  f.Content,
		Category: f.Category,
		Tags:     f.Tags,
		Images:   f.Images,
		Status:   f.Status,
		Featured: f.Featured,
	}
}
