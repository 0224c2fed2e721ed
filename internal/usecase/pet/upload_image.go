package pet

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/tasmimahana/cse470/internal/domain/access"
	domain "github.com/tasmimahana/cse470/internal/domain/pet"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/imaging"
	"github.com/tasmimahana/cse470/internal/models"
)

// ObjectStore persists a public object and returns its URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type UploadPetImage struct {
	repo  domain.Repository
	store ObjectStore
}

func NewUploadPetImage(repo domain.Repository, store ObjectStore) *UploadPetImage {
	return &UploadPetImage{repo: repo, store: store}
}

// Execute converts the upload to webp, stores it and points the pet's
// imageUrl at it.
func (uc *UploadPetImage) Execute(
	ctx context.Context,
	actor access.Principal,
	id string,
	r io.Reader,
) (*models.Pet, error) {

	p, err := loadPet(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(actor, p, "update this pet"); err != nil {
		return nil, err
	}

	body, err := imaging.ToWebP(r, imaging.DefaultMaxDimension, imaging.DefaultQuality)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.ErrBadRequest("invalid_image", "Please upload a jpeg, png, gif or webp image")
		}
		return nil, err
	}

	key := "pets/" + p.ID + "/" + uuid.NewString() + ".webp"
	url, err := uc.store.Put(ctx, key, body, imaging.ContentType)
	if err != nil {
		return nil, err
	}

	p.ImageURL = url
	if err := uc.repo.UpdatePet(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
