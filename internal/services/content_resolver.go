package services

import (
	"context"
	"strconv"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
)

// ResolveFunc loads one entity kind by object id and returns its minimal
// display shape. Errors mean "content unavailable"; they never reach feed
// readers.
type ResolveFunc func(ctx context.Context, objectID string) (*models.ResolvedContent, error)

// ContentResolver maps type tags to resolve functions. The registered set
// is fixed at startup; the resolver itself knows nothing about concrete
// entity shapes beyond models.ResolvedContent.
type ContentResolver struct {
	resolvers map[models.TypeTag]ResolveFunc
}

// NewContentResolver creates an empty resolver registry
func NewContentResolver() *ContentResolver {
	return &ContentResolver{resolvers: make(map[models.TypeTag]ResolveFunc)}
}

// Register binds a resolve function to a type tag
func (r *ContentResolver) Register(tag models.TypeTag, fn ResolveFunc) {
	r.resolvers[tag] = fn
}

// Known reports whether a tag has a registered resolver
func (r *ContentResolver) Known(tag models.TypeTag) bool {
	_, ok := r.resolvers[tag]
	return ok
}

// Resolve returns the referenced entity, or nil when the tag is unknown or
// the entity no longer exists. Resolution failure is non-fatal by contract.
func (r *ContentResolver) Resolve(ctx context.Context, ref models.ContentRef) *models.ResolvedContent {
	fn, ok := r.resolvers[ref.ContentType]
	if !ok {
		return nil
	}
	content, err := fn(ctx, ref.ObjectID)
	if err != nil {
		return nil
	}
	return content
}

func parseObjectID(objectID string) (uint, error) {
	id, err := strconv.ParseUint(objectID, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// RegisterDefaultResolvers wires the standard entity kinds into a resolver.
// Each registration declares the kind's display field and its owner, so
// activity addressing needs no knowledge of entity internals. A nil
// repository skips its kind.
func RegisterDefaultResolvers(
	r *ContentResolver,
	media repositories.MediaRepository,
	places repositories.PlaceRepository,
	profiles repositories.ProfileRepository,
	comments repositories.CommentRepository,
	users repositories.UserRepository,
) {
	if media != nil {
		r.Register(models.ContentTypeMedia, func(ctx context.Context, objectID string) (*models.ResolvedContent, error) {
			m, err := media.GetByID(ctx, objectID)
			if err != nil {
				return nil, err
			}
			return &models.ResolvedContent{
				Type:    models.ContentTypeMedia,
				ID:      m.ID.Hex(),
				Title:   m.DisplayTitle(),
				URL:     m.FileURL,
				OwnerID: m.UploadedByID,
			}, nil
		})
	}

	if places != nil {
		r.Register(models.ContentTypePlace, func(ctx context.Context, objectID string) (*models.ResolvedContent, error) {
			id, err := parseObjectID(objectID)
			if err != nil {
				return nil, err
			}
			p, err := places.GetByID(id)
			if err != nil {
				return nil, err
			}
			return &models.ResolvedContent{
				Type:    models.ContentTypePlace,
				ID:      objectID,
				Name:    p.Name,
				OwnerID: p.CreatedByID,
			}, nil
		})
	}

	if profiles != nil && users != nil {
		r.Register(models.ContentTypeProfile, func(ctx context.Context, objectID string) (*models.ResolvedContent, error) {
			id, err := parseObjectID(objectID)
			if err != nil {
				return nil, err
			}
			p, err := profiles.GetByID(id)
			if err != nil {
				return nil, err
			}
			content := &models.ResolvedContent{
				Type:    models.ContentTypeProfile,
				ID:      objectID,
				URL:     p.AvatarURL,
				OwnerID: p.UserID,
			}
			if u, err := users.GetUserByID(p.UserID); err == nil {
				content.Name = u.Username
			}
			return content, nil
		})
	}

	if comments != nil {
		r.Register(models.ContentTypeComment, func(ctx context.Context, objectID string) (*models.ResolvedContent, error) {
			id, err := parseObjectID(objectID)
			if err != nil {
				return nil, err
			}
			c, err := comments.GetByID(id)
			if err != nil {
				return nil, err
			}
			if c.IsDeleted {
				return nil, ErrNotFound
			}
			return &models.ResolvedContent{
				Type:    models.ContentTypeComment,
				ID:      objectID,
				Text:    c.Text,
				OwnerID: c.UserID,
			}, nil
		})
	}
}
