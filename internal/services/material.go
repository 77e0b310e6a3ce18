package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/collection"
	"github.com/nstuweb/campus-backend/internal/ids"
	"github.com/nstuweb/campus-backend/internal/linkage"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/repos"
	"github.com/nstuweb/campus-backend/internal/txn"
	"github.com/nstuweb/campus-backend/internal/types"
)

type CreateMaterialInput struct {
	Name      string
	ProfileID string
	Title     string
	Category  string
	Course    float64
	Subjects  []string
	Year      float64
	Rating    float64
}

type ResourceInput struct {
	Title  string
	Format string
	URL    string
	DateUp string
}

type ConspectInput struct {
	Text     string
	Category string
	Semester string
	Image    string
	Likes    string
}

type MaterialService interface {
	Create(ctx context.Context, in CreateMaterialInput) (*MutationResult, error)
	Get(ctx context.Context, shortid string) (*types.Material, error)
	List(ctx context.Context) ([]*types.Material, error)
	AddResource(ctx context.Context, name, materialID string, in ResourceInput) (*MutationResult, error)
	UpdateRating(ctx context.Context, name, materialID string, rating float64) (*MutationResult, error)
	ManageConspect(ctx context.Context, name, materialID, opCode string, in ConspectInput, collID string) (*MutationResult, error)
}

type materialService struct {
	log          *logger.Logger
	profileRepo  repos.ProfileRepo
	materialRepo repos.MaterialRepo
	gen          ids.Generator
	coordinator  txn.Coordinator
}

func NewMaterialService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	materialRepo repos.MaterialRepo,
	gen ids.Generator,
	coordinator txn.Coordinator,
) MaterialService {
	serviceLog := baseLog.With("service", "MaterialService")
	return &materialService{
		log:          serviceLog,
		profileRepo:  profileRepo,
		materialRepo: materialRepo,
		gen:          gen,
		coordinator:  coordinator,
	}
}

// Create persists the new material and the owner's linkage entry as one
// atomic unit. Both uniqueness guards run first: global title uniqueness
// on the materials collection, then the (kind, title) guard on the acting
// profile's components.
func (ms *materialService) Create(ctx context.Context, in CreateMaterialInput) (*MutationResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	profile, err := ms.profileRepo.GetByNameAndShortID(ctx, in.Name, in.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", in.Name)
	}

	existing, err := ms.materialRepo.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("load material: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("material %q already exists", in.Title)
	}
	if linkage.HasLinkage(profile, types.KindMaterial, in.Title) {
		return nil, apperr.Duplicate("profile already owns material %q", in.Title)
	}

	material := &types.Material{
		Doc:       types.Doc{ShortID: ms.gen.NextID()},
		Name:      in.Name,
		Title:     in.Title,
		Category:  in.Category,
		Course:    in.Course,
		Subjects:  in.Subjects,
		Year:      in.Year,
		Rating:    in.Rating,
		Resources: []types.Resource{},
		Conspects: []types.Conspect{},
	}
	linkage.AddLinkage(profile, types.Component{
		ShortID: material.ShortID,
		Title:   material.Title,
		Kind:    types.KindMaterial,
	})

	err = ms.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := ms.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return ms.materialRepo.Insert(txCtx, material)
	})
	if err != nil {
		return nil, err
	}

	ms.log.Info("material created", "shortid", material.ShortID, "title", material.Title)
	return &MutationResult{Message: MsgMaterialCreated, ShortID: material.ShortID}, nil
}

func (ms *materialService) Get(ctx context.Context, shortid string) (*types.Material, error) {
	material, err := ms.materialRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load material: %w", err)
	}
	if material == nil {
		return nil, apperr.NotFound("material %s does not exist", shortid)
	}
	return material, nil
}

func (ms *materialService) List(ctx context.Context) ([]*types.Material, error) {
	return ms.materialRepo.List(ctx)
}

func (ms *materialService) loadPair(ctx context.Context, name, materialID string) (*types.Material, error) {
	profile, err := ms.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return ms.Get(ctx, materialID)
}

func (ms *materialService) AddResource(ctx context.Context, name, materialID string, in ResourceInput) (*MutationResult, error) {
	material, err := ms.loadPair(ctx, name, materialID)
	if err != nil {
		return nil, err
	}

	entry := types.Resource{
		ShortID: ms.gen.NextID(),
		Name:    name,
		Title:   in.Title,
		Format:  in.Format,
		URL:     in.URL,
		DateUp:  in.DateUp,
	}
	material.Resources = collection.Append(material.Resources, entry)

	if err := ms.materialRepo.Replace(ctx, material); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgResourceAdded, ShortID: entry.ShortID}, nil
}

func (ms *materialService) UpdateRating(ctx context.Context, name, materialID string, rating float64) (*MutationResult, error) {
	material, err := ms.loadPair(ctx, name, materialID)
	if err != nil {
		return nil, err
	}

	material.Rating = rating
	if err := ms.materialRepo.Replace(ctx, material); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgMaterialRatingUpdated}, nil
}

func (ms *materialService) ManageConspect(ctx context.Context, name, materialID, opCode string, in ConspectInput, collID string) (*MutationResult, error) {
	material, err := ms.loadPair(ctx, name, materialID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpLike, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Conspect{
			ShortID:  ms.gen.NextID(),
			Name:     name,
			Text:     in.Text,
			Category: in.Category,
			Semester: in.Semester,
			Image:    in.Image,
			Likes:    in.Likes,
		}
		material.Conspects = collection.Append(material.Conspects, entry)
		result.Message = MsgConspectCreated
		result.ShortID = entry.ShortID
	case collection.OpLike:
		if !collection.Patch(material.Conspects, collID, func(c *types.Conspect) {
			c.Likes = in.Likes
		}) {
			return nil, apperr.NotFound("conspect %s does not exist", collID)
		}
		result.Message = MsgConspectLiked
	case collection.OpDelete:
		material.Conspects = collection.Remove(material.Conspects, collID)
		result.Message = MsgConspectDeleted
	}

	if err := ms.materialRepo.Replace(ctx, material); err != nil {
		return nil, err
	}
	return result, nil
}
