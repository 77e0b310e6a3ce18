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

type CreateAreaInput struct {
	Name      string
	ProfileID string
	Title     string
	Category  string
	Century   string
	Region    string
	Cords     types.Cord
	Faculty   string
}

type LocationInput struct {
	Title    string
	Category string
	Term     string
	Cords    types.Cord
	Stage    string
	Image    string
	Likes    string
}

type FactInput struct {
	Text    string
	Level   string
	IsTruth bool
	DateUp  string
}

type AreaService interface {
	Create(ctx context.Context, in CreateAreaInput) (*MutationResult, error)
	Get(ctx context.Context, shortid string) (*types.Area, error)
	List(ctx context.Context) ([]*types.Area, error)
	ManageLocation(ctx context.Context, name, areaID, opCode string, in LocationInput, collID string) (*MutationResult, error)
	UpdateFaculty(ctx context.Context, name, areaID, faculty string) (*MutationResult, error)
	OfferFact(ctx context.Context, name, areaID string, in FactInput) (*MutationResult, error)
}

type areaService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	areaRepo    repos.AreaRepo
	gen         ids.Generator
	coordinator txn.Coordinator
}

func NewAreaService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	areaRepo repos.AreaRepo,
	gen ids.Generator,
	coordinator txn.Coordinator,
) AreaService {
	serviceLog := baseLog.With("service", "AreaService")
	return &areaService{
		log:         serviceLog,
		profileRepo: profileRepo,
		areaRepo:    areaRepo,
		gen:         gen,
		coordinator: coordinator,
	}
}

func (as *areaService) Create(ctx context.Context, in CreateAreaInput) (*MutationResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	profile, err := as.profileRepo.GetByNameAndShortID(ctx, in.Name, in.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", in.Name)
	}

	existing, err := as.areaRepo.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("load area: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("area %q already exists", in.Title)
	}
	if linkage.HasLinkage(profile, types.KindArea, in.Title) {
		return nil, apperr.Duplicate("profile already owns area %q", in.Title)
	}

	area := &types.Area{
		Doc:       types.Doc{ShortID: as.gen.NextID()},
		Name:      in.Name,
		Title:     in.Title,
		Category:  in.Category,
		Century:   in.Century,
		Region:    in.Region,
		Cords:     in.Cords,
		Faculty:   in.Faculty,
		Locations: []types.Location{},
		Facts:     []types.Fact{},
	}
	linkage.AddLinkage(profile, types.Component{
		ShortID: area.ShortID,
		Title:   area.Title,
		Kind:    types.KindArea,
	})

	err = as.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := as.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return as.areaRepo.Insert(txCtx, area)
	})
	if err != nil {
		return nil, err
	}

	as.log.Info("area created", "shortid", area.ShortID, "title", area.Title)
	return &MutationResult{Message: MsgAreaCreated, ShortID: area.ShortID}, nil
}

func (as *areaService) Get(ctx context.Context, shortid string) (*types.Area, error) {
	area, err := as.areaRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load area: %w", err)
	}
	if area == nil {
		return nil, apperr.NotFound("area %s does not exist", shortid)
	}
	return area, nil
}

func (as *areaService) List(ctx context.Context) ([]*types.Area, error) {
	return as.areaRepo.List(ctx)
}

func (as *areaService) loadPair(ctx context.Context, name, areaID string) (*types.Area, error) {
	profile, err := as.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return as.Get(ctx, areaID)
}

func (as *areaService) ManageLocation(ctx context.Context, name, areaID, opCode string, in LocationInput, collID string) (*MutationResult, error) {
	area, err := as.loadPair(ctx, name, areaID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpUpdate, collection.OpLike, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Location{
			ShortID:  as.gen.NextID(),
			Name:     name,
			Title:    in.Title,
			Category: in.Category,
			Term:     in.Term,
			Cords:    in.Cords,
			Stage:    in.Stage,
			Image:    in.Image,
			Likes:    in.Likes,
		}
		area.Locations = collection.Append(area.Locations, entry)
		result.Message = MsgLocationCreated
		result.ShortID = entry.ShortID
	case collection.OpUpdate:
		if !collection.Patch(area.Locations, collID, func(l *types.Location) {
			l.Stage = in.Stage
			l.Image = in.Image
		}) {
			return nil, apperr.NotFound("location %s does not exist", collID)
		}
		result.Message = MsgLocationUpdated
	case collection.OpLike:
		if !collection.Patch(area.Locations, collID, func(l *types.Location) {
			l.Likes = in.Likes
		}) {
			return nil, apperr.NotFound("location %s does not exist", collID)
		}
		result.Message = MsgLocationLiked
	case collection.OpDelete:
		area.Locations = collection.Remove(area.Locations, collID)
		result.Message = MsgLocationDeleted
	}

	if err := as.areaRepo.Replace(ctx, area); err != nil {
		return nil, err
	}
	return result, nil
}

func (as *areaService) UpdateFaculty(ctx context.Context, name, areaID, faculty string) (*MutationResult, error) {
	area, err := as.loadPair(ctx, name, areaID)
	if err != nil {
		return nil, err
	}

	area.Faculty = faculty
	if err := as.areaRepo.Replace(ctx, area); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgAreaFacultyUpdated}, nil
}

func (as *areaService) OfferFact(ctx context.Context, name, areaID string, in FactInput) (*MutationResult, error) {
	area, err := as.loadPair(ctx, name, areaID)
	if err != nil {
		return nil, err
	}

	entry := types.Fact{
		ShortID: as.gen.NextID(),
		Name:    name,
		Text:    in.Text,
		Level:   in.Level,
		IsTruth: in.IsTruth,
		DateUp:  in.DateUp,
	}
	area.Facts = collection.Append(area.Facts, entry)

	if err := as.areaRepo.Replace(ctx, area); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgFactOffered, ShortID: entry.ShortID}, nil
}
