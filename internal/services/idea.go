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

type CreateIdeaInput struct {
	Name      string
	ProfileID string
	Title     string
	Concept   string
	Category  string
	URL       string
	Roles     []string
	Stage     string
	Need      float64
}

type ThoughtInput struct {
	Title    string
	Category string
	Rating   float64
	Image    string
}

type QuoteInput struct {
	Text    string
	Status  string
	Faculty string
	DateUp  string
}

type IdeaService interface {
	Create(ctx context.Context, in CreateIdeaInput) (*MutationResult, error)
	Get(ctx context.Context, shortid string) (*types.Idea, error)
	List(ctx context.Context) ([]*types.Idea, error)
	ManageThought(ctx context.Context, name, ideaID, opCode string, in ThoughtInput, collID string) (*MutationResult, error)
	UpdateInformation(ctx context.Context, name, ideaID, stage string, need float64) (*MutationResult, error)
	PublishQuote(ctx context.Context, name, ideaID string, in QuoteInput) (*MutationResult, error)
}

type ideaService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	ideaRepo    repos.IdeaRepo
	gen         ids.Generator
	coordinator txn.Coordinator
}

func NewIdeaService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	ideaRepo repos.IdeaRepo,
	gen ids.Generator,
	coordinator txn.Coordinator,
) IdeaService {
	serviceLog := baseLog.With("service", "IdeaService")
	return &ideaService{
		log:         serviceLog,
		profileRepo: profileRepo,
		ideaRepo:    ideaRepo,
		gen:         gen,
		coordinator: coordinator,
	}
}

func (is *ideaService) Create(ctx context.Context, in CreateIdeaInput) (*MutationResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	profile, err := is.profileRepo.GetByNameAndShortID(ctx, in.Name, in.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", in.Name)
	}

	existing, err := is.ideaRepo.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("load idea: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("idea %q already exists", in.Title)
	}
	if linkage.HasLinkage(profile, types.KindIdea, in.Title) {
		return nil, apperr.Duplicate("profile already owns idea %q", in.Title)
	}

	idea := &types.Idea{
		Doc:      types.Doc{ShortID: is.gen.NextID()},
		Name:     in.Name,
		Title:    in.Title,
		Concept:  in.Concept,
		Category: in.Category,
		URL:      in.URL,
		Roles:    in.Roles,
		Stage:    in.Stage,
		Need:     in.Need,
		Thoughts: []types.Thought{},
		Quotes:   []types.Quote{},
	}
	linkage.AddLinkage(profile, types.Component{
		ShortID: idea.ShortID,
		Title:   idea.Title,
		Kind:    types.KindIdea,
	})

	err = is.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := is.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return is.ideaRepo.Insert(txCtx, idea)
	})
	if err != nil {
		return nil, err
	}

	is.log.Info("idea created", "shortid", idea.ShortID, "title", idea.Title)
	return &MutationResult{Message: MsgIdeaCreated, ShortID: idea.ShortID}, nil
}

func (is *ideaService) Get(ctx context.Context, shortid string) (*types.Idea, error) {
	idea, err := is.ideaRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load idea: %w", err)
	}
	if idea == nil {
		return nil, apperr.NotFound("idea %s does not exist", shortid)
	}
	return idea, nil
}

func (is *ideaService) List(ctx context.Context) ([]*types.Idea, error) {
	return is.ideaRepo.List(ctx)
}

func (is *ideaService) loadPair(ctx context.Context, name, ideaID string) (*types.Idea, error) {
	profile, err := is.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return is.Get(ctx, ideaID)
}

func (is *ideaService) ManageThought(ctx context.Context, name, ideaID, opCode string, in ThoughtInput, collID string) (*MutationResult, error) {
	idea, err := is.loadPair(ctx, name, ideaID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpRate, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Thought{
			ShortID:  is.gen.NextID(),
			Name:     name,
			Title:    in.Title,
			Category: in.Category,
			Rating:   in.Rating,
			Image:    in.Image,
		}
		idea.Thoughts = collection.Append(idea.Thoughts, entry)
		result.Message = MsgThoughtCreated
		result.ShortID = entry.ShortID
	case collection.OpRate:
		if !collection.Patch(idea.Thoughts, collID, func(t *types.Thought) {
			t.Rating = in.Rating
		}) {
			return nil, apperr.NotFound("thought %s does not exist", collID)
		}
		result.Message = MsgThoughtRated
	case collection.OpDelete:
		idea.Thoughts = collection.Remove(idea.Thoughts, collID)
		result.Message = MsgThoughtDeleted
	}

	if err := is.ideaRepo.Replace(ctx, idea); err != nil {
		return nil, err
	}
	return result, nil
}

func (is *ideaService) UpdateInformation(ctx context.Context, name, ideaID, stage string, need float64) (*MutationResult, error) {
	idea, err := is.loadPair(ctx, name, ideaID)
	if err != nil {
		return nil, err
	}

	idea.Stage = stage
	idea.Need = need
	if err := is.ideaRepo.Replace(ctx, idea); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgIdeaInfoUpdated}, nil
}

func (is *ideaService) PublishQuote(ctx context.Context, name, ideaID string, in QuoteInput) (*MutationResult, error) {
	idea, err := is.loadPair(ctx, name, ideaID)
	if err != nil {
		return nil, err
	}

	entry := types.Quote{
		ShortID: is.gen.NextID(),
		Name:    name,
		Text:    in.Text,
		Status:  in.Status,
		Faculty: in.Faculty,
		DateUp:  in.DateUp,
	}
	idea.Quotes = collection.Append(idea.Quotes, entry)

	if err := is.ideaRepo.Replace(ctx, idea); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgQuotePublished, ShortID: entry.ShortID}, nil
}
