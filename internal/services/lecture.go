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

type CreateLectureInput struct {
	Name      string
	ProfileID string
	Title     string
	Category  string
	Status    string
	Duration  string
	URL       string
	Time      string
	DateUp    string
	Stream    string
	Card      string
}

type QuestionInput struct {
	Text   string
	Level  string
	Reply  string
	DateUp string
}

type DetailInput struct {
	Title    string
	Category string
	Image    string
	Rating   float64
}

type LectureService interface {
	Create(ctx context.Context, in CreateLectureInput) (*MutationResult, error)
	Get(ctx context.Context, shortid string) (*types.Lecture, error)
	List(ctx context.Context) ([]*types.Lecture, error)
	ManageQuestion(ctx context.Context, name, lectureID, opCode string, in QuestionInput, collID string) (*MutationResult, error)
	UpdateInformation(ctx context.Context, name, lectureID, stream, card string) (*MutationResult, error)
	ManageDetail(ctx context.Context, name, lectureID, opCode string, in DetailInput, collID string) (*MutationResult, error)
}

type lectureService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	lectureRepo repos.LectureRepo
	gen         ids.Generator
	coordinator txn.Coordinator
}

func NewLectureService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	lectureRepo repos.LectureRepo,
	gen ids.Generator,
	coordinator txn.Coordinator,
) LectureService {
	serviceLog := baseLog.With("service", "LectureService")
	return &lectureService{
		log:         serviceLog,
		profileRepo: profileRepo,
		lectureRepo: lectureRepo,
		gen:         gen,
		coordinator: coordinator,
	}
}

func (ls *lectureService) Create(ctx context.Context, in CreateLectureInput) (*MutationResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	profile, err := ls.profileRepo.GetByNameAndShortID(ctx, in.Name, in.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", in.Name)
	}

	existing, err := ls.lectureRepo.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, fmt.Errorf("load lecture: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("lecture %q already exists", in.Title)
	}
	if linkage.HasLinkage(profile, types.KindLecture, in.Title) {
		return nil, apperr.Duplicate("profile already owns lecture %q", in.Title)
	}

	lecture := &types.Lecture{
		Doc:       types.Doc{ShortID: ls.gen.NextID()},
		Name:      in.Name,
		Title:     in.Title,
		Category:  in.Category,
		Status:    in.Status,
		Duration:  in.Duration,
		URL:       in.URL,
		Time:      in.Time,
		DateUp:    in.DateUp,
		Stream:    in.Stream,
		Card:      in.Card,
		Questions: []types.Question{},
		Details:   []types.Detail{},
	}
	linkage.AddLinkage(profile, types.Component{
		ShortID: lecture.ShortID,
		Title:   lecture.Title,
		Kind:    types.KindLecture,
	})

	err = ls.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := ls.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return ls.lectureRepo.Insert(txCtx, lecture)
	})
	if err != nil {
		return nil, err
	}

	ls.log.Info("lecture created", "shortid", lecture.ShortID, "title", lecture.Title)
	return &MutationResult{Message: MsgLectureCreated, ShortID: lecture.ShortID}, nil
}

func (ls *lectureService) Get(ctx context.Context, shortid string) (*types.Lecture, error) {
	lecture, err := ls.lectureRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load lecture: %w", err)
	}
	if lecture == nil {
		return nil, apperr.NotFound("lecture %s does not exist", shortid)
	}
	return lecture, nil
}

func (ls *lectureService) List(ctx context.Context) ([]*types.Lecture, error) {
	return ls.lectureRepo.List(ctx)
}

func (ls *lectureService) loadPair(ctx context.Context, name, lectureID string) (*types.Lecture, error) {
	profile, err := ls.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return ls.Get(ctx, lectureID)
}

func (ls *lectureService) ManageQuestion(ctx context.Context, name, lectureID, opCode string, in QuestionInput, collID string) (*MutationResult, error) {
	lecture, err := ls.loadPair(ctx, name, lectureID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpReply, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Question{
			ShortID: ls.gen.NextID(),
			Name:    name,
			Text:    in.Text,
			Level:   in.Level,
			Reply:   in.Reply,
			DateUp:  in.DateUp,
		}
		lecture.Questions = collection.Append(lecture.Questions, entry)
		result.Message = MsgQuestionCreated
		result.ShortID = entry.ShortID
	case collection.OpReply:
		if !collection.Patch(lecture.Questions, collID, func(q *types.Question) {
			q.Reply = in.Reply
		}) {
			return nil, apperr.NotFound("question %s does not exist", collID)
		}
		result.Message = MsgQuestionReplied
	case collection.OpDelete:
		lecture.Questions = collection.Remove(lecture.Questions, collID)
		result.Message = MsgQuestionDeleted
	}

	if err := ls.lectureRepo.Replace(ctx, lecture); err != nil {
		return nil, err
	}
	return result, nil
}

func (ls *lectureService) UpdateInformation(ctx context.Context, name, lectureID, stream, card string) (*MutationResult, error) {
	lecture, err := ls.loadPair(ctx, name, lectureID)
	if err != nil {
		return nil, err
	}

	lecture.Stream = stream
	lecture.Card = card
	if err := ls.lectureRepo.Replace(ctx, lecture); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgLectureInfoUpdated}, nil
}

func (ls *lectureService) ManageDetail(ctx context.Context, name, lectureID, opCode string, in DetailInput, collID string) (*MutationResult, error) {
	lecture, err := ls.loadPair(ctx, name, lectureID)
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
		entry := types.Detail{
			ShortID:  ls.gen.NextID(),
			Name:     name,
			Title:    in.Title,
			Category: in.Category,
			Image:    in.Image,
			Rating:   in.Rating,
		}
		lecture.Details = collection.Append(lecture.Details, entry)
		result.Message = MsgDetailCreated
		result.ShortID = entry.ShortID
	case collection.OpRate:
		if !collection.Patch(lecture.Details, collID, func(d *types.Detail) {
			d.Rating = in.Rating
		}) {
			return nil, apperr.NotFound("detail %s does not exist", collID)
		}
		result.Message = MsgDetailRated
	case collection.OpDelete:
		lecture.Details = collection.Remove(lecture.Details, collID)
		result.Message = MsgDetailDeleted
	}

	if err := ls.lectureRepo.Replace(ctx, lecture); err != nil {
		return nil, err
	}
	return result, nil
}
