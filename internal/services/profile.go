package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/collection"
	"github.com/nstuweb/campus-backend/internal/ids"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/mailer"
	"github.com/nstuweb/campus-backend/internal/password"
	"github.com/nstuweb/campus-backend/internal/repos"
	"github.com/nstuweb/campus-backend/internal/types"
)

type RegisterProfileInput struct {
	Name      string
	Email     string
	Password  string
	Region    string
	Cords     types.Cord
	Status    string
	Points    float64
	Image     string
	Timestamp string
}

type AchievementInput struct {
	Title    string
	Category string
	Image    string
	DateUp   string
}

type ProjectInput struct {
	Title    string
	Category string
	Progress float64
	Image    string
	Likes    string
}

type ProfileService interface {
	Register(ctx context.Context, in RegisterProfileInput) (*types.ProfilePayload, error)
	Login(ctx context.Context, name, plainPassword, timestamp string) (*types.ProfilePayload, error)
	GetByShortID(ctx context.Context, shortid string) (*types.Profile, error)
	GetByName(ctx context.Context, name string) (*types.Profile, error)
	List(ctx context.Context) ([]*types.Profile, error)
	UpdatePersonalInfo(ctx context.Context, shortid, image string) (*MutationResult, error)
	UpdateGeoInfo(ctx context.Context, shortid, region string, cords types.Cord) (*MutationResult, error)
	UpdatePassword(ctx context.Context, shortid, currentPassword, newPassword string) (*MutationResult, error)
	ManageAchievement(ctx context.Context, shortid, opCode string, in AchievementInput, collID string) (*MutationResult, error)
	ManageProject(ctx context.Context, shortid, opCode string, in ProjectInput, collID string) (*MutationResult, error)
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	gen         ids.Generator
	hasher      password.Hasher
	mail        mailer.Mailer
}

func NewProfileService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	gen ids.Generator,
	hasher password.Hasher,
	mail mailer.Mailer,
) ProfileService {
	serviceLog := baseLog.With("service", "ProfileService")
	return &profileService{
		log:         serviceLog,
		profileRepo: profileRepo,
		gen:         gen,
		hasher:      hasher,
		mail:        mail,
	}
}

func (ps *profileService) Register(ctx context.Context, in RegisterProfileInput) (*types.ProfilePayload, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Password) == "" {
		return nil, apperr.Invalid("name and password are required")
	}

	existing, err := ps.profileRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("profile name %q is already taken", in.Name)
	}

	hashed, err := ps.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &types.Profile{
		Doc:          types.Doc{ShortID: ps.gen.NextID()},
		Name:         in.Name,
		Email:        in.Email,
		Password:     hashed,
		Region:       in.Region,
		Cords:        in.Cords,
		Status:       in.Status,
		Points:       in.Points,
		Image:        in.Image,
		Timestamp:    in.Timestamp,
		Achievements: []types.Achievement{},
		Projects:     []types.Project{},
		Components:   []types.Component{},
	}

	if err := ps.profileRepo.Insert(ctx, profile); err != nil {
		return nil, err
	}

	subject, body := mailer.RegistrationEmail(in.Name)
	if err := ps.mail.Send(ctx, mailer.Message{To: in.Email, Subject: subject, Body: body}); err != nil {
		ps.log.Warn("registration email failed", "name", in.Name, "error", err)
	}

	ps.log.Info("profile registered", "shortid", profile.ShortID, "name", profile.Name)
	return &types.ProfilePayload{ShortID: profile.ShortID, Name: profile.Name}, nil
}

func (ps *profileService) Login(ctx context.Context, name, plainPassword, timestamp string) (*types.ProfilePayload, error) {
	profile, err := ps.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	if !ps.hasher.Verify(plainPassword, profile.Password) {
		return nil, apperr.Invalid("wrong password")
	}

	profile.Timestamp = timestamp
	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return &types.ProfilePayload{ShortID: profile.ShortID, Name: profile.Name}, nil
}

func (ps *profileService) GetByShortID(ctx context.Context, shortid string) (*types.Profile, error) {
	profile, err := ps.profileRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %s does not exist", shortid)
	}
	return profile, nil
}

func (ps *profileService) GetByName(ctx context.Context, name string) (*types.Profile, error) {
	profile, err := ps.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return profile, nil
}

func (ps *profileService) List(ctx context.Context) ([]*types.Profile, error) {
	return ps.profileRepo.List(ctx)
}

func (ps *profileService) UpdatePersonalInfo(ctx context.Context, shortid, image string) (*MutationResult, error) {
	profile, err := ps.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, err
	}
	profile.Image = image
	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgPersonalInfoUpdated}, nil
}

func (ps *profileService) UpdateGeoInfo(ctx context.Context, shortid, region string, cords types.Cord) (*MutationResult, error) {
	profile, err := ps.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, err
	}
	profile.Region = region
	profile.Cords = cords
	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgGeoInfoUpdated}, nil
}

func (ps *profileService) UpdatePassword(ctx context.Context, shortid, currentPassword, newPassword string) (*MutationResult, error) {
	profile, err := ps.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, err
	}
	if !ps.hasher.Verify(currentPassword, profile.Password) {
		return nil, apperr.Invalid("current password does not match")
	}
	if strings.TrimSpace(newPassword) == "" {
		return nil, apperr.Invalid("new password is required")
	}
	hashed, err := ps.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	profile.Password = hashed
	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}

	subject, body := mailer.PasswordChangeEmail(profile.Name)
	if err := ps.mail.Send(ctx, mailer.Message{To: profile.Email, Subject: subject, Body: body}); err != nil {
		ps.log.Warn("password change email failed", "shortid", shortid, "error", err)
	}
	return &MutationResult{Message: MsgPasswordUpdated}, nil
}

func (ps *profileService) ManageAchievement(ctx context.Context, shortid, opCode string, in AchievementInput, collID string) (*MutationResult, error) {
	profile, err := ps.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Achievement{
			ShortID:  ps.gen.NextID(),
			Title:    in.Title,
			Category: in.Category,
			Image:    in.Image,
			DateUp:   in.DateUp,
		}
		profile.Achievements = collection.Append(profile.Achievements, entry)
		result.Message = MsgAchievementCreated
		result.ShortID = entry.ShortID
	case collection.OpDelete:
		profile.Achievements = collection.Remove(profile.Achievements, collID)
		result.Message = MsgAchievementDeleted
	}

	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return result, nil
}

func (ps *profileService) ManageProject(ctx context.Context, shortid, opCode string, in ProjectInput, collID string) (*MutationResult, error) {
	profile, err := ps.GetByShortID(ctx, shortid)
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
		entry := types.Project{
			ShortID:  ps.gen.NextID(),
			Title:    in.Title,
			Category: in.Category,
			Progress: in.Progress,
			Image:    in.Image,
			Likes:    in.Likes,
		}
		profile.Projects = collection.Append(profile.Projects, entry)
		result.Message = MsgProjectCreated
		result.ShortID = entry.ShortID
	case collection.OpUpdate:
		if !collection.Patch(profile.Projects, collID, func(p *types.Project) {
			p.Progress = in.Progress
			p.Image = in.Image
		}) {
			return nil, apperr.NotFound("project %s does not exist", collID)
		}
		result.Message = MsgProjectUpdated
	case collection.OpLike:
		if !collection.Patch(profile.Projects, collID, func(p *types.Project) {
			p.Likes = in.Likes
		}) {
			return nil, apperr.NotFound("project %s does not exist", collID)
		}
		result.Message = MsgProjectLiked
	case collection.OpDelete:
		profile.Projects = collection.Remove(profile.Projects, collID)
		result.Message = MsgProjectDeleted
	}

	if err := ps.profileRepo.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return result, nil
}
