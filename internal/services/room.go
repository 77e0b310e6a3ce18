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

type CreateRoomInput struct {
	Name      string
	ProfileID string
	Title     string
	Faculty   string
	Dormitory string
	Num       float64
	Weekday   string
	Time      string
	Cords     types.Cord
	Role      string
}

type TaskInput struct {
	Text     string
	Category string
	Deadline string
	Image    string
}

type RoomService interface {
	Create(ctx context.Context, in CreateRoomInput) (*MutationResult, error)
	Get(ctx context.Context, shortid string) (*types.Room, error)
	List(ctx context.Context) ([]*types.Room, error)
	ManageStatus(ctx context.Context, name, roomID, opCode, role string) (*MutationResult, error)
	UpdateInformation(ctx context.Context, name, roomID, weekday, timeOfDay string) (*MutationResult, error)
	ManageTask(ctx context.Context, name, roomID, opCode string, in TaskInput, collID string) (*MutationResult, error)
}

type roomService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	roomRepo    repos.RoomRepo
	gen         ids.Generator
	coordinator txn.Coordinator
}

func NewRoomService(
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	roomRepo repos.RoomRepo,
	gen ids.Generator,
	coordinator txn.Coordinator,
) RoomService {
	serviceLog := baseLog.With("service", "RoomService")
	return &roomService{
		log:         serviceLog,
		profileRepo: profileRepo,
		roomRepo:    roomRepo,
		gen:         gen,
		coordinator: coordinator,
	}
}

// Create seeds the members list with the creator under the given role and
// commits the room together with the creator's linkage entry. Room
// uniqueness is keyed by dormitory and number, not by title.
func (rs *roomService) Create(ctx context.Context, in CreateRoomInput) (*MutationResult, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Dormitory) == "" {
		return nil, apperr.Invalid("title and dormitory are required")
	}

	profile, err := rs.profileRepo.GetByNameAndShortID(ctx, in.Name, in.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", in.Name)
	}

	existing, err := rs.roomRepo.GetByDormitoryAndNum(ctx, in.Dormitory, in.Num)
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("room %s/%v already exists", in.Dormitory, in.Num)
	}
	if linkage.HasLinkage(profile, types.KindRoom, in.Title) {
		return nil, apperr.Duplicate("profile already owns room %q", in.Title)
	}

	room := &types.Room{
		Doc:       types.Doc{ShortID: rs.gen.NextID()},
		Name:      in.Name,
		Title:     in.Title,
		Faculty:   in.Faculty,
		Dormitory: in.Dormitory,
		Num:       in.Num,
		Weekday:   in.Weekday,
		Time:      in.Time,
		Cords:     in.Cords,
		Members: []types.Member{{
			ShortID: profile.ShortID,
			Name:    in.Name,
			Role:    in.Role,
		}},
		Tasks: []types.Task{},
	}
	linkage.AddLinkage(profile, types.Component{
		ShortID: room.ShortID,
		Title:   room.Title,
		Kind:    types.KindRoom,
	})

	err = rs.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := rs.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return rs.roomRepo.Insert(txCtx, room)
	})
	if err != nil {
		return nil, err
	}

	rs.log.Info("room created", "shortid", room.ShortID, "dormitory", room.Dormitory, "num", room.Num)
	return &MutationResult{Message: MsgRoomCreated, ShortID: room.ShortID}, nil
}

func (rs *roomService) Get(ctx context.Context, shortid string) (*types.Room, error) {
	room, err := rs.roomRepo.GetByShortID(ctx, shortid)
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}
	if room == nil {
		return nil, apperr.NotFound("room %s does not exist", shortid)
	}
	return room, nil
}

func (rs *roomService) List(ctx context.Context) ([]*types.Room, error) {
	return rs.roomRepo.List(ctx)
}

// ManageStatus changes the profile's membership in a room. All three
// branches pair the room write with the profile write inside one
// transaction: join and leave touch both documents, and update keeps the
// same commit path so membership writes always go through the coordinator.
func (rs *roomService) ManageStatus(ctx context.Context, name, roomID, opCode, role string) (*MutationResult, error) {
	profile, err := rs.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	room, err := rs.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpJoin, collection.OpUpdate, collection.OpLeave)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpJoin:
		// A profile holds at most one member entry per room. The leave and
		// role-update paths match by profile shortid, so a second entry
		// would make both ambiguous.
		if collection.Contains(room.Members, profile.ShortID) {
			return nil, apperr.Duplicate("profile %q is already a member of room %s", name, roomID)
		}
		linkage.AddLinkage(profile, types.Component{
			ShortID: room.ShortID,
			Title:   room.Title,
			Kind:    types.KindRoom,
		})
		room.Members = collection.Append(room.Members, types.Member{
			ShortID: profile.ShortID,
			Name:    name,
			Role:    role,
		})
		result.Message = MsgRoomJoined
	case collection.OpUpdate:
		if !collection.Patch(room.Members, profile.ShortID, func(m *types.Member) {
			m.Role = role
		}) {
			return nil, apperr.NotFound("profile %q is not a member of room %s", name, roomID)
		}
		result.Message = MsgRoomRoleUpdated
	case collection.OpLeave:
		linkage.RemoveLinkage(profile, room.ShortID)
		room.Members = collection.Remove(room.Members, profile.ShortID)
		result.Message = MsgRoomLeft
	}

	err = rs.coordinator.Run(ctx, func(txCtx context.Context) error {
		if err := rs.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		return rs.roomRepo.Replace(txCtx, room)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (rs *roomService) loadPair(ctx context.Context, name, roomID string) (*types.Room, error) {
	profile, err := rs.profileRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile %q does not exist", name)
	}
	return rs.Get(ctx, roomID)
}

func (rs *roomService) UpdateInformation(ctx context.Context, name, roomID, weekday, timeOfDay string) (*MutationResult, error) {
	room, err := rs.loadPair(ctx, name, roomID)
	if err != nil {
		return nil, err
	}

	room.Weekday = weekday
	room.Time = timeOfDay
	if err := rs.roomRepo.Replace(ctx, room); err != nil {
		return nil, err
	}
	return &MutationResult{Message: MsgRoomInfoUpdated}, nil
}

func (rs *roomService) ManageTask(ctx context.Context, name, roomID, opCode string, in TaskInput, collID string) (*MutationResult, error) {
	room, err := rs.loadPair(ctx, name, roomID)
	if err != nil {
		return nil, err
	}

	op, err := collection.ParseOp(opCode, collection.OpCreate, collection.OpUpdate, collection.OpDelete)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{}
	switch op {
	case collection.OpCreate:
		entry := types.Task{
			ShortID:  rs.gen.NextID(),
			Name:     name,
			Text:     in.Text,
			Category: in.Category,
			Deadline: in.Deadline,
			Image:    in.Image,
		}
		room.Tasks = collection.Append(room.Tasks, entry)
		result.Message = MsgTaskCreated
		result.ShortID = entry.ShortID
	case collection.OpUpdate:
		if !collection.Patch(room.Tasks, collID, func(t *types.Task) {
			t.Deadline = in.Deadline
			t.Image = in.Image
		}) {
			return nil, apperr.NotFound("task %s does not exist", collID)
		}
		result.Message = MsgTaskUpdated
	case collection.OpDelete:
		room.Tasks = collection.Remove(room.Tasks, collID)
		result.Message = MsgTaskDeleted
	}

	if err := rs.roomRepo.Replace(ctx, room); err != nil {
		return nil, err
	}
	return result, nil
}
