package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/autorise/internal/config"
	domain "github.com/oshokin/autorise/internal/domain/alarm"
	pb "github.com/oshokin/autorise/internal/pb/v1"
)

// Repository defines persistence operations for the alarm set. The scheduler
// core keeps alarms in memory; a Repository is the external collaborator that
// rehydrates them at boot and records mutations best-effort.
type Repository interface {
	Load(ctx context.Context) ([]*domain.Alarm, error)
	Save(ctx context.Context, alarms []*domain.Alarm) error
}

// FileRepository persists the alarm set to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("alarms not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the alarm set from disk in insertion order.
func (r *FileRepository) Load(_ context.Context) ([]*domain.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read alarms file: %w", err)
	}

	var list pb.AlarmList
	if err = protojson.Unmarshal(contents, &list); err != nil {
		return nil, fmt.Errorf("decode alarms file: %w", err)
	}

	alarms := make([]*domain.Alarm, 0, len(list.GetAlarms()))
	for _, protoAlarm := range list.GetAlarms() {
		alarms = append(alarms, fromProto(protoAlarm))
	}

	return alarms, nil
}

// Save writes the alarm set to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, alarms []*domain.Alarm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := &pb.AlarmList{
		Alarms: make([]*pb.Alarm, 0, len(alarms)),
	}
	for _, a := range alarms {
		list.Alarms = append(list.Alarms, toProto(a))
	}

	marshalOptions := protojson.MarshalOptions{
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write alarms file: %w", err)
	}

	return nil
}

// fromProto converts a protobuf Alarm into the domain model.
func fromProto(protoAlarm *pb.Alarm) *domain.Alarm {
	var createdAt time.Time
	if ts := protoAlarm.GetCreatedAt(); ts != nil {
		createdAt = ts.AsTime()
	}

	return &domain.Alarm{
		ID:        protoAlarm.GetId(),
		Hour:      int(protoAlarm.GetHour()),
		Minute:    int(protoAlarm.GetMinute()),
		Label:     protoAlarm.GetLabel(),
		Enabled:   protoAlarm.GetEnabled(),
		Kind:      domain.Kind(protoAlarm.GetKind()),
		CreatedAt: createdAt,
	}
}

// toProto converts the domain Alarm model into its protobuf representation.
func toProto(a *domain.Alarm) *pb.Alarm {
	var createdAt *timestamppb.Timestamp
	if !a.CreatedAt.IsZero() {
		createdAt = timestamppb.New(a.CreatedAt)
	}

	return &pb.Alarm{
		Id:        a.ID,
		Hour:      int32(a.Hour),
		Minute:    int32(a.Minute),
		Label:     a.Label,
		Enabled:   a.Enabled,
		Kind:      string(a.Kind),
		CreatedAt: createdAt,
	}
}
