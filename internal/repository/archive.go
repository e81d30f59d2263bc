package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/onlyupgames/onlyup-backend/internal/apperror"
	"github.com/onlyupgames/onlyup-backend/internal/entity"
)

const (
	recordKeyPrefix = "record:"
	recordIndexKey  = "records"
)

// ArchiveRepository stores the outcomes of finished games. Only results are
// archived; live game state never leaves the engine.
type ArchiveRepository interface {
	Save(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id string) (*entity.Record, error)
	ListIDs(ctx context.Context) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbArchive struct {
	client *redis.Client
}

func NewArchiveRepository(client *redis.Client) ArchiveRepository {
	return &dbArchive{
		client: client,
	}
}

func (that *dbArchive) Save(ctx context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	if err = that.client.Set(ctx, recordKeyPrefix+record.ID, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record: %w", err)
	}

	if err = that.client.SAdd(ctx, recordIndexKey, record.ID).Err(); err != nil {
		return fmt.Errorf("failed to index record: %w", err)
	}

	return nil
}

func (that *dbArchive) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	response, err := that.client.Get(ctx, recordKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record entity.Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

func (that *dbArchive) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := that.client.SMembers(ctx, recordIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return ids, nil
}

func (that *dbArchive) DeleteByID(ctx context.Context, id string) error {
	if err := that.client.Del(ctx, recordKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	if err := that.client.SRem(ctx, recordIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex record: %w", err)
	}

	return nil
}
