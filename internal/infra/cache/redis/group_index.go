package redis

import (
	"context"
	"fmt"
	"time"

	"crossing/config"
	"crossing/internal/domain/entity"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/repository"
	"crossing/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Keys outlive a crashed pass by at most this long.
const epochKeyTTL = 24 * time.Hour

// Optimistic retries when another ingest rewrote the membership hash.
const upsertMemberAttempts = 10

type groupIndex struct {
	client *goredis.Client
	prefix string
}

// NewGroupIndex is the constructor for the Redis-backed group index.
func NewGroupIndex(client *goredis.Client, cfg *config.Config) repository.GroupIndex {
	prefix := "crossing"
	if cfg != nil && cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &groupIndex{client: client, prefix: prefix}
}

func (g *groupIndex) epochKey(epochID int64) string {
	return fmt.Sprintf("%s:epoch:%d", g.prefix, epochID)
}

func (g *groupIndex) markersKey(epochID int64) string {
	return g.epochKey(epochID) + ":markers"
}

func (g *groupIndex) groupKey(epochID int64, groupID string) string {
	return g.epochKey(epochID) + ":group:" + groupID
}

func (g *groupIndex) membershipKey(epochID int64) string {
	return g.epochKey(epochID) + ":membership"
}

func (g *groupIndex) eventsKey(epochID int64) string {
	return g.epochKey(epochID) + ":events"
}

func (g *groupIndex) NearestGroup(ctx context.Context, epochID int64, at entity.Coordinates, radiusKm float64) (string, bool, error) {
	locations, err := g.client.GeoRadius(ctx, g.markersKey(epochID), at.Longitude, at.Latitude, &goredis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Count:  1,
		Sort:   "ASC",
	}).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return "", false, domainerrors.NewCacheExecuteError(err, "georadius markers")
	}

	if len(locations) == 0 {
		return "", false, nil
	}

	return locations[0].Name, true, nil
}

func (g *groupIndex) AddMarker(ctx context.Context, epochID int64, groupID string, at entity.Coordinates) error {
	key := g.markersKey(epochID)

	_, err := g.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.GeoAdd(ctx, key, &goredis.GeoLocation{
			Name:      groupID,
			Longitude: at.Longitude,
			Latitude:  at.Latitude,
		})
		pipe.Expire(ctx, key, epochKeyTTL)

		return nil
	})
	if err != nil {
		return domainerrors.NewCacheExecuteError(err, "geoadd marker")
	}

	return nil
}

// UpsertMember moves the user into groupID under WATCH on the membership
// hash, so concurrent ingests of one user leave it in a single group.
func (g *groupIndex) UpsertMember(ctx context.Context, epochID int64, groupID string, userID uuid.UUID, at entity.Coordinates) error {
	member := userID.String()
	membershipKey := g.membershipKey(epochID)
	groupKey := g.groupKey(epochID, groupID)

	move := func(tx *goredis.Tx) error {
		previous, err := tx.HGet(ctx, membershipKey, member).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			if previous != "" && previous != groupID {
				pipe.ZRem(ctx, g.groupKey(epochID, previous), member)
			}
			pipe.HSet(ctx, membershipKey, member, groupID)
			pipe.GeoAdd(ctx, groupKey, &goredis.GeoLocation{
				Name:      member,
				Longitude: at.Longitude,
				Latitude:  at.Latitude,
			})
			pipe.Expire(ctx, membershipKey, epochKeyTTL)
			pipe.Expire(ctx, groupKey, epochKeyTTL)

			return nil
		})

		return err
	}

	var err error
	for range upsertMemberAttempts {
		err = g.client.Watch(ctx, move, membershipKey)
		if !errors.Is(err, goredis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return domainerrors.NewCacheExecuteError(err, "upsert member")
	}

	return nil
}

func (g *groupIndex) Groups(ctx context.Context, epochID int64) ([]string, error) {
	groups, err := g.client.ZRange(ctx, g.markersKey(epochID), 0, -1).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, domainerrors.NewCacheExecuteError(err, "zrange markers")
	}

	return groups, nil
}

func (g *groupIndex) Members(ctx context.Context, epochID int64, groupID string) ([]uuid.UUID, error) {
	raw, err := g.client.ZRange(ctx, g.groupKey(epochID, groupID), 0, -1).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, domainerrors.NewCacheExecuteError(err, "zrange group")
	}

	members := make([]uuid.UUID, 0, len(raw))
	for _, m := range raw {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		members = append(members, id)
	}

	return members, nil
}

func (g *groupIndex) Neighbors(ctx context.Context, epochID int64, groupID string, userID uuid.UUID, radiusKm float64) ([]entity.GroupMember, error) {
	locations, err := g.client.GeoRadiusByMember(ctx, g.groupKey(epochID, groupID), userID.String(), &goredis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		Sort:      "ASC",
	}).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, domainerrors.NewCacheExecuteError(err, "georadiusbymember")
	}

	neighbors := make([]entity.GroupMember, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		neighbors = append(neighbors, entity.GroupMember{
			UserID:      id,
			Coordinates: entity.Coordinates{Longitude: loc.Longitude, Latitude: loc.Latitude},
		})
	}

	return neighbors, nil
}

func (g *groupIndex) PushEvents(ctx context.Context, epochID int64, events []entity.MatchEvent) error {
	if len(events) == 0 {
		return nil
	}

	payloads := make([]any, 0, len(events))
	for i := range events {
		b, err := msgpack.Marshal(&events[i])
		if err != nil {
			return errors.Wrap(err, "encode match event")
		}
		payloads = append(payloads, b)
	}

	key := g.eventsKey(epochID)
	_, err := g.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, key, payloads...)
		pipe.Expire(ctx, key, epochKeyTTL)

		return nil
	})
	if err != nil {
		return domainerrors.NewCacheExecuteError(err, "rpush events")
	}

	return nil
}

func (g *groupIndex) Events(ctx context.Context, epochID int64) ([]entity.MatchEvent, error) {
	raw, err := g.client.LRange(ctx, g.eventsKey(epochID), 0, -1).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, domainerrors.NewCacheExecuteError(err, "lrange events")
	}

	events := make([]entity.MatchEvent, 0, len(raw))
	for _, payload := range raw {
		var ev entity.MatchEvent
		if err := msgpack.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, errors.Wrap(err, "decode match event")
		}
		events = append(events, ev)
	}

	return events, nil
}

func (g *groupIndex) ClearEvents(ctx context.Context, epochID int64) error {
	if err := g.client.Del(ctx, g.eventsKey(epochID)).Err(); err != nil {
		return domainerrors.NewCacheExecuteError(err, "del events")
	}

	return nil
}

func (g *groupIndex) Purge(ctx context.Context, epochID int64) error {
	groups, err := g.Groups(ctx, epochID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(groups)+3)
	for _, groupID := range groups {
		keys = append(keys, g.groupKey(epochID, groupID))
	}
	keys = append(keys, g.markersKey(epochID), g.membershipKey(epochID), g.eventsKey(epochID))

	if err := g.client.Del(ctx, keys...).Err(); err != nil {
		return domainerrors.NewCacheExecuteError(err, "del epoch keys")
	}

	return nil
}
