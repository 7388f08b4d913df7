package product

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/depot/pkg/redis"
)

// Products live under "<prefix>:{products}:<id>" as JSON and the title index
// is a hash at "<prefix>:{products}:titles". The hash tag keeps every key in
// one cluster slot so the scripts below stay atomic.
const redisKeyspace = "{products}"

// Script results.
const (
	scriptOK           = 1
	scriptNotFound     = 0
	scriptTitleTaken   = -1
	scriptDuplicatedID = -2
)

var createScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then return -2 end
if redis.call('HSETNX', KEYS[2], ARGV[2], ARGV[1]) == 0 then return -1 end
redis.call('SET', KEYS[1], ARGV[3])
return 1
`)

var updateScript = goredis.NewScript(`
local old = redis.call('GET', KEYS[1])
if not old then return 0 end
local owner = redis.call('HGET', KEYS[2], ARGV[2])
if owner and owner ~= ARGV[1] then return -1 end
local oldTitle = cjson.decode(old)['title']
if oldTitle ~= ARGV[2] then redis.call('HDEL', KEYS[2], oldTitle) end
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('SET', KEYS[1], ARGV[3])
return 1
`)

var deleteScript = goredis.NewScript(`
local old = redis.call('GET', KEYS[1])
if not old then return 0 end
redis.call('HDEL', KEYS[2], cjson.decode(old)['title'])
redis.call('DEL', KEYS[1])
return 1
`)

// RedisStore keeps products in Redis. Writes run as Lua scripts so the title
// index and the documents never disagree.
type RedisStore struct {
	client goredis.UniversalClient
	prefix string
}

func NewRedisStore(client goredis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) docKey(id string) string {
	return redis.Key(s.prefix, redisKeyspace, id)
}

func (s *RedisStore) titlesKey() string {
	return redis.Key(s.prefix, redisKeyspace, "titles")
}

func (s *RedisStore) FindByTitle(ctx context.Context, title string) (*Product, error) {
	id, err := s.client.HGet(ctx, s.titlesKey(), title).Result()
	if redis.IsNil(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.get(ctx, id.String())
}

func (s *RedisStore) get(ctx context.Context, id string) (*Product, error) {
	data, err := s.client.Get(ctx, s.docKey(id)).Bytes()
	if redis.IsNil(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RedisStore) List(ctx context.Context) ([]*Product, error) {
	index, err := s.client.HGetAll(ctx, s.titlesKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(index) == 0 {
		return []*Product{}, nil
	}

	titles := make([]string, 0, len(index))
	for title := range index {
		titles = append(titles, title)
	}
	slices.Sort(titles)

	keys := make([]string, len(titles))
	for i, title := range titles {
		keys[i] = s.docKey(index[title])
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*Product, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// deleted between HGETALL and MGET
			continue
		}
		var p Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, nil
}

func (s *RedisStore) Create(ctx context.Context, p *Product) error {
	return s.write(ctx, createScript, p)
}

func (s *RedisStore) Update(ctx context.Context, p *Product) error {
	return s.write(ctx, updateScript, p)
}

func (s *RedisStore) write(ctx context.Context, script *goredis.Script, p *Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	id := p.ID.String()
	res, err := script.Run(ctx, s.client, []string{s.docKey(id), s.titlesKey()}, id, p.Title, data).Int()
	if err != nil {
		return err
	}
	return scriptResult(res)
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := deleteScript.Run(ctx, s.client, []string{s.docKey(id.String()), s.titlesKey()}).Int()
	if err != nil {
		return err
	}
	return scriptResult(res)
}

func scriptResult(res int) error {
	switch res {
	case scriptOK:
		return nil
	case scriptNotFound:
		return ErrNotFound
	case scriptTitleTaken:
		return ErrDuplicateTitle
	case scriptDuplicatedID:
		return ErrDuplicateID
	default:
		return errors.New("unexpected redis script result")
	}
}
