package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"karthika_back_end/internal/models"
)

// TTL matches the anonymous session lifetime; every write refreshes it.
const TTL = 30 * 24 * time.Hour

const maxTxRetries = 5

// ErrNotFound is returned by mutations that require an existing cart.
var ErrNotFound = errors.New("cart not found")

// Owner identifies whose cart a request touches: an authenticated user id or
// an anonymous session token. The user id wins when both are present.
type Owner struct {
	UserID    string
	SessionID string
}

func (o Owner) Valid() bool {
	return o.UserID != "" || o.SessionID != ""
}

// Key is both the Redis key of the cart document and its pub/sub channel.
func (o Owner) Key() string {
	if o.UserID != "" {
		return "cart:user:" + o.UserID
	}
	return "cart:session:" + o.SessionID
}

// Store keeps one JSON cart document per owner in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get is side-effect free: a missing cart yields a zero-value shape and
// found=false, and nothing is written.
func (s *Store) Get(ctx context.Context, owner Owner) (*models.Cart, bool, error) {
	data, err := s.rdb.Get(ctx, owner.Key()).Result()
	if errors.Is(err, redis.Nil) {
		return emptyCart(owner), false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

// Mutate runs fn against the owner's cart inside a WATCH/MULTI transaction,
// so two concurrent writers cannot lose an update: the losing EXEC fails and
// the whole read-modify-write is retried. Totals are recomputed immediately
// before the write, never taken from fn's input.
func (s *Store) Mutate(ctx context.Context, owner Owner, mustExist bool, fn func(*models.Cart) error) (*models.Cart, error) {
	key := owner.Key()
	var result *models.Cart

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()

		var c *models.Cart
		switch {
		case errors.Is(err, redis.Nil):
			if mustExist {
				return ErrNotFound
			}
			c = emptyCart(owner)
			c.CreatedAt = time.Now()
		case err != nil:
			return err
		default:
			c = &models.Cart{}
			if err := json.Unmarshal([]byte(data), c); err != nil {
				return err
			}
		}

		if err := fn(c); err != nil {
			return err
		}

		c.Recompute()
		c.UpdatedAt = time.Now()

		payload, err := json.Marshal(c)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, TTL)
			pipe.Publish(ctx, key, "updated")
			return nil
		})
		if err != nil {
			return err
		}

		result = c
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.rdb.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue // another writer beat us, retry the whole cycle
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, redis.TxFailedErr
}

// Subscribe returns the pub/sub subscription for an owner's cart channel.
func (s *Store) Subscribe(ctx context.Context, owner Owner) *redis.PubSub {
	return s.rdb.Subscribe(ctx, owner.Key())
}

func emptyCart(owner Owner) *models.Cart {
	c := &models.Cart{Items: []models.CartItem{}}
	if owner.UserID != "" {
		c.UserID = owner.UserID
	} else {
		c.SessionID = owner.SessionID
	}
	return c
}
