/*
Package redisstore keeps decision trees in a redis DB, each one as its
JSON encoding under a key made of a prefix and the tree ID.
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/redis.v5"

	"github.com/pezwarinaan/id3/tree"
	jsontree "github.com/pezwarinaan/id3/tree/json"
)

// Error represents an error related with tree storage
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrTreeNotFound is the error returned when no tree is stored under an ID
const ErrTreeNotFound = Error("tree not found")

// Store is a tree store backed by a redis DB
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store on the given client that keys trees with the given prefix
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Create takes a context, the name of the feature a tree predicts and the
tree, stores it under a new random ID and returns the ID.
*/
func (rs *Store) Create(ctx context.Context, label string, t tree.Tree) (string, error) {
	data, err := encode(label, t)
	if err != nil {
		return "", fmt.Errorf("creating tree: %v", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id := uuid.NewString()
		ok, err := rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("creating tree in redis: %v", err)
		}
		if ok {
			return id, nil
		}
	}
}

// Store saves the tree under the given ID, replacing any tree stored there
func (rs *Store) Store(ctx context.Context, id, label string, t tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(id)
	data, err := encode(label, t)
	if err != nil {
		return fmt.Errorf("storing tree %q: %v", redisID, err)
	}
	if err = rs.rc.Set(redisID, data, 0).Err(); err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisID, err)
	}
	return nil
}

/*
Get returns the label and the tree stored under the given ID, or an
ErrTreeNotFound error if there is none.
*/
func (rs *Store) Get(ctx context.Context, id string) (string, tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(id)).Bytes()
	if err == redis.Nil {
		return "", nil, fmt.Errorf("retrieving tree %q: %w", id, ErrTreeNotFound)
	}
	if err != nil {
		return "", nil, fmt.Errorf("retrieving tree %q: %v", id, err)
	}
	label, t, err := jsontree.ReadJSONTree(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("retrieving tree %q: decoding: %v", id, err)
	}
	return label, t, nil
}

// Delete removes the tree stored under the given ID
func (rs *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisID := rs.keyFor(id)
	n, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisID, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting tree %q: %w", id, ErrTreeNotFound)
	}
	return nil
}

func (rs *Store) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}

func encode(label string, t tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := jsontree.WriteJSONTree(&buf, label, t); err != nil {
		return nil, fmt.Errorf("encoding tree: %v", err)
	}
	return buf.Bytes(), nil
}
