// Package kvstore is the persistence layer: named JSON documents on local disk,
// one file per logical key. Reads of missing or unreadable keys are recovered
// by the caller with a default value; writes surface their errors.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/repsmash/repsmash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidKey = errors.New("invalid key")

type Store interface {
	// Load unmarshals the value stored under key into dst and reports
	// whether a usable value was found. A missing or corrupt file is not
	// an error: the caller keeps its default value instead.
	Load(ctx context.Context, key string, dst any) (found bool, err error)
	// Save marshals val and writes it under key, replacing any previous value.
	Save(ctx context.Context, key string, val any) error
}

type FileStore struct {
	rootPath string
	mutex    sync.Mutex
}

func NewFileStore(rootPath string) (*FileStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create root path %s: %w", rootPath, err)
	}
	return &FileStore{rootPath: rootPath}, nil
}

func (fs *FileStore) Load(ctx context.Context, key string, dst any) (found bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "kvstore.load")
	span.SetAttributes(attribute.String("key", key))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validKey(key); err != nil {
		return false, err
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	data, err := os.ReadFile(fs.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// corrupt stored JSON - recovered with the caller's default
		log.Warnf("kvstore: corrupt value under [%s], falling back to default: %s", key, err)
		return false, nil
	}
	return true, nil
}

func (fs *FileStore) Save(ctx context.Context, key string, val any) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "kvstore.save")
	span.SetAttributes(attribute.String("key", key))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validKey(key); err != nil {
		return err
	}

	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	// write to a temp file first so a failed write never clobbers the old value
	tmpPath := fs.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, fs.keyPath(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}

	log.Tracef("kvstore: saved [%s], %d bytes", key, len(data))
	return nil
}

func (fs *FileStore) keyPath(key string) string {
	return path.Join(fs.rootPath, key+".json")
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
