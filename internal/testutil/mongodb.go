//go:build integration

// Package testutil starts a throwaway MongoDB for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the server version the service is tested against.
const MongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// StartMongoDB starts a new MongoDB container.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	c, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: c, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

// RunWithMongoDB starts one container for the whole package, runs the tests and stops it.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(m))
//	}
func RunWithMongoDB(m *testing.M) int {
	ctx := context.Background()
	sharedOnce.Do(func() {
		shared, sharedErr = StartMongoDB(ctx)
	})
	if sharedErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, "mongodb container:", sharedErr)
		return 1
	}

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "warning: terminate mongodb container:", err)
	}
	return code
}

// MongoURI returns the URI of the package-wide container.
func MongoURI() string {
	if shared == nil {
		panic("testutil: RunWithMongoDB was not called from TestMain")
	}
	return shared.URI
}

// DatabaseName turns a test name into a unique, valid database name.
func DatabaseName(t *testing.T) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
