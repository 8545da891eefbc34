package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- ScyllaDB configuration ---
type ScyllaKeyspaceConfig struct {
	Hosts       []string
	Keyspace    string
	Username    string
	Password    string
	Timeout     time.Duration
	NumConns    int
	Consistency gocql.Consistency
}

type ScyllaManager struct {
	sessions map[string]*gocql.Session // keyspace → session
	configs  map[string]ScyllaKeyspaceConfig
	mu       sync.Mutex
}

// Clients groups every external connection the handlers need. Built once in
// main and passed down explicitly; nothing reads these through package state.
type Clients struct {
	Scylla  *ScyllaManager
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect initializes ScyllaDB (multi-keyspace), Redis, Elasticsearch and MinIO.
func Connect(ctx context.Context) (*Clients, error) {
	c := &Clients{}

	sm, err := initScylla()
	if err != nil {
		return nil, fmt.Errorf("scylla init failed: %w", err)
	}
	c.Scylla = sm

	rdb, err := connectRedis(ctx)
	if err != nil {
		return nil, err
	}
	c.Redis = rdb

	c.Elastic = connectElastic()

	mc, err := connectMinIO(ctx)
	if err != nil {
		return nil, err
	}
	c.MinIO = mc

	log.Println("✅ All datastores connected")
	return c, nil
}

// Close shuts down every Scylla session and the Redis client.
func (c *Clients) Close() {
	if c.Scylla != nil {
		c.Scylla.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}

// =============================================
// SCYLLA DB (multi-keyspace with per-role auth)
// =============================================

const (
	KeyspaceCatalog = "catalog"
	KeyspaceUsers   = "users"
	KeyspaceLeads   = "leads"
)

func initScylla() (*ScyllaManager, error) {
	sm := &ScyllaManager{
		sessions: make(map[string]*gocql.Session),
		configs:  loadScyllaConfigs(),
	}

	for name := range sm.configs {
		if _, err := sm.Session(name); err != nil {
			return nil, fmt.Errorf("keyspace %s: %w", name, err)
		}
	}

	// Tables are created out of band via scripts/scylla_init.cql; automatic
	// schema creation is skipped to avoid permission surprises.
	return sm, nil
}

func loadScyllaConfigs() map[string]ScyllaKeyspaceConfig {
	configs := make(map[string]ScyllaKeyspaceConfig)

	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	timeout := 5 * time.Second
	numConns := 10
	consistency := gocql.Quorum

	for _, role := range []struct {
		name   string
		envKey string
	}{
		{KeyspaceCatalog, "SCYLLA_KS_CATALOG"},
		{KeyspaceUsers, "SCYLLA_KS_USERS"},
		{KeyspaceLeads, "SCYLLA_KS_LEADS"},
	} {
		ks := os.Getenv(role.envKey + "_KEYSPACE")
		if ks == "" {
			continue
		}
		configs[role.name] = ScyllaKeyspaceConfig{
			Hosts:       hosts,
			Keyspace:    ks,
			Username:    os.Getenv(role.envKey + "_ROLE"),
			Password:    os.Getenv(role.envKey + "_PASSWORD"),
			Timeout:     timeout,
			NumConns:    numConns,
			Consistency: consistency,
		}
	}

	return configs
}

func createScyllaCluster(config ScyllaKeyspaceConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.Hosts...)
	cluster.Keyspace = config.Keyspace
	cluster.Consistency = config.Consistency
	cluster.Timeout = config.Timeout
	cluster.NumConns = config.NumConns
	cluster.ReconnectInterval = 1 * time.Second
	if config.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	return cluster
}

// Session returns (creating if needed) the session for a logical keyspace
// name (catalog, users, leads).
func (sm *ScyllaManager) Session(name string) (*gocql.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	config, exists := sm.configs[name]
	if !exists {
		return nil, fmt.Errorf("keyspace '%s' not configured", name)
	}

	if session, ok := sm.sessions[name]; ok {
		if err := session.Query("SELECT now() FROM system.local").Exec(); err == nil {
			return session, nil
		}
		session.Close()
	}

	session, err := createScyllaCluster(config).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("session creation for %s: %w", name, err)
	}

	sm.sessions[name] = session
	log.Printf("✅ New ScyllaDB session for keyspace '%s' (role: %s)", config.Keyspace, config.Username)
	return session, nil
}

func (sm *ScyllaManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for name, session := range sm.sessions {
		session.Close()
		log.Printf("🔌 ScyllaDB session closed for keyspace '%s'", name)
	}
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Println("✅ Connected to Redis")
	return rdb, nil
}

// =============================================
// ELASTICSEARCH
// =============================================
func connectElastic() *elasticsearch.Client {
	cfg := elasticsearch.Config{
		Addresses: []string{os.Getenv("ELASTIC_URL")},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Elasticsearch client not available:", err)
		return nil
	}

	res, err := client.Info()
	if err != nil {
		// Search degrades to the in-memory fallback; not fatal.
		log.Println("⚠️ Elasticsearch unreachable, search falls back to scan:", err)
		return nil
	}
	defer res.Body.Close()

	log.Println("✅ Connected to Elasticsearch")
	return client
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) (*minio.Client, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connection failed: %w", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check failed: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio bucket creation failed: %w", err)
		}
		log.Println("🪣 Bucket created:", bucketName)
	} else {
		log.Println("🪣 MinIO bucket already present:", bucketName)
	}

	log.Println("✅ Connected to MinIO:", endpoint)
	return client, nil
}
