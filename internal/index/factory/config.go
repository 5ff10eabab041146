package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/index/es"
	"github.com/diagscope/diagscope/internal/index/pg"
	"github.com/diagscope/diagscope/pkg/stringsutil"
)

type FileConfig struct {
	Path string
}

type SourceConfig struct {
	index.Type
	File *FileConfig
	Pg   *pg.PoolConfig
	Es   *es.ClientConfig
}

// LoadEnv reads the index source configuration: INDEX_SOURCE picks the
// backend, the backend-specific variables fill in the rest.
func LoadEnv() (*SourceConfig, error) {
	sourceType := index.Type(os.Getenv("INDEX_SOURCE"))
	if sourceType == "" {
		slog.Error("INDEX_SOURCE environment variable is not set")
		return nil, fmt.Errorf("INDEX_SOURCE environment variable is not set")
	}
	if sourceType != index.File && sourceType != index.PG && sourceType != index.ES {
		slog.Error("Invalid INDEX_SOURCE environment variable value", "value", sourceType)
		return nil, fmt.Errorf(
			"invalid INDEX_SOURCE environment variable value: %s, expected one of %v",
			sourceType,
			[]index.Type{index.File, index.PG, index.ES})
	}

	cfg := &SourceConfig{Type: sourceType}

	switch sourceType {
	case index.File:
		path := os.Getenv("INDEX_PATH")
		if path == "" {
			slog.Error("INDEX_PATH is not set for the file source")
			return nil, fmt.Errorf("INDEX_PATH environment variable is not set")
		}
		cfg.File = &FileConfig{Path: path}

	case index.PG:
		connStr := os.Getenv("PG_CONNECTION_STRING")
		if connStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING environment variable is not set")
		}
		cfg.Pg = &pg.PoolConfig{ConnStr: connStr}
		if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
			maxConns, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || maxConns < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value: %s", raw)
			}
			cfg.Pg.MaxConns = int32(maxConns)
		}

	case index.ES:
		esCfg := &es.ClientConfig{
			Addresses: stringsutil.RemoveEmptyStrings(strings.Split(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete",
				"addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
		cfg.Es = esCfg
	}

	return cfg, nil
}
