package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-plugin"

	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out"
	catalogrpc "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *catalogrpc.Empty) (*catalogrpc.Metadata, error) {
	return &catalogrpc.Metadata{Name: "catalog-file", Version: "1.0.0"}, nil
}

func (s *server) FetchCatalog(_ context.Context, in *catalogrpc.FetchCatalogRequest) (*catalogrpc.FetchCatalogResponse, error) {
	if strings.TrimSpace(in.Source) == "" {
		return nil, fmt.Errorf("catalog source is required")
	}
	payload, err := os.ReadFile(in.Source)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	catalog, err := scheduleout.DecodeCatalog(filepath.Ext(in.Source), payload)
	if err != nil {
		return nil, err
	}
	return scheduleout.ToRPC(catalog), nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: catalogrpc.HandshakeConfig,
		Plugins:         catalogrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
