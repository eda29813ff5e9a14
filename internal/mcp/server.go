package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"craque/internal/engine"
)

type Server struct {
	engine *engine.Engine
	mcp    *sdk.Server
}

func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine: eng,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "craque",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
