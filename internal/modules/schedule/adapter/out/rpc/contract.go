package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey       = "catalog"
	serviceName        = "dersprog.catalog.v1.CatalogProvider"
	jsonCodecName      = "json"
	methodGetMetadata  = "/" + serviceName + "/GetMetadata"
	methodFetchCatalog = "/" + serviceName + "/FetchCatalog"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "DERSPROG_CATALOG_PLUGIN",
	MagicCookieValue: "dersprog",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type FetchCatalogRequest struct {
	// Source is the catalog location configured on the host, e.g. a file
	// path or URL. Its meaning is up to the plugin.
	Source string `json:"source"`
}

type Session struct {
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
	Group   int32  `json:"group"`
}

type Course struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Sessions []Session `json:"sessions"`
}

type Program struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

type FetchCatalogResponse struct {
	Term     string    `json:"term"`
	Programs []Program `json:"programs"`
}

type CatalogProviderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	FetchCatalog(ctx context.Context, in *FetchCatalogRequest) (*FetchCatalogResponse, error)
}

type CatalogProviderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	FetchCatalog(ctx context.Context, in *FetchCatalogRequest) (*FetchCatalogResponse, error)
}

type catalogProviderClient struct {
	conn *grpc.ClientConn
}

func NewCatalogProviderClient(conn *grpc.ClientConn) CatalogProviderClient {
	return &catalogProviderClient{conn: conn}
}

func (c *catalogProviderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogProviderClient) FetchCatalog(ctx context.Context, in *FetchCatalogRequest) (*FetchCatalogResponse, error) {
	out := &FetchCatalogResponse{}
	if err := c.conn.Invoke(ctx, methodFetchCatalog, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterCatalogProviderServer(server grpc.ServiceRegistrar, impl CatalogProviderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*CatalogProviderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "FetchCatalog",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &FetchCatalogRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.FetchCatalog(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodFetchCatalog}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*FetchCatalogRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.FetchCatalog(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "catalog-provider-v1",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl CatalogProviderServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterCatalogProviderServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewCatalogProviderClient(conn), nil
}

func PluginMap(impl CatalogProviderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
