package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	catalogrpc "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out/rpc"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

// PluginCatalogSource launches a catalog provider binary over go-plugin and
// asks it for the catalog on every Load.
type PluginCatalogSource struct {
	binary string
	source string
}

func NewPluginCatalogSource(binary, source string) scheduleout.CatalogSource {
	return &PluginCatalogSource{binary: binary, source: source}
}

func (p *PluginCatalogSource) Load(ctx context.Context) (domain.Catalog, error) {
	client, closeFn, err := p.connect()
	if err != nil {
		return domain.Catalog{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.FetchCatalog(callCtx, &catalogrpc.FetchCatalogRequest{Source: p.source})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Catalog{}, fmt.Errorf("fetch catalog: plugin timeout: %w", err)
		}
		return domain.Catalog{}, fmt.Errorf("fetch catalog: %w", err)
	}
	return fromRPC(response), nil
}

func (p *PluginCatalogSource) connect() (catalogrpc.CatalogProviderClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  catalogrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          catalogrpc.PluginMap(nil),
		Cmd:              exec.Command(p.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start catalog plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(catalogrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense catalog plugin: %w", err)
	}
	typed, ok := raw.(catalogrpc.CatalogProviderClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("catalog plugin client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func fromRPC(in *catalogrpc.FetchCatalogResponse) domain.Catalog {
	out := domain.Catalog{Term: in.Term}
	for _, p := range in.Programs {
		program := domain.Program{ID: p.ID, Name: p.Name}
		for _, c := range p.Courses {
			course := domain.Course{Key: c.Key, Name: c.Name}
			for _, s := range c.Sessions {
				course.Sessions = append(course.Sessions, domain.Session{
					Day: s.Day, Start: s.Start, End: s.End, Room: s.Room, Teacher: s.Teacher, Group: int(s.Group),
				})
			}
			program.Courses = append(program.Courses, course)
		}
		out.Programs = append(out.Programs, program)
	}
	return out
}

// ToRPC is the inverse of fromRPC, used by catalog provider plugins.
func ToRPC(in domain.Catalog) *catalogrpc.FetchCatalogResponse {
	out := &catalogrpc.FetchCatalogResponse{Term: in.Term}
	for _, p := range in.Programs {
		program := catalogrpc.Program{ID: p.ID, Name: p.Name}
		for _, c := range p.Courses {
			course := catalogrpc.Course{Key: c.Key, Name: c.Name}
			for _, s := range c.Sessions {
				course.Sessions = append(course.Sessions, catalogrpc.Session{
					Day: s.Day, Start: s.Start, End: s.End, Room: s.Room, Teacher: s.Teacher, Group: int32(s.Group),
				})
			}
			program.Courses = append(program.Courses, course)
		}
		out.Programs = append(out.Programs, program)
	}
	return out
}
