package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/gamedata"
	v1alpha1 "github.com/KirkDiggler/trainer-api/internal/handlers/catalog/v1alpha1"
	"github.com/KirkDiggler/trainer-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/trainer-api/internal/pkg/idgen"
	resolvedcard "github.com/KirkDiggler/trainer-api/internal/repositories/resolved_card"
	"github.com/KirkDiggler/trainer-api/internal/repositories/roster"
	"github.com/KirkDiggler/trainer-api/internal/testutils"
)

// ServiceTestSuite runs the catalog over an in-memory gRPC connection backed
// by the embedded game data and miniredis
type ServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client *v1alpha1.CatalogClient
	ctx    context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	redisClient, _ := testutils.CreateTestRedisClient(s.T())

	tables, err := gamedata.LoadDefault()
	s.Require().NoError(err)

	rosterRepo, err := roster.NewRedis(&roster.RedisConfig{Client: redisClient})
	s.Require().NoError(err)
	dataVersion, err := tables.CardVersion()
	s.Require().NoError(err)
	cache, err := resolvedcard.NewRedis(&resolvedcard.RedisConfig{Client: redisClient, DataVersion: dataVersion})
	s.Require().NoError(err)

	svc, err := catalog.NewOrchestrator(&catalog.Config{
		Tables:      tables,
		RosterRepo:  rosterRepo,
		CardCache:   cache,
		IDGenerator: idgen.NewSequential("oc"),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CatalogService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterCatalogServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewCatalogClient(conn)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServiceTestSuite) TestResolveCardTwiceHitsCache() {
	first, err := s.client.ResolveCard(s.ctx, "Speed Demon", 2)
	s.Require().NoError(err)
	s.Equal("Blazing Sprint", first.AsMap()["canonical_name"])
	s.Equal(false, first.AsMap()["cached"])

	second, err := s.client.ResolveCard(s.ctx, "Blazing Sprint", 2)
	s.Require().NoError(err)
	s.Equal(true, second.AsMap()["cached"])
	s.Equal(first.AsMap()["card"], second.AsMap()["card"])
	s.Equal("scaled", second.AsMap()["reason"])
}

func (s *ServiceTestSuite) TestUnknownCardIsNotFound() {
	_, err := s.client.ResolveCard(s.ctx, "NonexistentCard", 2)
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func (s *ServiceTestSuite) TestRosterFlow() {
	added, err := s.client.AddOwnedCard(s.ctx, "p1", "Four Leaf", 0)
	s.Require().NoError(err)
	entry := added.AsMap()["entry"].(map[string]interface{})
	owned := entry["owned_card"].(map[string]interface{})
	s.Equal("oc_1", owned["id"])
	s.Equal("Lucky Clover", owned["card_name"])
	s.Nil(entry["card"].(map[string]interface{})["special_effect"])

	updated, err := s.client.SetLimitBreak(s.ctx, "oc_1", 9)
	s.Require().NoError(err)
	entry = updated.AsMap()["entry"].(map[string]interface{})
	s.Equal(4.0, entry["owned_card"].(map[string]interface{})["limit_break_level"])
	s.Equal(true, entry["card"].(map[string]interface{})["_isMaxLimitBreak"])

	roster, err := s.client.GetRoster(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(roster.AsMap()["entries"], 1)

	_, err = s.client.RemoveOwnedCard(s.ctx, "oc_1")
	s.Require().NoError(err)

	_, err = s.client.RemoveOwnedCard(s.ctx, "oc_1")
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ServiceTestSuite) TestNormalizeStatsAndCreatures() {
	resp, err := s.client.NormalizeStats(s.ctx, map[string]interface{}{
		"HP": 100, "Attack": 100, "Defense": 100, "Instinct": 100, "Speed": 100,
	}, 0)
	s.Require().NoError(err)
	s.Equal(400.0, resp.AsMap()["total"])

	list, err := s.client.ListCreatures(s.ctx)
	s.Require().NoError(err)
	s.Len(list.AsMap()["creatures"], 8)

	one, err := s.client.GetCreature(s.ctx, "pyrewyrm")
	s.Require().NoError(err)
	s.Equal(399.0, one.AsMap()["creature"].(map[string]interface{})["total"])
}
