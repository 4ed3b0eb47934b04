package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/services/character/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharService *charactermock.MockService
	client          *v1alpha1.Client
	conn            *grpc.ClientConn
	server          *grpc.Server
	calledMethods   []string
	ctx             context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharService = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.calledMethods = nil

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: s.mockCharService})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer(grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
			s.calledMethods = append(s.calledMethods, info.FullMethod)
			return next(ctx, req)
		},
	))
	v1alpha1.RegisterCharacterServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(listener) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetSheet_RoundTrip() {
	sheet := &engine.Sheet{
		CharacterID:      "char-1",
		Level:            5,
		ProficiencyBonus: 3,
		Abilities: map[rules.Ability]engine.AbilityLine{
			rules.Dexterity: {Score: 16, Modifier: 3, Save: 6, SaveProficient: true},
		},
		ArmorClass:   rules.ACResult{Calculated: 15},
		EffectiveAC:  15,
		CurrencyGold: 12.5,
		Spellcasting: &engine.Spellcasting{Ability: rules.Intelligence, SaveDC: 14, AttackBonus: 6, MaxSpellLevel: 3},
		Unresolved:   map[string][]string{"feats": {"retired-feat"}},
	}

	s.mockCharService.EXPECT().
		GetSheet(gomock.Any(), &character.GetSheetInput{CharacterID: "char-1"}).
		Return(&character.GetSheetOutput{Sheet: sheet}, nil)

	var out character.GetSheetOutput
	err := s.client.Call(s.ctx, "GetSheet", &character.GetSheetInput{CharacterID: "char-1"}, &out)
	s.Require().NoError(err)
	s.Equal(sheet, out.Sheet)
	s.Equal([]string{v1alpha1.FullMethod("GetSheet")}, s.calledMethods)
}

func (s *HandlerTestSuite) TestCreateCharacter_StructShape() {
	char := &dnd5e.Character{ID: "char_1", Name: "Bruenor", Level: 1, CreatedAt: 1_700_000_000}

	s.mockCharService.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
			s.Equal("fighter", in.ClassID)
			s.Equal(15, in.AbilityScores.Strength)
			return &character.CreateCharacterOutput{Character: char, Sheet: &engine.Sheet{}}, nil
		})

	req, err := structpb.NewStruct(map[string]any{
		"name":           "Bruenor",
		"class_id":       "fighter",
		"ability_scores": map[string]any{"strength": 15},
	})
	s.Require().NoError(err)

	resp, err := s.client.CallRaw(s.ctx, "CreateCharacter", req)
	s.Require().NoError(err)

	got := resp.GetFields()["character"].GetStructValue().GetFields()
	s.Equal("char_1", got["id"].GetStringValue())
	s.Equal(float64(1_700_000_000), got["created_at"].GetNumberValue())
}

func (s *HandlerTestSuite) TestUnknownFieldIsRejected() {
	req, err := structpb.NewStruct(map[string]any{"character_id": "char-1", "charcter": "typo"})
	s.Require().NoError(err)

	_, err = s.client.CallRaw(s.ctx, "GetCharacter", req)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestServiceErrorsKeepTheirCode() {
	s.mockCharService.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character not found"))

	err := s.client.Call(s.ctx, "GetCharacter", &character.GetCharacterInput{CharacterID: "missing"}, nil)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *HandlerTestSuite) TestErrorMetadataTravels() {
	s.mockCharService.EXPECT().
		SubmitSpells(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("level up is at step awaiting_hit_points").
			WithMeta("step", string(engine.StepAwaitingHitPoints)))

	err := s.client.Call(s.ctx, "SubmitSpells", &character.SubmitSpellsInput{CharacterID: "char-1"}, nil)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("awaiting_hit_points", errors.GetMeta(err)["step"])
}

func (s *HandlerTestSuite) TestEmptyOutput() {
	s.mockCharService.EXPECT().
		CancelLevelUp(gomock.Any(), &character.CancelLevelUpInput{CharacterID: "char-1"}).
		Return(&character.CancelLevelUpOutput{}, nil)

	var out character.CancelLevelUpOutput
	s.NoError(s.client.Call(s.ctx, "CancelLevelUp", &character.CancelLevelUpInput{CharacterID: "char-1"}, &out))
}

func (s *HandlerTestSuite) TestUnknownMethod() {
	err := s.client.Call(s.ctx, "LevelDown", struct{}{}, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.CallRaw(s.ctx, "LevelDown", &structpb.Struct{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnimplemented, errors.GetCode(err))
}

func (s *HandlerTestSuite) TestMethodNamesMatchService() {
	names := v1alpha1.MethodNames()
	s.Len(names, 18)
	s.Contains(names, "CommitLevelUp")
	s.Contains(names, "ClaimPendingASI")
}
