package events

import (
	"context"
	"testing"

	tkevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type PublisherTestSuite struct {
	suite.Suite
	bus       tkevents.EventBus
	publisher Publisher
	ctx       context.Context
	received  []tkevents.Event
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupTest() {
	s.bus = tkevents.NewBus()
	s.received = nil
	p, err := NewPublisher(&Config{Bus: s.bus})
	s.Require().NoError(err)
	s.publisher = p
	s.ctx = context.Background()
}

func (s *PublisherTestSuite) subscribe(eventType string) {
	s.bus.SubscribeFunc(eventType, 100, func(_ context.Context, e tkevents.Event) error {
		s.received = append(s.received, e)
		return nil
	})
}

func (s *PublisherTestSuite) TestCharacterLeveledUp() {
	s.subscribe(CharacterLeveledUp)

	char := &dnd5e.Character{ID: "char-1", PlayerID: "player-1", ClassID: "wizard", Level: 5}
	s.Require().NoError(s.publisher.CharacterLeveledUp(s.ctx, char, 4))

	s.Require().Len(s.received, 1)
	e := s.received[0]
	s.Equal("char-1", e.Source().GetID())
	s.Equal(EntityTypeCharacter, e.Source().GetType())

	from, ok := e.Context().Get(KeyFromLevel)
	s.True(ok)
	s.Equal(4, from)
	to, _ := e.Context().Get(KeyToLevel)
	s.Equal(5, to)
	player, _ := e.Context().Get(KeyPlayerID)
	s.Equal("player-1", player)
}

func (s *PublisherTestSuite) TestOnlyMatchingSubscribers() {
	s.subscribe(CharacterCreated)

	s.Require().NoError(s.publisher.CharacterDeleted(s.ctx, "char-1"))
	s.Empty(s.received)

	s.Require().NoError(s.publisher.CharacterCreated(s.ctx, &dnd5e.Character{ID: "char-2", Level: 1}))
	s.Len(s.received, 1)
}

func (s *PublisherTestSuite) TestNilCharacter() {
	s.True(errors.IsInvalidArgument(s.publisher.CharacterCreated(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.publisher.CharacterLeveledUp(s.ctx, nil, 1)))
}

func (s *PublisherTestSuite) TestConfig() {
	_, err := NewPublisher(nil)
	s.Error(err)
	_, err = NewPublisher(&Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *PublisherTestSuite) TestNop() {
	var p Publisher = Nop{}
	s.NoError(p.CharacterCreated(s.ctx, nil))
	s.NoError(p.CharacterLeveledUp(s.ctx, nil, 0))
	s.NoError(p.CharacterDeleted(s.ctx, ""))
}
