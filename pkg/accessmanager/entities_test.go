package accessmanager

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EntityTestSuite struct {
	suite.Suite
	am *AccessManager[string, string, string, string]
}

func (s *EntityTestSuite) SetupTest() {
	s.am = New[string, string, string, string]()
}

func (s *EntityTestSuite) TestAddEntityType_InvalidName() {
	err := s.am.AddEntityType("   ")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrInvalidName)
}

func (s *EntityTestSuite) TestAddEntityType_AlreadyExists() {
	s.Require().NoError(s.am.AddEntityType("clients"))

	err := s.am.AddEntityType("clients")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrAlreadyExists)
}

func (s *EntityTestSuite) TestAddEntity_RequiresType() {
	err := s.am.AddEntity("clients", "clientA")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *EntityTestSuite) TestGetEntities_Sorted() {
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientB"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))

	entities, err := s.am.GetEntities("clients")
	s.Require().NoError(err)
	s.Require().Equal([]string{"clientA", "clientB"}, collect(entities))
}

func (s *EntityTestSuite) TestRemoveEntityType_PurgesMappings() {
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	s.Require().NoError(s.am.AddUserToEntityMapping("alice", "clients", "clientA"))

	s.Require().NoError(s.am.RemoveEntityType("clients"))
	s.Require().False(s.am.ContainsEntityType("clients"))

	// Re-adding the type starts from a clean mapping slate.
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	mappings, err := s.am.GetUserToEntityMappingsForUser("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(mappings))
}

func (s *EntityTestSuite) TestRemoveEntity_PurgesMappingsOnly() {
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	s.Require().NoError(s.am.AddEntity("clients", "clientB"))
	s.Require().NoError(s.am.AddUserToEntityMapping("alice", "clients", "clientA"))
	s.Require().NoError(s.am.AddUserToEntityMapping("alice", "clients", "clientB"))

	s.Require().NoError(s.am.RemoveEntity("clients", "clientA"))

	mappings, err := s.am.GetUserToEntityMappingsForUserAndEntityType("alice", "clients")
	s.Require().NoError(err)
	s.Require().Equal([]string{"clientB"}, collect(mappings))
}

func (s *EntityTestSuite) TestEntityTypesEnumerate() {
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntityType("accounts"))

	s.Require().Equal([]string{"accounts", "clients"}, collect(s.am.EntityTypes()))
}

func TestEntityTestSuite(t *testing.T) {
	suite.Run(t, new(EntityTestSuite))
}
