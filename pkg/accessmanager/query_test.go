package accessmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type QueryTestSuite struct {
	suite.Suite
	am *AccessManager[string, string, string, string]
}

func (s *QueryTestSuite) SetupTest() {
	s.am = New[string, string, string, string]()
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddGroup("engineers"))
	s.Require().NoError(s.am.AddGroup("admins"))
}

func (s *QueryTestSuite) TestHasAccessToApplicationComponent_Direct() {
	s.Require().NoError(s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))

	ok, err := s.am.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *QueryTestSuite) TestHasAccessToApplicationComponent_Transitive() {
	s.Require().NoError(s.am.AddUserToGroupMapping("alice", "engineers"))
	s.Require().NoError(s.am.AddGroupToGroupMapping("engineers", "admins"))
	s.Require().NoError(s.am.AddGroupToApplicationComponentAndAccessLevelMapping("admins", "orders", "view"))

	ok, err := s.am.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *QueryTestSuite) TestHasAccessToApplicationComponent_NoMapping() {
	ok, err := s.am.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *QueryTestSuite) TestHasAccessToApplicationComponent_UnknownUser() {
	ok, err := s.am.HasAccessToApplicationComponent("ghost", "orders", "view")
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *QueryTestSuite) TestHasAccessToEntity_NotFound() {
	_, err := s.am.HasAccessToEntity("alice", "clients", "clientA")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *QueryTestSuite) TestHasAccessToEntity_Transitive() {
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	s.Require().NoError(s.am.AddUserToGroupMapping("alice", "engineers"))
	s.Require().NoError(s.am.AddGroupToEntityMapping("engineers", "clients", "clientA"))

	ok, err := s.am.HasAccessToEntity("alice", "clients", "clientA")
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *QueryTestSuite) TestGetAccessibleEntities_UnionOfDirectAndTransitive() {
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	s.Require().NoError(s.am.AddEntity("clients", "clientB"))
	s.Require().NoError(s.am.AddUserToEntityMapping("alice", "clients", "clientA"))
	s.Require().NoError(s.am.AddUserToGroupMapping("alice", "engineers"))
	s.Require().NoError(s.am.AddGroupToEntityMapping("engineers", "clients", "clientB"))

	entities, err := s.am.GetAccessibleEntities("alice", "clients")
	s.Require().NoError(err)
	s.Require().Equal(map[string]struct{}{"clientA": {}, "clientB": {}}, entities)
}

func (s *QueryTestSuite) TestBatchHasAccessToApplicationComponent() {
	s.Require().NoError(s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))

	pairs := []ComponentAccess[string, string]{
		{Component: "orders", Access: "view"},
		{Component: "orders", Access: "edit"},
		{Component: "invoices", Access: "view"},
	}
	result, err := s.am.BatchHasAccessToApplicationComponent(context.Background(), "alice", pairs)
	s.Require().NoError(err)
	s.Require().True(result[pairs[0]])
	s.Require().False(result[pairs[1]])
	s.Require().False(result[pairs[2]])
}

func (s *QueryTestSuite) TestBatchHasAccessToApplicationComponent_Empty() {
	result, err := s.am.BatchHasAccessToApplicationComponent(context.Background(), "alice", nil)
	s.Require().NoError(err)
	s.Require().Empty(result)
}

func TestQueryTestSuite(t *testing.T) {
	suite.Run(t, new(QueryTestSuite))
}
