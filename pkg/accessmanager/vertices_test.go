package accessmanager

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type VertexTestSuite struct {
	suite.Suite
	am *AccessManager[string, string, string, string]
}

func (s *VertexTestSuite) SetupTest() {
	s.am = New[string, string, string, string]()
}

func (s *VertexTestSuite) TestAddUser() {
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().True(s.am.ContainsUser("alice"))
}

func (s *VertexTestSuite) TestAddUser_AlreadyExists() {
	s.Require().NoError(s.am.AddUser("alice"))

	err := s.am.AddUser("alice")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrAlreadyExists)
}

func (s *VertexTestSuite) TestRemoveUser_NotFound() {
	err := s.am.RemoveUser("ghost")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *VertexTestSuite) TestRemoveUser_CascadesMappings() {
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddGroup("engineers"))
	s.Require().NoError(s.am.AddUserToGroupMapping("alice", "engineers"))
	s.Require().NoError(s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))
	s.Require().NoError(s.am.AddEntityType("clients"))
	s.Require().NoError(s.am.AddEntity("clients", "clientA"))
	s.Require().NoError(s.am.AddUserToEntityMapping("alice", "clients", "clientA"))

	s.Require().NoError(s.am.RemoveUser("alice"))
	s.Require().False(s.am.ContainsUser("alice"))

	// Re-adding alice should start from a clean slate: no stale group
	// mapping, component mapping, or entity mapping survives.
	s.Require().NoError(s.am.AddUser("alice"))
	mappings, err := s.am.GetUserToGroupMappings("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(mappings))

	pairs, err := s.am.GetUserToApplicationComponentAndAccessLevelMappings("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(pairs))

	refs, err := s.am.GetUserToEntityMappingsForUser("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(refs))
}

func (s *VertexTestSuite) TestAddGroup_AlreadyExists() {
	s.Require().NoError(s.am.AddGroup("engineers"))

	err := s.am.AddGroup("engineers")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrAlreadyExists)
}

func (s *VertexTestSuite) TestRemoveGroup_PurgesInboundEdges() {
	s.Require().NoError(s.am.AddGroup("admins"))
	s.Require().NoError(s.am.AddGroup("engineers"))
	s.Require().NoError(s.am.AddGroup("contractors"))
	s.Require().NoError(s.am.AddGroupToGroupMapping("contractors", "engineers"))
	s.Require().NoError(s.am.AddGroupToGroupMapping("admins", "engineers"))

	s.Require().NoError(s.am.RemoveGroup("engineers"))

	tos, err := s.am.GetGroupToGroupMappings("contractors")
	s.Require().NoError(err)
	s.Require().Empty(collect(tos))

	tos, err = s.am.GetGroupToGroupMappings("admins")
	s.Require().NoError(err)
	s.Require().Empty(collect(tos))
}

func (s *VertexTestSuite) TestUsersAndGroupsEnumerate() {
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddUser("bob"))
	s.Require().NoError(s.am.AddGroup("engineers"))

	s.Require().ElementsMatch([]string{"alice", "bob"}, collect(s.am.Users()))
	s.Require().ElementsMatch([]string{"engineers"}, collect(s.am.Groups()))
}

func TestVertexTestSuite(t *testing.T) {
	suite.Run(t, new(VertexTestSuite))
}

func collect[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
