package accessmanager

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// LawsTestSuite exercises properties that should hold regardless of the
// specific scenario: rejected mutations never partially apply, and
// granting more access never takes access away.
type LawsTestSuite struct {
	suite.Suite
}

func (s *LawsTestSuite) TestRejectedAddGroupToGroupMappingDoesNotMutate() {
	am := New[string, string, string, string]()
	s.Require().NoError(am.AddGroup("a"))
	s.Require().NoError(am.AddGroup("b"))
	s.Require().NoError(am.AddGroupToGroupMapping("a", "b"))

	before := snapshotGroupEdges(am)

	err := am.AddGroupToGroupMapping("b", "a")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrCircularReference)

	after := snapshotGroupEdges(am)
	s.Require().Equal(before, after)
}

func (s *LawsTestSuite) TestRejectedAddUserToGroupMappingDoesNotMutate() {
	am := New[string, string, string, string]()
	s.Require().NoError(am.AddUser("alice"))
	s.Require().NoError(am.AddGroup("engineers"))
	s.Require().NoError(am.AddUserToGroupMapping("alice", "engineers"))

	before := collect(am.userGroupSnapshot("alice"))

	err := am.AddUserToGroupMapping("alice", "engineers")
	s.Require().Error(err)

	after := collect(am.userGroupSnapshot("alice"))
	s.Require().ElementsMatch(before, after)
}

func (s *LawsTestSuite) TestHasAccessToApplicationComponent_MonotonicUnderAddition() {
	am := New[string, string, string, string]()
	s.Require().NoError(am.AddUser("alice"))
	s.Require().NoError(am.AddGroup("engineers"))
	s.Require().NoError(am.AddGroup("admins"))
	s.Require().NoError(am.AddUserToGroupMapping("alice", "engineers"))

	ok, err := am.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().False(ok)

	s.Require().NoError(am.AddGroupToGroupMapping("engineers", "admins"))
	s.Require().NoError(am.AddGroupToApplicationComponentAndAccessLevelMapping("admins", "orders", "view"))

	ok, err = am.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().True(ok, "adding an edge and a group mapping must grant access transitively, never deny it")
}

func (s *LawsTestSuite) TestAddThenRemoveUserIsIdempotentOnGraphShape() {
	am := New[string, string, string, string]()
	s.Require().NoError(am.AddUser("alice"))
	s.Require().NoError(am.AddGroup("engineers"))
	s.Require().NoError(am.AddUserToGroupMapping("alice", "engineers"))

	s.Require().NoError(am.RemoveUser("alice"))
	s.Require().NoError(am.AddUser("alice"))

	mappings, err := am.GetUserToGroupMappings("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(mappings))
}

func TestLawsTestSuite(t *testing.T) {
	suite.Run(t, new(LawsTestSuite))
}

func snapshotGroupEdges[U, G, C, A comparable](am *AccessManager[U, G, C, A]) map[G]map[G]struct{} {
	out := make(map[G]map[G]struct{}, len(am.groupGroupEdges))
	for from, tos := range am.groupGroupEdges {
		row := make(map[G]struct{}, len(tos))
		for to := range tos {
			row[to] = struct{}{}
		}
		out[from] = row
	}
	return out
}

func (am *AccessManager[U, G, C, A]) userGroupSnapshot(user U) func(func(G) bool) {
	return seqFromSet(am.userGroupEdges[user])
}
