package accessmanager

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ComponentMappingTestSuite struct {
	suite.Suite
	am *AccessManager[string, string, string, string]
}

func (s *ComponentMappingTestSuite) SetupTest() {
	s.am = New[string, string, string, string]()
	s.Require().NoError(s.am.AddUser("alice"))
	s.Require().NoError(s.am.AddGroup("engineers"))
}

func (s *ComponentMappingTestSuite) TestAddUserToApplicationComponentAndAccessLevelMapping_AlreadyExists() {
	s.Require().NoError(s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))

	err := s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrAlreadyExists)
}

func (s *ComponentMappingTestSuite) TestRemoveUserToApplicationComponentAndAccessLevelMapping_DropsEmptyRow() {
	s.Require().NoError(s.am.AddUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))
	s.Require().NoError(s.am.RemoveUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view"))
	s.Require().NotContains(s.am.userComponentMap, "alice")

	mappings, err := s.am.GetUserToApplicationComponentAndAccessLevelMappings("alice")
	s.Require().NoError(err)
	s.Require().Empty(collect(mappings))

	err = s.am.RemoveUserToApplicationComponentAndAccessLevelMapping("alice", "orders", "view")
	s.Require().Error(err)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *ComponentMappingTestSuite) TestGroupVariantMirrorsUserVariant() {
	s.Require().NoError(s.am.AddGroupToApplicationComponentAndAccessLevelMapping("engineers", "orders", "view"))

	mappings, err := s.am.GetGroupToApplicationComponentAndAccessLevelMappings("engineers")
	s.Require().NoError(err)
	s.Require().Equal([]ComponentAccess[string, string]{{Component: "orders", Access: "view"}}, collect(mappings))

	s.Require().NoError(s.am.RemoveGroupToApplicationComponentAndAccessLevelMapping("engineers", "orders", "view"))
	mappings, err = s.am.GetGroupToApplicationComponentAndAccessLevelMappings("engineers")
	s.Require().NoError(err)
	s.Require().Empty(collect(mappings))
}

func TestComponentMappingTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentMappingTestSuite))
}
