package accessmanager

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ManagerTestSuite struct {
	suite.Suite
}

func (s *ManagerTestSuite) TestNew_StartsEmpty() {
	am := New[string, string, string, string]()

	s.Require().Empty(collect(am.Users()))
	s.Require().Empty(collect(am.Groups()))
	s.Require().Empty(collect(am.EntityTypes()))
}

func (s *ManagerTestSuite) TestInstanceID_IsStableAndUnique() {
	am1 := New[string, string, string, string]()
	am2 := New[string, string, string, string]()

	s.Require().Equal(am1.InstanceID(), am1.InstanceID())
	s.Require().NotEqual(am1.InstanceID(), am2.InstanceID())
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}
